package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderReady, false},
		{OrderConfirmed, OrderPreparing, true},
		{OrderPreparing, OrderReady, true},
		{OrderReady, OrderPickedUp, true},
		{OrderReady, OrderDelivered, true},
		{OrderPickedUp, OrderCompleted, true},
		{OrderPickedUp, OrderCancelled, true},
		{OrderDelivered, OrderCompleted, true},
		{OrderDelivered, OrderCancelled, true},
		{OrderCompleted, OrderCancelled, false},
		{OrderCancelled, OrderConfirmed, false},
		{OrderConfirmed, OrderConfirmed, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderCompleted.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderPickedUp, OrderDelivered} {
		assert.False(t, s.Terminal(), "%s", s)
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{UnitPriceCents: 850, Quantity: 3}
	assert.Equal(t, int64(2550), item.SubtotalCents())
}
