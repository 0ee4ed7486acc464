package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var ErrNotFound = errors.New("notification not found")

// Repository persists durable admin-facing alerts.
type Repository interface {
	Store(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
	// List returns notifications, unread and newest first. limit <= 0 uses
	// a server default.
	List(ctx context.Context, limit int) ([]entity.Notification, error)
	// MarkRead returns ErrNotFound when no notification has the given id.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
