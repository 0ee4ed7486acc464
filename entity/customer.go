package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerStatus enumerates customer account states.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer represents a customer profile linked to a base User.
// Created on first authenticated profile sync.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Address   string         `json:"address,omitempty" gorm:"type:text"`
	Status    CustomerStatus `json:"status" gorm:"type:text;index;not null;default:'active'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	// Relations
	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Favorite marks a vendor as a customer's favorite. One row per pair.
// Rows are deleted outright so the unique pair index never blocks a re-add.
type Favorite struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;index:idx_fav_pair,unique;not null"`
	VendorID   uuid.UUID `json:"vendor_id" gorm:"type:uuid;index:idx_fav_pair,unique;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
