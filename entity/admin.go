package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRole enumerates admin permission tiers.
type AdminRole string

const (
	AdminSuperadmin AdminRole = "superadmin"
	AdminRegular    AdminRole = "admin"
	AdminStaff      AdminRole = "staff"
)

// AdminStatus enumerates admin account states.
type AdminStatus string

const (
	AdminActive   AdminStatus = "active"
	AdminInactive AdminStatus = "inactive"
)

// Admin is a platform operator. Seeded out-of-band or created by a
// superadmin; never self-registered.
type Admin struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string         `json:"name" gorm:"type:text;not null"`
	Email        string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:text;not null"`
	Role         AdminRole      `json:"role" gorm:"type:text;index;not null;default:'staff'"`
	Status       AdminStatus    `json:"status" gorm:"type:text;index;not null;default:'active'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
