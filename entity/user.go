package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity-provider account record synced on first sign-in.
// Customers authenticate through Firebase and get a User row; vendors and
// admins carry their own credentials on their profile entities.
type User struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName     string         `json:"first_name" gorm:"type:text;not null"`
	LastName      string         `json:"last_name" gorm:"type:text;not null"`
	Email         string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Phone         string         `json:"phone" gorm:"type:text;index"`
	FirebaseUID   *string        `json:"firebase_uid,omitempty" gorm:"type:text;uniqueIndex;default:null"`
	EmailVerified bool           `json:"email_verified" gorm:"default:false;index"`
	Role          string         `json:"role" gorm:"type:text;index;not null"` // e.g., "customer"
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
