package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification kinds surfaced to admins.
const (
	NotificationStudentID    = "student_id_submitted"
	NotificationVendorSignup = "vendor_signup"
)

// Notification is a durable admin-facing alert, e.g. a pending student-ID
// verification or a fresh vendor signup awaiting a decision.
type Notification struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Kind      string         `json:"kind" gorm:"type:text;index;not null"`
	Message   string         `json:"message" gorm:"type:text;not null"`
	EntityID  *uuid.UUID     `json:"entity_id,omitempty" gorm:"type:uuid;index;default:null"`
	IsRead    bool           `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
