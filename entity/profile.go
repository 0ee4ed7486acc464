package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationStatus is the tri-state student-ID check. The empty string
// means no student ID has ever been submitted.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationDeclined VerificationStatus = "declined"
)

// Profile extends a Customer with student-ID verification state and
// notification preferences.
type Profile struct {
	ID                uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID        uuid.UUID          `json:"customer_id" gorm:"type:uuid;uniqueIndex;not null"`
	StudentID         string             `json:"student_id,omitempty" gorm:"type:text;index"`
	StudentIDVerified VerificationStatus `json:"student_id_verified,omitempty" gorm:"type:text;index;default:''"`
	EmailUpdates      bool               `json:"email_updates" gorm:"default:true"`
	Promotions        bool               `json:"promotions" gorm:"default:false"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `json:"-" gorm:"index"`
}
