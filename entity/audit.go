package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit action tags. One constant per admin decision kind.
const (
	AuditVendorApproved    = "VENDOR_APPROVED"
	AuditVendorRejected    = "VENDOR_REJECTED"
	AuditVendorStatusSet   = "VENDOR_STATUS_SET"
	AuditMenuItemApproved  = "MENU_ITEM_APPROVED"
	AuditMenuItemRejected  = "MENU_ITEM_REJECTED"
	AuditStudentIDVerified = "STUDENT_ID_VERIFIED"
	AuditStudentIDDeclined = "STUDENT_ID_DECLINED"
	AuditCustomerDeleted   = "CUSTOMER_DELETED"
	AuditPaymentStatusSet  = "PAYMENT_STATUS_SET"
)

// AuditLog is an append-only record of an administrative action. Rows are
// never updated or deleted.
type AuditLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AdminID    uuid.UUID `json:"admin_id" gorm:"type:uuid;index;not null"`
	Action     string    `json:"action" gorm:"type:text;index;not null"`
	EntityType string    `json:"entity_type" gorm:"type:text;index;not null"` // e.g., "vendor"
	EntityID   uuid.UUID `json:"entity_id" gorm:"type:uuid;index;not null"`
	Reason     string    `json:"reason,omitempty" gorm:"type:text"`
	Metadata   string    `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
