package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorStatus enumerates the approval state of a vendor account.
type VendorStatus string

const (
	VendorActive    VendorStatus = "active"    // approved, may receive orders
	VendorInactive  VendorStatus = "inactive"  // self-registered, awaiting admin decision
	VendorSuspended VendorStatus = "suspended" // rejected or suspended by an admin
)

// MenuItemStatus enumerates the moderation lifecycle of a menu item.
type MenuItemStatus string

const (
	MenuItemActive   MenuItemStatus = "active"   // live on the customer-facing menu
	MenuItemPending  MenuItemStatus = "pending"  // submitted by the vendor, awaiting moderation
	MenuItemArchived MenuItemStatus = "archived" // rejected or retired
)

// Vendor is a campus food seller. Status is the admin-controlled approval
// state; IsOnline is the vendor's own open/closed toggle and is independent
// of Status.
type Vendor struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string         `json:"name" gorm:"type:text;not null"`
	Email        string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:text;not null"`
	Phone        string         `json:"phone" gorm:"type:text"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	Cuisine      string         `json:"cuisine,omitempty" gorm:"type:text;index"`
	Status       VendorStatus   `json:"status" gorm:"type:text;index;not null;default:'inactive'"`
	IsOnline     bool           `json:"is_online" gorm:"default:false;index"`
	Rating       float64        `json:"rating" gorm:"type:double precision;not null;default:0"`
	RatingCount  int64          `json:"rating_count" gorm:"type:bigint;not null;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	// Relations
	Menu []MenuItem `json:"menu,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// MenuItem is a single food item on a vendor's menu. Items enter as pending
// and only appear to customers once an admin moves them to active.
type MenuItem struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	VendorID   uuid.UUID      `json:"vendor_id" gorm:"type:uuid;index;not null"`
	Name       string         `json:"name" gorm:"type:text;not null"`
	PriceCents int64          `json:"price_cents" gorm:"type:bigint;not null;check:price_cents >= 0"`
	Category   string         `json:"category,omitempty" gorm:"type:text;index"`
	ImageURL   string         `json:"image_url,omitempty" gorm:"type:text"`
	Available  bool           `json:"available" gorm:"default:true;index"`
	Status     MenuItemStatus `json:"status" gorm:"type:text;index;not null;default:'pending'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
