package vendor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var (
	// ErrNotFound means the vendor or menu item id did not resolve.
	ErrNotFound = errors.New("vendor not found")
	// ErrEmailTaken is the conflict on duplicate self-registration.
	ErrEmailTaken = errors.New("vendor with this email already exists")
	// ErrInvalidDecision rejects any decision action other than approve/reject.
	ErrInvalidDecision = errors.New("decision action must be approve or reject")
)

// Decision actions accepted by Decide.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// RegisterVendorRequest carries the data required for vendor self-registration.
type RegisterVendorRequest struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Description string
	Cuisine     string
}

// MenuItemRequest carries a vendor-submitted menu item.
type MenuItemRequest struct {
	Name       string
	PriceCents int64
	Category   string
	ImageURL   string
	Available  bool
}

// MenuItemUpdate applies partial edits; nil fields are left untouched.
type MenuItemUpdate struct {
	PriceCents *int64
	Available  *bool
	Name       *string
	Category   *string
}

// Service exposes vendor-related business operations.
type Service interface {
	// RegisterVendor creates a vendor in the pending (inactive) state and
	// records an admin alert. Fails with ErrEmailTaken on duplicate email.
	RegisterVendor(ctx context.Context, req RegisterVendorRequest) (*entity.Vendor, error)

	// Decide applies an admin approval decision. Approve moves the vendor to
	// active, reject to suspended; either way exactly one audit entry is
	// written in the same transaction as the status change.
	Decide(ctx context.Context, vendorID uuid.UUID, action string, adminID uuid.UUID, reason string) (*entity.Vendor, error)

	// SetStatus is the direct admin PATCH of vendor status, audited.
	SetStatus(ctx context.Context, vendorID uuid.UUID, status entity.VendorStatus, adminID uuid.UUID, reason string) (*entity.Vendor, error)

	// SetOnline toggles the vendor's open/closed flag, independent of status.
	SetOnline(ctx context.Context, vendorID uuid.UUID, online bool) error

	GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	// ListVendors returns active vendors for customer browsing, optionally
	// filtered by a name search term.
	ListVendors(ctx context.Context, search string) ([]entity.Vendor, error)
	// ListPendingVendors returns vendors awaiting an admin decision.
	ListPendingVendors(ctx context.Context) ([]entity.Vendor, error)

	// AddMenuItem submits an item into the vendor's pending menu.
	AddMenuItem(ctx context.Context, vendorID uuid.UUID, req MenuItemRequest) (*entity.MenuItem, error)
	// UpdateMenuItem edits price/availability/name on an item the vendor owns.
	UpdateMenuItem(ctx context.Context, vendorID, itemID uuid.UUID, upd MenuItemUpdate) (*entity.MenuItem, error)
	// ModerateMenuItem moves a pending item to active (approve) or archived
	// (reject), audited.
	ModerateMenuItem(ctx context.Context, itemID uuid.UUID, approve bool, adminID uuid.UUID, reason string) (*entity.MenuItem, error)
	// ListMenu returns a vendor's live menu; includePending adds the
	// moderation queue (vendor/admin views).
	ListMenu(ctx context.Context, vendorID uuid.UUID, includePending bool) ([]entity.MenuItem, error)
	// ListPendingMenuItems returns the moderation queue across all vendors.
	ListPendingMenuItems(ctx context.Context) ([]entity.MenuItem, error)
}
