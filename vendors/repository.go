package vendor

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository specifies vendor related database operations.
type Repository interface {
	StoreVendor(ctx context.Context, v *entity.Vendor) (*entity.Vendor, error)
	GetVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// SetStatusWithAudit updates the vendor status and appends the audit
	// entry inside one transaction, so the trail cannot diverge from state.
	SetStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.VendorStatus, entry *entity.AuditLog) error
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error

	ListByStatus(ctx context.Context, status entity.VendorStatus, search string) ([]entity.Vendor, error)

	StoreMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error)
	// SetMenuItemStatusWithAudit is the transactional moderation write.
	SetMenuItemStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.MenuItemStatus, entry *entity.AuditLog) error
	ListMenuItems(ctx context.Context, vendorID uuid.UUID, statuses []entity.MenuItemStatus) ([]entity.MenuItem, error)
	ListMenuItemsByStatus(ctx context.Context, status entity.MenuItemStatus) ([]entity.MenuItem, error)
}
