package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository specifies customer related database operations.
type Repository interface {
	StoreUser(ctx context.Context, u *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, u *entity.User) (*entity.User, error)
	GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	// DeleteWithAudit soft-deletes the customer and appends the audit entry
	// inside one transaction.
	DeleteWithAudit(ctx context.Context, id uuid.UUID, entry *entity.AuditLog) error

	AddFavorite(ctx context.Context, f *entity.Favorite) error
	RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error
	ListFavoriteVendors(ctx context.Context, customerID uuid.UUID) ([]entity.Vendor, error)
}
