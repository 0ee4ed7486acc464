package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var (
	// ErrNotFound means the customer id did not resolve.
	ErrNotFound = errors.New("customer not found")
	// ErrEmailTaken signals a registration conflict on the unique email.
	ErrEmailTaken = errors.New("customer with this email already exists")
)

// SyncCustomerRequest carries identity-provider data for profile sync.
type SyncCustomerRequest struct {
	FirebaseUID string
	Email       string
	FirstName   string
	LastName    string
	Phone       string
}

// UpdateCustomerRequest applies partial profile edits; nil fields are
// left untouched.
type UpdateCustomerRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

// Service exposes customer-related business operations.
type Service interface {
	// SyncCustomer upserts the customer keyed on the Firebase subject: the
	// first authenticated call creates the account, later calls refresh
	// identity fields. A different account holding the same email is a
	// conflict.
	SyncCustomer(ctx context.Context, req SyncCustomerRequest) (*entity.Customer, error)

	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	// DeleteCustomer soft-deletes the account and writes an audit entry in
	// the same transaction.
	DeleteCustomer(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string) error

	AddFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error
	RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error
	ListFavorites(ctx context.Context, customerID uuid.UUID) ([]entity.Vendor, error)
}
