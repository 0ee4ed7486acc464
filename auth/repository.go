package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository exposes read operations used for authentication.
type Repository interface {
	GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)

	GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
