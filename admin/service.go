package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var (
	// ErrNotFound means the admin id did not resolve.
	ErrNotFound = errors.New("admin not found")
	// ErrEmailTaken signals a duplicate admin email.
	ErrEmailTaken = errors.New("admin with this email already exists")
	// ErrForbidden means the caller's role may not perform the operation.
	ErrForbidden = errors.New("forbidden: superadmin role required")
)

// RegisterAdminRequest carries the data required to create an admin.
type RegisterAdminRequest struct {
	Name     string
	Email    string
	Password string
	Role     entity.AdminRole
}

// Service exposes admin account operations. Admin accounts are seeded
// out-of-band or created by a superadmin, never self-registered.
type Service interface {
	// SeedSuperadmin creates the initial superadmin if no admin exists yet.
	// Returns (nil, nil) when seeding was skipped.
	SeedSuperadmin(ctx context.Context, name, email, password string) (*entity.Admin, error)

	// RegisterAdmin creates an admin account. Only a superadmin caller may
	// do this.
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest, callerRole entity.AdminRole) (*entity.Admin, error)

	SetStatus(ctx context.Context, id uuid.UUID, status entity.AdminStatus, callerRole entity.AdminRole) (*entity.Admin, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	ListAdmins(ctx context.Context) ([]entity.Admin, error)
}
