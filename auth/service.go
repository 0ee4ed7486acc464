package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for a bad email/password pair. Callers
// must not learn which half was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountDisabled is returned when the account exists but is not active.
var ErrAccountDisabled = errors.New("account is not active")

// Principal identifies an authenticated caller. Exactly one of the profile
// ids is set, matching Role.
type Principal struct {
	Subject    string // base user id, or the profile id for vendors/admins
	Role       string // "customer", "vendor", or "admin"
	VendorID   string
	CustomerID string
	AdminID    string
	AdminRole  string // superadmin/admin/staff, empty for other roles
	Token      string
}

// Service provides login operations. Customers are trusted via a Firebase
// subject verified upstream; vendors and admins hold local credentials.
type Service interface {
	// CustomerLogin resolves an already-verified Firebase subject to a
	// customer principal and mints a session token.
	CustomerLogin(ctx context.Context, firebaseUID string) (*Principal, error)
	// VendorLogin checks email+password against the vendor's stored hash.
	VendorLogin(ctx context.Context, email, password string) (*Principal, error)
	// AdminLogin checks email+password against the admin's stored hash.
	AdminLogin(ctx context.Context, email, password string) (*Principal, error)
}
