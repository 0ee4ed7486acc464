package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// fakeAuthRepo is an in-memory auth.Repository.
type fakeAuthRepo struct {
	users     map[string]*entity.User // keyed by firebase uid
	customers map[uuid.UUID]*entity.Customer
	vendors   map[string]*entity.Vendor // keyed by email
	admins    map[string]*entity.Admin  // keyed by email
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		users:     map[string]*entity.User{},
		customers: map[uuid.UUID]*entity.Customer{},
		vendors:   map[string]*entity.Vendor{},
		admins:    map[string]*entity.Admin{},
	}
}

func (f *fakeAuthRepo) GetUserByFirebaseUID(_ context.Context, uid string) (*entity.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeAuthRepo) GetCustomerByUserID(_ context.Context, userID uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeAuthRepo) GetVendorByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	v, ok := f.vendors[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeAuthRepo) GetAdminByEmail(_ context.Context, email string) (*entity.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestVendorLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	repo.vendors["grill@example.com"] = &entity.Vendor{
		ID: uuid.New(), Email: "grill@example.com",
		PasswordHash: hashOf(t, "secret-pass-1"), Status: entity.VendorActive,
	}

	p, err := svc.VendorLogin(context.Background(), " Grill@Example.COM ", "secret-pass-1")
	require.NoError(t, err)
	assert.Equal(t, "vendor", p.Role)
	assert.NotEmpty(t, p.VendorID)
	assert.NotEmpty(t, p.Token)

	claims, err := authpkg.ParseAndValidate("test-secret", p.Token)
	require.NoError(t, err)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, p.VendorID, claims.VendorID)

	_, err = svc.VendorLogin(context.Background(), "grill@example.com", "wrong")
	assert.ErrorIs(t, err, authpkg.ErrInvalidCredentials)

	_, err = svc.VendorLogin(context.Background(), "nobody@example.com", "secret-pass-1")
	assert.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
}

func TestVendorLoginStatusGate(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	repo.vendors["pending@example.com"] = &entity.Vendor{
		ID: uuid.New(), Email: "pending@example.com",
		PasswordHash: hashOf(t, "secret-pass-1"), Status: entity.VendorInactive,
	}
	repo.vendors["suspended@example.com"] = &entity.Vendor{
		ID: uuid.New(), Email: "suspended@example.com",
		PasswordHash: hashOf(t, "secret-pass-1"), Status: entity.VendorSuspended,
	}

	// A vendor awaiting approval may still sign in to check its state.
	_, err := svc.VendorLogin(context.Background(), "pending@example.com", "secret-pass-1")
	assert.NoError(t, err)

	_, err = svc.VendorLogin(context.Background(), "suspended@example.com", "secret-pass-1")
	assert.ErrorIs(t, err, authpkg.ErrAccountDisabled)
}

func TestAdminLoginCarriesAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	repo.admins["root@example.com"] = &entity.Admin{
		ID: uuid.New(), Email: "root@example.com",
		PasswordHash: hashOf(t, "super-secret-1"),
		Role:         entity.AdminSuperadmin, Status: entity.AdminActive,
	}

	p, err := svc.AdminLogin(context.Background(), "root@example.com", "super-secret-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, string(entity.AdminSuperadmin), p.AdminRole)

	claims, err := authpkg.ParseAndValidate("test-secret", p.Token)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AdminSuperadmin), claims.AdminRole)
}

func TestAdminLoginInactive(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	repo.admins["gone@example.com"] = &entity.Admin{
		ID: uuid.New(), Email: "gone@example.com",
		PasswordHash: hashOf(t, "secret-pass-1"),
		Role:         entity.AdminRegular, Status: entity.AdminInactive,
	}

	_, err := svc.AdminLogin(context.Background(), "gone@example.com", "secret-pass-1")
	assert.ErrorIs(t, err, authpkg.ErrAccountDisabled)
}

func TestCustomerLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	userID := uuid.New()
	repo.users["fb-123"] = &entity.User{ID: userID, Role: "customer"}
	repo.customers[userID] = &entity.Customer{ID: uuid.New(), UserID: userID, Status: entity.CustomerActive}

	p, err := svc.CustomerLogin(context.Background(), "fb-123")
	require.NoError(t, err)
	assert.Equal(t, "customer", p.Role)
	assert.NotEmpty(t, p.CustomerID)
	assert.NotEmpty(t, p.Token)
}

func TestCustomerLoginDisabled(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	userID := uuid.New()
	repo.users["fb-123"] = &entity.User{ID: userID, Role: "customer"}
	repo.customers[userID] = &entity.Customer{ID: uuid.New(), UserID: userID, Status: entity.CustomerInactive}

	_, err := svc.CustomerLogin(context.Background(), "fb-123")
	assert.ErrorIs(t, err, authpkg.ErrAccountDisabled)
}
