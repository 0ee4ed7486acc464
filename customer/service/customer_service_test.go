package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// fakeCustomerRepo is an in-memory customer.Repository.
type fakeCustomerRepo struct {
	users     map[uuid.UUID]*entity.User
	customers map[uuid.UUID]*entity.Customer
	favorites map[uuid.UUID]map[uuid.UUID]struct{}
	vendors   map[uuid.UUID]*entity.Vendor
	audits    []entity.AuditLog
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		users:     map[uuid.UUID]*entity.User{},
		customers: map[uuid.UUID]*entity.Customer{},
		favorites: map[uuid.UUID]map[uuid.UUID]struct{}{},
		vendors:   map[uuid.UUID]*entity.Vendor{},
	}
}

func (f *fakeCustomerRepo) StoreUser(_ context.Context, u *entity.User) (*entity.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeCustomerRepo) UpdateUser(_ context.Context, u *entity.User) (*entity.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return nil, customerpkg.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeCustomerRepo) GetUserByFirebaseUID(_ context.Context, uid string) (*entity.User, error) {
	for _, u := range f.users {
		if u.FirebaseUID != nil && *u.FirebaseUID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, customerpkg.ErrNotFound
}

func (f *fakeCustomerRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) StoreCustomer(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if u, ok := f.users[c.UserID]; ok {
		c.User = *u
	}
	cp := *c
	f.customers[c.ID] = &cp
	return c, nil
}

func (f *fakeCustomerRepo) GetCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, customerpkg.ErrNotFound
	}
	cp := *c
	if u, ok := f.users[c.UserID]; ok {
		cp.User = *u
	}
	return &cp, nil
}

func (f *fakeCustomerRepo) GetCustomerByUserID(_ context.Context, userID uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.UserID == userID {
			cp := *c
			if u, ok := f.users[userID]; ok {
				cp.User = *u
			}
			return &cp, nil
		}
	}
	return nil, customerpkg.ErrNotFound
}

func (f *fakeCustomerRepo) UpdateCustomer(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	if _, ok := f.customers[c.ID]; !ok {
		return nil, customerpkg.ErrNotFound
	}
	cp := *c
	f.customers[c.ID] = &cp
	return c, nil
}

func (f *fakeCustomerRepo) ListCustomers(_ context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) DeleteWithAudit(_ context.Context, id uuid.UUID, entry *entity.AuditLog) error {
	if _, ok := f.customers[id]; !ok {
		return customerpkg.ErrNotFound
	}
	delete(f.customers, id)
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeCustomerRepo) AddFavorite(_ context.Context, fav *entity.Favorite) error {
	set, ok := f.favorites[fav.CustomerID]
	if !ok {
		set = map[uuid.UUID]struct{}{}
		f.favorites[fav.CustomerID] = set
	}
	set[fav.VendorID] = struct{}{}
	return nil
}

func (f *fakeCustomerRepo) RemoveFavorite(_ context.Context, customerID, vendorID uuid.UUID) error {
	delete(f.favorites[customerID], vendorID)
	return nil
}

func (f *fakeCustomerRepo) ListFavoriteVendors(_ context.Context, customerID uuid.UUID) ([]entity.Vendor, error) {
	var out []entity.Vendor
	for vendorID := range f.favorites[customerID] {
		if v, ok := f.vendors[vendorID]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func TestSyncCustomerFirstSignIn(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-123",
		Email:       "Jordan@Example.com",
		FirstName:   "Jordan",
		LastName:    "Lee",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CustomerActive, c.Status)
	assert.Equal(t, "jordan@example.com", c.User.Email)
	assert.Equal(t, "customer", c.User.Role)
	require.NotNil(t, c.User.FirebaseUID)
	assert.Equal(t, "fb-123", *c.User.FirebaseUID)
	assert.Len(t, repo.customers, 1)
}

func TestSyncCustomerReturningCallerRefreshes(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	first, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-123", Email: "jordan@example.com", FirstName: "Jordan",
	})
	require.NoError(t, err)

	again, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-123", Email: "jordan@example.com", FirstName: "Jordy", Phone: "0700",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Jordy", again.User.FirstName)
	assert.Equal(t, "0700", again.User.Phone)
	assert.Len(t, repo.customers, 1)
}

func TestSyncCustomerEmailConflict(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	_, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-1", Email: "shared@example.com",
	})
	require.NoError(t, err)

	// Different identity, same email.
	_, err = svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-2", Email: "shared@example.com",
	})
	assert.ErrorIs(t, err, customerpkg.ErrEmailTaken)
	assert.Len(t, repo.customers, 1)
}

func TestUpdateCustomerPartial(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-1", Email: "jordan@example.com", FirstName: "Jordan",
	})
	require.NoError(t, err)

	addr := "Dorm 4, Room 12"
	updated, err := svc.UpdateCustomer(context.Background(), c.ID, customerpkg.UpdateCustomerRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, addr, updated.Address)
	assert.Equal(t, "Jordan", updated.User.FirstName)

	name := "Jo"
	updated, err = svc.UpdateCustomer(context.Background(), c.ID, customerpkg.UpdateCustomerRequest{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jo", updated.User.FirstName)
	assert.Equal(t, addr, updated.Address)
}

func TestDeleteCustomerAudited(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)
	adminID := uuid.New()

	c, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-1", Email: "jordan@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), c.ID, adminID, "account abuse"))

	_, err = svc.GetCustomer(context.Background(), c.ID)
	assert.ErrorIs(t, err, customerpkg.ErrNotFound)

	require.Len(t, repo.audits, 1)
	assert.Equal(t, entity.AuditCustomerDeleted, repo.audits[0].Action)
	assert.Equal(t, adminID, repo.audits[0].AdminID)
	assert.Equal(t, "account abuse", repo.audits[0].Reason)
}

func TestDeleteCustomerUnknown(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	err := svc.DeleteCustomer(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, customerpkg.ErrNotFound)
	assert.Empty(t, repo.audits)
}

func TestFavoritesIdempotent(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)
	vendorID := uuid.New()
	repo.vendors[vendorID] = &entity.Vendor{ID: vendorID, Name: "Campus Grill"}

	c, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-1", Email: "jordan@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(context.Background(), c.ID, vendorID))
	require.NoError(t, svc.AddFavorite(context.Background(), c.ID, vendorID))

	vendors, err := svc.ListFavorites(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Campus Grill", vendors[0].Name)

	require.NoError(t, svc.RemoveFavorite(context.Background(), c.ID, vendorID))
	vendors, err = svc.ListFavorites(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestFavoriteReAddAfterRemove(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)
	vendorID := uuid.New()
	repo.vendors[vendorID] = &entity.Vendor{ID: vendorID, Name: "Campus Grill"}
	c, err := svc.SyncCustomer(context.Background(), customerpkg.SyncCustomerRequest{
		FirebaseUID: "fb-1", Email: "jordan@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(context.Background(), c.ID, vendorID))
	require.NoError(t, svc.RemoveFavorite(context.Background(), c.ID, vendorID))
	require.NoError(t, svc.AddFavorite(context.Background(), c.ID, vendorID))

	vendors, err := svc.ListFavorites(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Campus Grill", vendors[0].Name)
}
