package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	notificationpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification"
	vendorpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors"
)

// fakeVendorRepo is an in-memory vendor.Repository. Audit entries land in
// the audits slice so tests can assert on the trail.
type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
	items   map[uuid.UUID]*entity.MenuItem
	audits  []entity.AuditLog
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{
		vendors: map[uuid.UUID]*entity.Vendor{},
		items:   map[uuid.UUID]*entity.MenuItem{},
	}
}

func (f *fakeVendorRepo) StoreVendor(_ context.Context, v *entity.Vendor) (*entity.Vendor, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	f.vendors[v.ID] = &cp
	return v, nil
}

func (f *fakeVendorRepo) GetVendorByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, vendorpkg.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVendorRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, v := range f.vendors {
		if v.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) SetStatusWithAudit(_ context.Context, id uuid.UUID, status entity.VendorStatus, entry *entity.AuditLog) error {
	v, ok := f.vendors[id]
	if !ok {
		return vendorpkg.ErrNotFound
	}
	v.Status = status
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeVendorRepo) SetOnline(_ context.Context, id uuid.UUID, online bool) error {
	v, ok := f.vendors[id]
	if !ok {
		return vendorpkg.ErrNotFound
	}
	v.IsOnline = online
	return nil
}

func (f *fakeVendorRepo) ListByStatus(_ context.Context, status entity.VendorStatus, search string) ([]entity.Vendor, error) {
	var out []entity.Vendor
	for _, v := range f.vendors {
		if v.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVendorRepo) StoreMenuItem(_ context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	f.items[item.ID] = &cp
	return item, nil
}

func (f *fakeVendorRepo) GetMenuItemByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, vendorpkg.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeVendorRepo) UpdateMenuItem(_ context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	if _, ok := f.items[item.ID]; !ok {
		return nil, vendorpkg.ErrNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return item, nil
}

func (f *fakeVendorRepo) SetMenuItemStatusWithAudit(_ context.Context, id uuid.UUID, status entity.MenuItemStatus, entry *entity.AuditLog) error {
	it, ok := f.items[id]
	if !ok {
		return vendorpkg.ErrNotFound
	}
	it.Status = status
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeVendorRepo) ListMenuItems(_ context.Context, vendorID uuid.UUID, statuses []entity.MenuItemStatus) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, it := range f.items {
		if it.VendorID != vendorID {
			continue
		}
		for _, s := range statuses {
			if it.Status == s {
				out = append(out, *it)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListMenuItemsByStatus(_ context.Context, status entity.MenuItemStatus) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, it := range f.items {
		if it.Status == status {
			out = append(out, *it)
		}
	}
	return out, nil
}

// fakeNotifRepo is an in-memory notification.Repository.
type fakeNotifRepo struct {
	stored []entity.Notification
}

func (f *fakeNotifRepo) Store(_ context.Context, n *entity.Notification) (*entity.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.stored = append(f.stored, *n)
	return n, nil
}

func (f *fakeNotifRepo) List(_ context.Context, _ int) ([]entity.Notification, error) {
	return f.stored, nil
}

func (f *fakeNotifRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for i := range f.stored {
		if f.stored[i].ID == id {
			f.stored[i].IsRead = true
			return nil
		}
	}
	return notificationpkg.ErrNotFound
}

func TestRegisterVendorStartsPending(t *testing.T) {
	repo := newFakeVendorRepo()
	notifs := &fakeNotifRepo{}
	svc := NewVendorService(repo, notifs)

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name:     "Campus Grill",
		Email:    "Grill@Example.COM ",
		Password: "secret-pass-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.VendorInactive, v.Status)
	assert.Equal(t, "grill@example.com", v.Email)
	assert.NotEqual(t, "secret-pass-1", v.PasswordHash)

	require.Len(t, notifs.stored, 1)
	assert.Equal(t, entity.NotificationVendorSignup, notifs.stored[0].Kind)
}

func TestRegisterVendorDuplicateEmail(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	_, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "First", Email: "dup@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	_, err = svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Second", Email: "DUP@example.com", Password: "secret-pass-2",
	})
	assert.ErrorIs(t, err, vendorpkg.ErrEmailTaken)
	assert.Len(t, repo.vendors, 1)
}

func TestDecideApprove(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})
	adminID := uuid.New()

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Campus Grill", Email: "grill@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), v.ID, vendorpkg.DecisionApprove, adminID, "docs look fine")
	require.NoError(t, err)

	assert.Equal(t, entity.VendorActive, decided.Status)
	require.Len(t, repo.audits, 1)
	assert.Equal(t, entity.AuditVendorApproved, repo.audits[0].Action)
	assert.Equal(t, v.ID, repo.audits[0].EntityID)
	assert.Equal(t, adminID, repo.audits[0].AdminID)
	assert.Equal(t, "docs look fine", repo.audits[0].Reason)
}

func TestDecideReject(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Shady Snacks", Email: "shady@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), v.ID, vendorpkg.DecisionReject, uuid.New(), "no permit")
	require.NoError(t, err)

	assert.Equal(t, entity.VendorSuspended, decided.Status)
	require.Len(t, repo.audits, 1)
	assert.Equal(t, entity.AuditVendorRejected, repo.audits[0].Action)
}

func TestDecideInvalidActionWritesNothing(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Campus Grill", Email: "grill@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), v.ID, "maybe", uuid.New(), "")
	assert.ErrorIs(t, err, vendorpkg.ErrInvalidDecision)

	got, err := svc.GetVendor(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorInactive, got.Status)
	assert.Empty(t, repo.audits)
}

func TestDecideUnknownVendor(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	_, err := svc.Decide(context.Background(), uuid.New(), vendorpkg.DecisionApprove, uuid.New(), "")
	assert.ErrorIs(t, err, vendorpkg.ErrNotFound)
	assert.Empty(t, repo.audits)
}

func TestAddMenuItemStartsPending(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Campus Grill", Email: "grill@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	item, err := svc.AddMenuItem(context.Background(), v.ID, vendorpkg.MenuItemRequest{
		Name: "Burger", PriceCents: 850, Available: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MenuItemPending, item.Status)

	// Pending items are invisible to the customer menu.
	live, err := svc.ListMenu(context.Background(), v.ID, false)
	require.NoError(t, err)
	assert.Empty(t, live)

	own, err := svc.ListMenu(context.Background(), v.ID, true)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestModerateMenuItem(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Campus Grill", Email: "grill@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)
	item, err := svc.AddMenuItem(context.Background(), v.ID, vendorpkg.MenuItemRequest{
		Name: "Burger", PriceCents: 850, Available: true,
	})
	require.NoError(t, err)

	approved, err := svc.ModerateMenuItem(context.Background(), item.ID, true, uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.MenuItemActive, approved.Status)

	live, err := svc.ListMenu(context.Background(), v.ID, false)
	require.NoError(t, err)
	assert.Len(t, live, 1)

	require.Len(t, repo.audits, 1)
	assert.Equal(t, entity.AuditMenuItemApproved, repo.audits[0].Action)
}

func TestUpdateMenuItemOwnership(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo, &fakeNotifRepo{})

	v, err := svc.RegisterVendor(context.Background(), vendorpkg.RegisterVendorRequest{
		Name: "Campus Grill", Email: "grill@example.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)
	item, err := svc.AddMenuItem(context.Background(), v.ID, vendorpkg.MenuItemRequest{
		Name: "Burger", PriceCents: 850,
	})
	require.NoError(t, err)

	newPrice := int64(950)
	updated, err := svc.UpdateMenuItem(context.Background(), v.ID, item.ID, vendorpkg.MenuItemUpdate{PriceCents: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(950), updated.PriceCents)

	_, err = svc.UpdateMenuItem(context.Background(), uuid.New(), item.ID, vendorpkg.MenuItemUpdate{PriceCents: &newPrice})
	assert.Error(t, err)
}
