package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	notifpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification"
	vendorpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors"
)

// vendorService implements vendor.Service.
type vendorService struct {
	repo   vendorpkg.Repository
	notifs notifpkg.Repository
}

// NewVendorService constructs a Service backed by the provided repositories.
func NewVendorService(repo vendorpkg.Repository, notifs notifpkg.Repository) vendorpkg.Service {
	return &vendorService{repo: repo, notifs: notifs}
}

func (s *vendorService) RegisterVendor(ctx context.Context, req vendorpkg.RegisterVendorRequest) (*entity.Vendor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, vendorpkg.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	v := &entity.Vendor{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Status:       entity.VendorInactive,
	}
	created, err := s.repo.StoreVendor(ctx, v)
	if err != nil {
		return nil, err
	}

	// Alert admins about the pending signup. Best effort: the vendor row is
	// already committed, a lost alert only delays the decision.
	id := created.ID
	_, _ = s.notifs.Store(ctx, &entity.Notification{
		Kind:     entity.NotificationVendorSignup,
		Message:  fmt.Sprintf("vendor %q registered and awaits approval", created.Name),
		EntityID: &id,
	})
	return created, nil
}

func (s *vendorService) Decide(ctx context.Context, vendorID uuid.UUID, action string, adminID uuid.UUID, reason string) (*entity.Vendor, error) {
	var status entity.VendorStatus
	var tag string
	switch action {
	case vendorpkg.DecisionApprove:
		status, tag = entity.VendorActive, entity.AuditVendorApproved
	case vendorpkg.DecisionReject:
		status, tag = entity.VendorSuspended, entity.AuditVendorRejected
	default:
		return nil, vendorpkg.ErrInvalidDecision
	}

	// Existence check up front so an unknown id makes no writes at all.
	if _, err := s.repo.GetVendorByID(ctx, vendorID); err != nil {
		return nil, err
	}

	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     tag,
		EntityType: "vendor",
		EntityID:   vendorID,
		Reason:     reason,
	}
	if err := s.repo.SetStatusWithAudit(ctx, vendorID, status, entry); err != nil {
		return nil, err
	}
	return s.repo.GetVendorByID(ctx, vendorID)
}

func (s *vendorService) SetStatus(ctx context.Context, vendorID uuid.UUID, status entity.VendorStatus, adminID uuid.UUID, reason string) (*entity.Vendor, error) {
	switch status {
	case entity.VendorActive, entity.VendorInactive, entity.VendorSuspended:
	default:
		return nil, fmt.Errorf("unknown vendor status %q", status)
	}
	if _, err := s.repo.GetVendorByID(ctx, vendorID); err != nil {
		return nil, err
	}
	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     entity.AuditVendorStatusSet,
		EntityType: "vendor",
		EntityID:   vendorID,
		Reason:     reason,
		Metadata:   fmt.Sprintf(`{"status":%q}`, status),
	}
	if err := s.repo.SetStatusWithAudit(ctx, vendorID, status, entry); err != nil {
		return nil, err
	}
	return s.repo.GetVendorByID(ctx, vendorID)
}

func (s *vendorService) SetOnline(ctx context.Context, vendorID uuid.UUID, online bool) error {
	return s.repo.SetOnline(ctx, vendorID, online)
}

func (s *vendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return s.repo.GetVendorByID(ctx, id)
}

func (s *vendorService) ListVendors(ctx context.Context, search string) ([]entity.Vendor, error) {
	return s.repo.ListByStatus(ctx, entity.VendorActive, search)
}

func (s *vendorService) ListPendingVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.repo.ListByStatus(ctx, entity.VendorInactive, "")
}

func (s *vendorService) AddMenuItem(ctx context.Context, vendorID uuid.UUID, req vendorpkg.MenuItemRequest) (*entity.MenuItem, error) {
	if _, err := s.repo.GetVendorByID(ctx, vendorID); err != nil {
		return nil, err
	}
	item := &entity.MenuItem{
		VendorID:   vendorID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		Available:  req.Available,
		Status:     entity.MenuItemPending,
	}
	return s.repo.StoreMenuItem(ctx, item)
}

func (s *vendorService) UpdateMenuItem(ctx context.Context, vendorID, itemID uuid.UUID, upd vendorpkg.MenuItemUpdate) (*entity.MenuItem, error) {
	item, err := s.repo.GetMenuItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.VendorID != vendorID {
		return nil, fmt.Errorf("forbidden: menu item belongs to another vendor")
	}
	if upd.PriceCents != nil {
		item.PriceCents = *upd.PriceCents
	}
	if upd.Available != nil {
		item.Available = *upd.Available
	}
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *vendorService) ModerateMenuItem(ctx context.Context, itemID uuid.UUID, approve bool, adminID uuid.UUID, reason string) (*entity.MenuItem, error) {
	if _, err := s.repo.GetMenuItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	status := entity.MenuItemArchived
	tag := entity.AuditMenuItemRejected
	if approve {
		status = entity.MenuItemActive
		tag = entity.AuditMenuItemApproved
	}
	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     tag,
		EntityType: "menu_item",
		EntityID:   itemID,
		Reason:     reason,
	}
	if err := s.repo.SetMenuItemStatusWithAudit(ctx, itemID, status, entry); err != nil {
		return nil, err
	}
	return s.repo.GetMenuItemByID(ctx, itemID)
}

func (s *vendorService) ListMenu(ctx context.Context, vendorID uuid.UUID, includePending bool) ([]entity.MenuItem, error) {
	statuses := []entity.MenuItemStatus{entity.MenuItemActive}
	if includePending {
		statuses = append(statuses, entity.MenuItemPending)
	}
	return s.repo.ListMenuItems(ctx, vendorID, statuses)
}

func (s *vendorService) ListPendingMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.repo.ListMenuItemsByStatus(ctx, entity.MenuItemPending)
}
