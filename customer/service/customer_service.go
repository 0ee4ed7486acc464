package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// customerService implements customer.Service.
type customerService struct {
	repo customerpkg.Repository
}

// NewCustomerService constructs a Service backed by the provided repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

// SyncCustomer creates a base User with role "customer" and a Customer
// profile on first sign-in, and refreshes identity fields afterwards.
func (s *customerService) SyncCustomer(ctx context.Context, req customerpkg.SyncCustomerRequest) (*entity.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByFirebaseUID(ctx, req.FirebaseUID)
	if err == nil {
		// Returning caller: refresh identity fields from the provider.
		existing.FirstName = req.FirstName
		existing.LastName = req.LastName
		if req.Phone != "" {
			existing.Phone = req.Phone
		}
		if _, err := s.repo.UpdateUser(ctx, existing); err != nil {
			return nil, err
		}
		return s.repo.GetCustomerByUserID(ctx, existing.ID)
	}
	if err != customerpkg.ErrNotFound {
		return nil, err
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, customerpkg.ErrEmailTaken
	}

	uid := req.FirebaseUID
	u := &entity.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         email,
		Phone:         req.Phone,
		FirebaseUID:   &uid,
		EmailVerified: true,
		Role:          "customer",
	}
	createdUser, err := s.repo.StoreUser(ctx, u)
	if err != nil {
		return nil, err
	}

	c := &entity.Customer{UserID: createdUser.ID, Status: entity.CustomerActive}
	return s.repo.StoreCustomer(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req customerpkg.UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.FirstName != nil {
		c.User.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.User.LastName = *req.LastName
	}
	if req.Phone != nil {
		c.User.Phone = *req.Phone
	}
	if req.FirstName != nil || req.LastName != nil || req.Phone != nil {
		if _, err := s.repo.UpdateUser(ctx, &c.User); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateCustomer(ctx, c)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string) error {
	if _, err := s.repo.GetCustomerByID(ctx, id); err != nil {
		return err
	}
	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     entity.AuditCustomerDeleted,
		EntityType: "customer",
		EntityID:   id,
		Reason:     reason,
	}
	return s.repo.DeleteWithAudit(ctx, id, entry)
}

func (s *customerService) AddFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error {
	return s.repo.AddFavorite(ctx, &entity.Favorite{CustomerID: customerID, VendorID: vendorID})
}

func (s *customerService) RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error {
	return s.repo.RemoveFavorite(ctx, customerID, vendorID)
}

func (s *customerService) ListFavorites(ctx context.Context, customerID uuid.UUID) ([]entity.Vendor, error) {
	return s.repo.ListFavoriteVendors(ctx, customerID)
}
