package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	adminpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// adminService implements admin.Service.
type adminService struct {
	repo adminpkg.Repository
}

// NewAdminService constructs a Service backed by the provided repository.
func NewAdminService(repo adminpkg.Repository) adminpkg.Service {
	return &adminService{repo: repo}
}

func (s *adminService) SeedSuperadmin(ctx context.Context, name, email, password string) (*entity.Admin, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}
	return s.create(ctx, adminpkg.RegisterAdminRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entity.AdminSuperadmin,
	})
}

func (s *adminService) RegisterAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest, callerRole entity.AdminRole) (*entity.Admin, error) {
	if callerRole != entity.AdminSuperadmin {
		return nil, adminpkg.ErrForbidden
	}
	switch req.Role {
	case entity.AdminSuperadmin, entity.AdminRegular, entity.AdminStaff:
	default:
		req.Role = entity.AdminStaff
	}
	return s.create(ctx, req)
}

func (s *adminService) create(ctx context.Context, req adminpkg.RegisterAdminRequest) (*entity.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, adminpkg.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &entity.Admin{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       entity.AdminActive,
	}
	return s.repo.Store(ctx, a)
}

func (s *adminService) SetStatus(ctx context.Context, id uuid.UUID, status entity.AdminStatus, callerRole entity.AdminRole) (*entity.Admin, error) {
	if callerRole != entity.AdminSuperadmin {
		return nil, adminpkg.ErrForbidden
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = status
	return s.repo.Update(ctx, a)
}

func (s *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *adminService) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	return s.repo.List(ctx)
}
