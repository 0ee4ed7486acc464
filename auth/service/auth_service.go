package service

import (
	"context"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

type authService struct {
	repo authpkg.Repository
}

func NewAuthService(repo authpkg.Repository) authpkg.Service {
	return &authService{repo: repo}
}

const tokenTTL = 24 * time.Hour

func (s *authService) CustomerLogin(ctx context.Context, firebaseUID string) (*authpkg.Principal, error) {
	user, err := s.repo.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, err
	}

	p := &authpkg.Principal{
		Subject: user.ID.String(),
		Role:    "customer",
	}
	c, err := s.repo.GetCustomerByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if c.Status != entity.CustomerActive {
		return nil, authpkg.ErrAccountDisabled
	}
	p.CustomerID = c.ID.String()
	return s.mint(p)
}

func (s *authService) VendorLogin(ctx context.Context, email, password string) (*authpkg.Principal, error) {
	v, err := s.repo.GetVendorByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) != nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	// A suspended vendor may not sign in; a pending one may, so it can watch
	// its approval state.
	if v.Status == entity.VendorSuspended {
		return nil, authpkg.ErrAccountDisabled
	}
	p := &authpkg.Principal{
		Subject:  v.ID.String(),
		Role:     "vendor",
		VendorID: v.ID.String(),
	}
	return s.mint(p)
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (*authpkg.Principal, error) {
	a, err := s.repo.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	if a.Status != entity.AdminActive {
		return nil, authpkg.ErrAccountDisabled
	}
	p := &authpkg.Principal{
		Subject:   a.ID.String(),
		Role:      "admin",
		AdminID:   a.ID.String(),
		AdminRole: string(a.Role),
	}
	return s.mint(p)
}

func (s *authService) mint(p *authpkg.Principal) (*authpkg.Principal, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change-me"
	}
	token, err := authpkg.SignJWT(secret, p, tokenTTL)
	if err != nil {
		return nil, err
	}
	p.Token = token
	return p, nil
}
