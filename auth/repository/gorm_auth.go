package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/auth"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormAuthRepo) GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormAuthRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
