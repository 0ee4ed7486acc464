package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/admin"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// GormAdminRepo implements admin.Repository using GORM.
type GormAdminRepo struct {
	db *gorm.DB
}

func NewGormAdminRepo(db *gorm.DB) adminpkg.Repository {
	return &GormAdminRepo{db: db}
}

func (r *GormAdminRepo) Store(ctx context.Context, a *entity.Admin) (*entity.Admin, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, adminpkg.ErrEmailTaken
		}
		return nil, err
	}
	return a, nil
}

func (r *GormAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminpkg.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormAdminRepo) Update(ctx context.Context, a *entity.Admin) (*entity.Admin, error) {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *GormAdminRepo) List(ctx context.Context) ([]entity.Admin, error) {
	var list []entity.Admin
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormAdminRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAdminRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Admin{}).Count(&count).Error
	return count, err
}
