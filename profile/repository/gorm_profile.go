package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	profilepkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile"
)

// GormProfileRepo implements profile.Repository using GORM.
type GormProfileRepo struct {
	db *gorm.DB
}

func NewGormProfileRepo(db *gorm.DB) profilepkg.Repository {
	return &GormProfileRepo{db: db}
}

func (r *GormProfileRepo) Store(ctx context.Context, p *entity.Profile) (*entity.Profile, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profilepkg.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProfileRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profilepkg.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProfileRepo) Update(ctx context.Context, p *entity.Profile) (*entity.Profile, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProfileRepo) SetVerificationWithAudit(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Profile{}).Where("id = ?", id).Update("student_id_verified", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return profilepkg.ErrNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *GormProfileRepo) ListByVerification(ctx context.Context, status entity.VerificationStatus) ([]entity.Profile, error) {
	var list []entity.Profile
	if err := r.db.WithContext(ctx).
		Where("student_id_verified = ?", status).
		Order("updated_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
