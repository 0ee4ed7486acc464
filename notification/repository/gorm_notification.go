package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	notifpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification"
)

const defaultListLimit = 50

type GormNotificationRepo struct{ db *gorm.DB }

func NewGormNotificationRepo(db *gorm.DB) notifpkg.Repository {
	return &GormNotificationRepo{db: db}
}

func (r *GormNotificationRepo) Store(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *GormNotificationRepo) List(ctx context.Context, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var list []entity.Notification
	if err := r.db.WithContext(ctx).
		Order("is_read ASC, created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notifpkg.ErrNotFound
	}
	return nil
}
