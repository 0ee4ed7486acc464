package repository

import (
	"context"

	"gorm.io/gorm"

	auditpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/audit"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

const defaultListLimit = 100

type GormAuditRepo struct{ db *gorm.DB }

func NewGormAuditRepo(db *gorm.DB) auditpkg.Repository {
	return &GormAuditRepo{db: db}
}

func (r *GormAuditRepo) List(ctx context.Context, action string, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if action != "" {
		q = q.Where("action = ?", action)
	}
	var list []entity.AuditLog
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
