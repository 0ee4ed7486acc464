package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	analyticspkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/analytics"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

type GormAnalyticsRepo struct{ db *gorm.DB }

func NewGormAnalyticsRepo(db *gorm.DB) analyticspkg.Repository {
	return &GormAnalyticsRepo{db: db}
}

func (r *GormAnalyticsRepo) CountVendors(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Count(&n).Error
	return n, err
}

func (r *GormAnalyticsRepo) CountActiveVendors(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).
		Where("status = ?", entity.VendorActive).Count(&n).Error
	return n, err
}

func (r *GormAnalyticsRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&n).Error
	return n, err
}

func (r *GormAnalyticsRepo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *GormAnalyticsRepo) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormAnalyticsRepo) ListOrdersSince(ctx context.Context, since time.Time) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormAnalyticsRepo) VendorNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	if err := r.db.WithContext(ctx).Model(&entity.Vendor{}).
		Select("id", "name").Where("id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
