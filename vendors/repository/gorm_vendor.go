package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	vendorpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/vendors"
)

// GormVendorRepo implements vendor.Repository using GORM.
type GormVendorRepo struct {
	db *gorm.DB
}

func NewGormVendorRepo(db *gorm.DB) vendorpkg.Repository {
	return &GormVendorRepo{db: db}
}

func (r *GormVendorRepo) StoreVendor(ctx context.Context, v *entity.Vendor) (*entity.Vendor, error) {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, vendorpkg.ErrEmailTaken
		}
		return nil, err
	}
	return v, nil
}

func (r *GormVendorRepo) GetVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendorpkg.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *GormVendorRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetStatusWithAudit runs the status write and the audit append in one
// transaction so the trail cannot diverge from actual state.
func (r *GormVendorRepo) SetStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.VendorStatus, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Vendor{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return vendorpkg.ErrNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *GormVendorRepo) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	res := r.db.WithContext(ctx).Model(&entity.Vendor{}).Where("id = ?", id).Update("is_online", online)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return vendorpkg.ErrNotFound
	}
	return nil
}

func (r *GormVendorRepo) ListByStatus(ctx context.Context, status entity.VendorStatus, search string) ([]entity.Vendor, error) {
	q := r.db.WithContext(ctx).Where("status = ?", status)
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	var list []entity.Vendor
	if err := q.Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormVendorRepo) StoreMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormVendorRepo) GetMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendorpkg.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormVendorRepo) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormVendorRepo) SetMenuItemStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.MenuItemStatus, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.MenuItem{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return vendorpkg.ErrNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *GormVendorRepo) ListMenuItems(ctx context.Context, vendorID uuid.UUID, statuses []entity.MenuItemStatus) ([]entity.MenuItem, error) {
	var list []entity.MenuItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status IN ?", vendorID, statuses).
		Order("category ASC, name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormVendorRepo) ListMenuItemsByStatus(ctx context.Context, status entity.MenuItemStatus) ([]entity.MenuItem, error) {
	var list []entity.MenuItem
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
