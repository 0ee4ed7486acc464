package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	orderpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/order"
)

type GormOrderRepo struct{ db *gorm.DB }

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository { return &GormOrderRepo{db: db} }

func (r *GormOrderRepo) GetActiveVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, entity.VendorActive).
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orderpkg.ErrVendorNotActive
		}
		return nil, err
	}
	return &v, nil
}

func (r *GormOrderRepo) GetLiveMenuItems(ctx context.Context, vendorID uuid.UUID) (map[uuid.UUID]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ?", vendorID, entity.MenuItemActive).
		Find(&items).Error; err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]entity.MenuItem, len(items))
	for i := range items {
		m[items[i].ID] = items[i]
	}
	return m, nil
}

func (r *GormOrderRepo) StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orderpkg.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *GormOrderRepo) UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Omit("Items").Save(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) SetPaymentStatusWithAudit(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Order{}).Where("id = ?", id).Update("payment_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return orderpkg.ErrNotFound
		}
		return tx.Create(entry).Error
	})
}

// ApplyVendorRating recomputes the running average under the row lock so
// two concurrent ratings cannot drop one another.
func (r *GormOrderRepo) ApplyVendorRating(ctx context.Context, vendorID uuid.UUID, rating int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v entity.Vendor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&v, "id = ?", vendorID).Error; err != nil {
			return err
		}
		newCount := v.RatingCount + 1
		v.Rating = (v.Rating*float64(v.RatingCount) + float64(rating)) / float64(newCount)
		v.RatingCount = newCount
		return tx.Model(&entity.Vendor{}).Where("id = ?", vendorID).
			Updates(map[string]interface{}{"rating": v.Rating, "rating_count": v.RatingCount}).Error
	})
}

func (r *GormOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, exclude []entity.OrderStatus) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Where("vendor_id = ?", vendorID)
	if len(exclude) > 0 {
		q = q.Where("status NOT IN ?", exclude)
	}
	var list []entity.Order
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) VendorNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
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

func (r *GormOrderRepo) CustomerNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []struct {
		ID        uuid.UUID
		FirstName string
		LastName  string
	}
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("customers.id", "users.first_name", "users.last_name").
		Joins("JOIN users ON users.id = customers.user_id").
		Where("customers.id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.FirstName + " " + row.LastName
	}
	return names, nil
}
