package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customerpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/customer"
	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, customerpkg.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *GormCustomerRepo) UpdateUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *GormCustomerRepo) GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Preload("User").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Omit("User").Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) DeleteWithAudit(ctx context.Context, id uuid.UUID, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Customer{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return customerpkg.ErrNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *GormCustomerRepo) AddFavorite(ctx context.Context, f *entity.Favorite) error {
	// Idempotent: adding an existing favorite is a no-op.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *GormCustomerRepo) RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND vendor_id = ?", customerID, vendorID).
		Delete(&entity.Favorite{}).Error
}

func (r *GormCustomerRepo) ListFavoriteVendors(ctx context.Context, customerID uuid.UUID) ([]entity.Vendor, error) {
	var list []entity.Vendor
	if err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.vendor_id = vendors.id").
		Where("favorites.customer_id = ?", customerID).
		Order("vendors.name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
