package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository specifies admin related database operations.
type Repository interface {
	Store(ctx context.Context, a *entity.Admin) (*entity.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	Update(ctx context.Context, a *entity.Admin) (*entity.Admin, error)
	List(ctx context.Context) ([]entity.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
