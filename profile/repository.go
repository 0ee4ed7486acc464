package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository specifies profile related database operations.
type Repository interface {
	Store(ctx context.Context, p *entity.Profile) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, p *entity.Profile) (*entity.Profile, error)
	// SetVerificationWithAudit updates the tri-state and appends the audit
	// entry inside one transaction.
	SetVerificationWithAudit(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, entry *entity.AuditLog) error
	ListByVerification(ctx context.Context, status entity.VerificationStatus) ([]entity.Profile, error)
}
