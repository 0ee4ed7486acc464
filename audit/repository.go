package audit

import (
	"context"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

// Repository reads the audit trail. Entries are written by the domain
// repositories inside their decision transactions, so this interface
// only exposes reads for the admin surface.
type Repository interface {
	// List returns entries newest first, optionally filtered by action tag.
	List(ctx context.Context, action string, limit int) ([]entity.AuditLog, error)
}
