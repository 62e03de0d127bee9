package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// AuditRepository persists entries of the authorization audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
}
