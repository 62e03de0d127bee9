package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// AuditService records security-relevant events to the audit trail.
type AuditService interface {
	Record(ctx context.Context, record *domain.AuditRecord) error
}
