package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single audit entry. Denials are additionally logged with
// their machine reason so the log pipeline sees them even if the insert
// fails.
func (s *auditService) Record(ctx context.Context, record *domain.AuditRecord) error {
	if !record.Allowed {
		s.log.Warn().
			Str("actor_id", record.ActorID).
			Str("clinic_id", record.ClinicID).
			Str("action", string(record.Action)).
			Str("reason", record.Reason).
			Msg("denied action audited")
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}
