package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

type clinicService struct {
	clinics ports.ClinicRepository
	audit   AuditSink
	log     zerolog.Logger
}

// NewClinicService returns a ClinicService implementation.
func NewClinicService(clinics ports.ClinicRepository, audit AuditSink, log zerolog.Logger) ports.ClinicService {
	return &clinicService{clinics: clinics, audit: audit, log: log}
}

// Provision creates a new clinic. Restricted to super admins; the new clinic
// starts active on the default plan with the default seat count.
func (s *clinicService) Provision(ctx context.Context, requester *domain.User, input ports.ProvisionClinicInput) (*domain.Clinic, error) {
	if !domain.IsSuperAdmin(requester.Role) {
		err := domain.Denied(domain.ReasonProvisionDenied)
		s.record(requester, "", err)
		return nil, err
	}

	now := time.Now().UTC()
	clinic := &domain.Clinic{
		Name:      input.Name,
		Slug:      domain.Slugify(input.Name),
		Plan:      domain.DefaultPlan,
		Seats:     domain.DefaultSeats,
		Status:    domain.ClinicActive,
		Settings:  input.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.clinics.Insert(ctx, clinic)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to provision clinic")
		return nil, err
	}

	s.log.Info().
		Str("requester_id", requester.ID).
		Str("clinic_id", created.ID).
		Str("slug", created.Slug).
		Msg("clinic provisioned")
	s.record(requester, created.ID, nil)
	return created, nil
}

func (s *clinicService) record(requester *domain.User, clinicID string, denial error) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditRecord{
		ActorID:  requester.ID,
		ClinicID: clinicID,
		Action:   domain.AuditClinicProvisioned,
		Allowed:  denial == nil,
		Reason:   domain.DenialReason(denial),
		At:       time.Now().UTC(),
	})
}
