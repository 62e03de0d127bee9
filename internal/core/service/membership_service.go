package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// AuditSink abstracts the asynchronous audit trail (queue dispatcher).
type AuditSink interface {
	Enqueue(record domain.AuditRecord)
}

type membershipService struct {
	users ports.UserRepository
	audit AuditSink
	log   zerolog.Logger
}

// NewMembershipService returns a MembershipService implementation.
func NewMembershipService(users ports.UserRepository, audit AuditSink, log zerolog.Logger) ports.MembershipService {
	return &membershipService{users: users, audit: audit, log: log}
}

// ChangeRole updates the target user's role within the clinic.
func (s *membershipService) ChangeRole(ctx context.Context, requester *domain.User, clinicID, targetUserID, newRole string) error {
	if err := RequireClinicAdmin(requester, clinicID); err != nil {
		s.record(requester, clinicID, targetUserID, domain.AuditRoleChanged, err)
		return err
	}

	target, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		if err == domain.ErrPrincipalNotFound {
			return domain.ErrTargetNotFound
		}
		return fmt.Errorf("change role: load target %s: %w", targetUserID, err)
	}

	// A clinic admin must never be able to demote a platform-level
	// principal, even when the target's stored clinic id happens to match.
	if domain.IsSuperAdmin(target.Role) && !domain.IsSuperAdmin(requester.Role) {
		err := domain.Denied(domain.ReasonModifySuperAdmin)
		s.record(requester, clinicID, targetUserID, domain.AuditRoleChanged, err)
		return err
	}

	// The update is filtered by (id, clinic_id): a stale or forged clinic id
	// cannot silently reach a user in another clinic.
	if err := s.users.UpdateRole(ctx, targetUserID, clinicID, newRole); err != nil {
		return err
	}

	s.log.Info().
		Str("requester_id", requester.ID).
		Str("clinic_id", clinicID).
		Str("target_id", targetUserID).
		Str("new_role", string(domain.NormalizeRole(newRole))).
		Msg("role changed")
	s.record(requester, clinicID, targetUserID, domain.AuditRoleChanged, nil)
	return nil
}

// RemoveMember deactivates the target and clears its clinic membership.
func (s *membershipService) RemoveMember(ctx context.Context, requester *domain.User, clinicID, targetUserID string) error {
	if err := RequireClinicAdmin(requester, clinicID); err != nil {
		s.record(requester, clinicID, targetUserID, domain.AuditMemberRemoved, err)
		return err
	}

	if requester.ID == targetUserID {
		err := domain.Denied(domain.ReasonRemoveSelf)
		s.record(requester, clinicID, targetUserID, domain.AuditMemberRemoved, err)
		return err
	}

	if err := s.users.UpdateMembership(ctx, targetUserID, clinicID, domain.UserDeactivated); err != nil {
		return err
	}

	s.log.Info().
		Str("requester_id", requester.ID).
		Str("clinic_id", clinicID).
		Str("target_id", targetUserID).
		Msg("member removed")
	s.record(requester, clinicID, targetUserID, domain.AuditMemberRemoved, nil)
	return nil
}

// record enqueues an audit entry; the sink is optional in tests.
func (s *membershipService) record(requester *domain.User, clinicID, targetID string, action domain.AuditAction, denial error) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditRecord{
		ActorID:  requester.ID,
		ClinicID: clinicID,
		TargetID: targetID,
		Action:   action,
		Allowed:  denial == nil,
		Reason:   domain.DenialReason(denial),
		At:       time.Now().UTC(),
	})
}
