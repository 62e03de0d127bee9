package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

type recordingSink struct {
	records []domain.AuditRecord
}

func (s *recordingSink) Enqueue(r domain.AuditRecord) {
	s.records = append(s.records, r)
}

func (s *recordingSink) last(t *testing.T) domain.AuditRecord {
	t.Helper()
	if len(s.records) == 0 {
		t.Fatalf("no audit records enqueued")
	}
	return s.records[len(s.records)-1]
}

func TestChangeRole_ByClinicAdmin(t *testing.T) {
	repo := newStubUserRepo(doctor("clinic-a"))
	sink := &recordingSink{}
	svc := NewMembershipService(repo, sink, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), clinicAdmin("clinic-a"), "clinic-a", "u-doc-clinic-a", "nurse")
	if err != nil {
		t.Fatalf("change role failed: %v", err)
	}
	if got := repo.users["u-doc-clinic-a"].Role; got != "nurse" {
		t.Fatalf("role not updated: %s", got)
	}
	if repo.lastUpdateClinicID != "clinic-a" {
		t.Fatalf("update not scoped by clinic id, got %q", repo.lastUpdateClinicID)
	}
	if rec := sink.last(t); !rec.Allowed || rec.Action != domain.AuditRoleChanged {
		t.Fatalf("unexpected audit record: %+v", rec)
	}
}

func TestChangeRole_NonAdminDenied(t *testing.T) {
	repo := newStubUserRepo(doctor("clinic-a"))
	svc := NewMembershipService(repo, nil, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), doctor("clinic-a"), "clinic-a", "u-doc-clinic-a", "nurse")
	if got := domain.DenialReason(err); got != domain.ReasonUnauthorized {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonUnauthorized)
	}
}

func TestChangeRole_ForeignClinicAdminDenied(t *testing.T) {
	repo := newStubUserRepo(doctor("clinic-b"))
	svc := NewMembershipService(repo, nil, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), clinicAdmin("clinic-a"), "clinic-b", "u-doc-clinic-b", "nurse")
	if got := domain.DenialReason(err); got != domain.ReasonUnauthorized {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonUnauthorized)
	}
}

func TestChangeRole_CannotDemoteSuperAdmin(t *testing.T) {
	// A super admin record whose stale clinic id happens to equal the
	// requester's clinic must still be untouchable.
	target := &domain.User{ID: "u-platform", Role: "super_admin", ClinicID: "clinic-a", Status: domain.UserActive}
	repo := newStubUserRepo(target)
	sink := &recordingSink{}
	svc := NewMembershipService(repo, sink, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), clinicAdmin("clinic-a"), "clinic-a", "u-platform", "doctor")
	if got := domain.DenialReason(err); got != domain.ReasonModifySuperAdmin {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonModifySuperAdmin)
	}
	if got := repo.users["u-platform"].Role; got != "super_admin" {
		t.Fatalf("super admin role was mutated to %s", got)
	}
	if rec := sink.last(t); rec.Allowed || rec.Reason != domain.ReasonModifySuperAdmin {
		t.Fatalf("denial not audited: %+v", rec)
	}
}

func TestChangeRole_SuperAdminMayDemoteSuperAdmin(t *testing.T) {
	target := &domain.User{ID: "u-platform", Role: "superadmin", ClinicID: "clinic-a", Status: domain.UserActive}
	repo := newStubUserRepo(target)
	svc := NewMembershipService(repo, nil, zerolog.Nop())

	if err := svc.ChangeRole(context.Background(), superAdmin(), "clinic-a", "u-platform", "admin"); err != nil {
		t.Fatalf("super admin requester should succeed: %v", err)
	}
	if got := repo.users["u-platform"].Role; got != "admin" {
		t.Fatalf("role not updated: %s", got)
	}
}

func TestChangeRole_TargetNotFound(t *testing.T) {
	svc := NewMembershipService(newStubUserRepo(), nil, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), superAdmin(), "clinic-a", "ghost", "nurse")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
}

func TestChangeRole_OutOfClinicTargetNotUpdated(t *testing.T) {
	// Target exists but lives in another clinic; the scoped update must miss.
	repo := newStubUserRepo(doctor("clinic-b"))
	svc := NewMembershipService(repo, nil, zerolog.Nop())

	err := svc.ChangeRole(context.Background(), superAdmin(), "clinic-a", "u-doc-clinic-b", "nurse")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound for out-of-clinic target, got %v", err)
	}
	if got := repo.users["u-doc-clinic-b"].Role; got != "doctor" {
		t.Fatalf("out-of-clinic row was mutated: %s", got)
	}
}

func TestRemoveMember_Succeeds(t *testing.T) {
	repo := newStubUserRepo(doctor("clinic-a"))
	sink := &recordingSink{}
	svc := NewMembershipService(repo, sink, zerolog.Nop())

	if err := svc.RemoveMember(context.Background(), clinicAdmin("clinic-a"), "clinic-a", "u-doc-clinic-a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	u := repo.users["u-doc-clinic-a"]
	if u.Status != domain.UserDeactivated {
		t.Fatalf("target not deactivated: %s", u.Status)
	}
	if u.ClinicID != "" {
		t.Fatalf("clinic membership not cleared: %s", u.ClinicID)
	}
	if rec := sink.last(t); !rec.Allowed || rec.Action != domain.AuditMemberRemoved {
		t.Fatalf("unexpected audit record: %+v", rec)
	}
}

func TestRemoveMember_SelfRemovalAlwaysDenied(t *testing.T) {
	// Regardless of role, including super admin.
	for _, requester := range []*domain.User{superAdmin(), clinicAdmin("clinic-a")} {
		repo := newStubUserRepo(requester)
		svc := NewMembershipService(repo, nil, zerolog.Nop())

		err := svc.RemoveMember(context.Background(), requester, "clinic-a", requester.ID)
		if got := domain.DenialReason(err); got != domain.ReasonRemoveSelf {
			t.Fatalf("requester %s: reason = %q, want %q", requester.Role, got, domain.ReasonRemoveSelf)
		}
	}
}

func TestRemoveMember_TargetNotFound(t *testing.T) {
	svc := NewMembershipService(newStubUserRepo(), nil, zerolog.Nop())

	err := svc.RemoveMember(context.Background(), superAdmin(), "clinic-a", "ghost")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
}
