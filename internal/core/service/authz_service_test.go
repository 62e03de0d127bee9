package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User

	lastUpdateClinicID string // clinic filter passed to the last scoped update
	updateErr          error  // if set, scoped updates return this error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrPrincipalNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.ID]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, clinicID, role string) error {
	r.lastUpdateClinicID = clinicID
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	// Enforce the clinic filter (mirrors the real Mongo query)
	if !ok || u.ClinicID != clinicID {
		return domain.ErrTargetNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) UpdateMembership(_ context.Context, id, clinicID string, status domain.UserStatus) error {
	r.lastUpdateClinicID = clinicID
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok || u.ClinicID != clinicID {
		return domain.ErrTargetNotFound
	}
	u.Status = status
	u.ClinicID = ""
	return nil
}

type stubClinicRepo struct {
	clinics map[string]*domain.Clinic
	nextID  int
}

func newStubClinicRepo(clinics ...*domain.Clinic) *stubClinicRepo {
	r := &stubClinicRepo{clinics: make(map[string]*domain.Clinic)}
	for _, c := range clinics {
		clone := *c
		r.clinics[c.ID] = &clone
	}
	return r
}

func (r *stubClinicRepo) FindByID(_ context.Context, id string) (*domain.Clinic, error) {
	c, ok := r.clinics[id]
	if !ok {
		return nil, domain.ErrClinicNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClinicRepo) Insert(_ context.Context, clinic *domain.Clinic) (*domain.Clinic, error) {
	clone := *clinic
	if clone.ID == "" {
		r.nextID++
		clone.ID = clone.Slug
	}
	r.clinics[clone.ID] = &clone
	out := clone
	return &out, nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func superAdmin() *domain.User {
	return &domain.User{ID: "u-root", Name: "Root", Role: "Super Admin", Status: domain.UserActive}
}

func clinicAdmin(clinicID string) *domain.User {
	return &domain.User{ID: "u-admin-" + clinicID, Name: "Admin", Role: "admin", ClinicID: clinicID, Status: domain.UserActive}
}

func doctor(clinicID string) *domain.User {
	return &domain.User{ID: "u-doc-" + clinicID, Name: "Doc", Role: "doctor", ClinicID: clinicID, Status: domain.UserActive}
}

func activeClinic(id string) *domain.Clinic {
	return &domain.Clinic{ID: id, Name: id, Slug: id, Status: domain.ClinicActive}
}

// ---------------------------------------------------------------------------
// AuthorizeClinicAccess
// ---------------------------------------------------------------------------

func TestAuthorizeClinicAccess_SuperAdminBypassesEverything(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(), newStubClinicRepo(), zerolog.Nop())

	// no clinic binding, arbitrary targets including nonexistent ones
	for _, target := range []string{"clinic-a", "clinic-b", "no-such-clinic", ""} {
		if err := svc.AuthorizeClinicAccess(superAdmin(), target); err != nil {
			t.Fatalf("super admin denied for target %q: %v", target, err)
		}
	}
}

func TestAuthorizeClinicAccess_OwnClinic(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(), newStubClinicRepo(), zerolog.Nop())

	if err := svc.AuthorizeClinicAccess(doctor("clinic-a"), "clinic-a"); err != nil {
		t.Fatalf("same-clinic access denied: %v", err)
	}
}

func TestAuthorizeClinicAccess_CrossTenant(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(), newStubClinicRepo(), zerolog.Nop())

	err := svc.AuthorizeClinicAccess(doctor("clinic-a"), "clinic-b")
	if !errors.Is(err, domain.ErrDenied) {
		t.Fatalf("expected denial, got %v", err)
	}
	if got := domain.DenialReason(err); got != domain.ReasonCrossTenant {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonCrossTenant)
	}
}

func TestAuthorizeClinicAccess_NoTenantContext(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(), newStubClinicRepo(), zerolog.Nop())

	unbound := &domain.User{ID: "u-1", Role: "doctor"}
	err := svc.AuthorizeClinicAccess(unbound, "clinic-a")
	if got := domain.DenialReason(err); got != domain.ReasonNoTenantContext {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonNoTenantContext)
	}
}

// ---------------------------------------------------------------------------
// ResolveContext / EnsureContext
// ---------------------------------------------------------------------------

func TestResolveContext_PrincipalNotFound(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(), newStubClinicRepo(), zerolog.Nop())

	_, _, err := svc.ResolveContext(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestResolveContext_SuperAdminHasNoClinic(t *testing.T) {
	svc := NewAuthzService(newStubUserRepo(superAdmin()), newStubClinicRepo(), zerolog.Nop())

	user, clinic, err := svc.ResolveContext(context.Background(), "u-root")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if user == nil || clinic != nil {
		t.Fatalf("expected user with nil clinic, got user=%v clinic=%v", user, clinic)
	}
}

func TestResolveContext_LoadsClinic(t *testing.T) {
	svc := NewAuthzService(
		newStubUserRepo(doctor("clinic-a")),
		newStubClinicRepo(activeClinic("clinic-a")),
		zerolog.Nop(),
	)

	_, clinic, err := svc.ResolveContext(context.Background(), "u-doc-clinic-a")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if clinic == nil || clinic.ID != "clinic-a" {
		t.Fatalf("clinic not loaded: %v", clinic)
	}
}

func TestEnsureContext_DeniesUnboundPrincipal(t *testing.T) {
	unbound := &domain.User{ID: "u-1", Role: "nurse", Status: domain.UserActive}
	svc := NewAuthzService(newStubUserRepo(unbound), newStubClinicRepo(), zerolog.Nop())

	_, _, err := svc.EnsureContext(context.Background(), "u-1")
	if got := domain.DenialReason(err); got != domain.ReasonNoTenantContext {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonNoTenantContext)
	}
}

func TestEnsureContext_PendingClinicBlocksMemberNotSuperAdmin(t *testing.T) {
	pending := &domain.Clinic{ID: "clinic-p", Name: "Pending", Status: domain.ClinicPending}
	member := doctor("clinic-p")
	root := superAdmin()
	svc := NewAuthzService(newStubUserRepo(member, root), newStubClinicRepo(pending), zerolog.Nop())

	_, _, err := svc.EnsureContext(context.Background(), member.ID)
	if got := domain.DenialReason(err); got != domain.ReasonClinicPending {
		t.Fatalf("reason = %q, want %q", got, domain.ReasonClinicPending)
	}

	if _, _, err := svc.EnsureContext(context.Background(), root.ID); err != nil {
		t.Fatalf("super admin must be exempt from the pending gate: %v", err)
	}
}

func TestEnsureContext_ActiveClinicAllows(t *testing.T) {
	member := doctor("clinic-a")
	svc := NewAuthzService(newStubUserRepo(member), newStubClinicRepo(activeClinic("clinic-a")), zerolog.Nop())

	user, clinic, err := svc.EnsureContext(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if user.ID != member.ID || clinic.ID != "clinic-a" {
		t.Fatalf("unexpected context: user=%v clinic=%v", user, clinic)
	}
}

// ---------------------------------------------------------------------------
// RequireClinicAdmin
// ---------------------------------------------------------------------------

func TestRequireClinicAdmin(t *testing.T) {
	if err := RequireClinicAdmin(superAdmin(), "anywhere"); err != nil {
		t.Fatalf("super admin rejected: %v", err)
	}
	if err := RequireClinicAdmin(clinicAdmin("clinic-a"), "clinic-a"); err != nil {
		t.Fatalf("own-clinic admin rejected: %v", err)
	}

	err := RequireClinicAdmin(clinicAdmin("clinic-a"), "clinic-b")
	if got := domain.DenialReason(err); got != domain.ReasonUnauthorized {
		t.Fatalf("foreign-clinic admin reason = %q, want %q", got, domain.ReasonUnauthorized)
	}

	err = RequireClinicAdmin(doctor("clinic-a"), "clinic-a")
	if got := domain.DenialReason(err); got != domain.ReasonUnauthorized {
		t.Fatalf("non-admin reason = %q, want %q", got, domain.ReasonUnauthorized)
	}
}
