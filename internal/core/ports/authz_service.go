package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// AuthzService resolves tenant context and enforces clinic isolation.
type AuthzService interface {
	// ResolveContext loads the principal and, when bound to one, its clinic.
	// A super admin legitimately resolves with a nil clinic.
	ResolveContext(ctx context.Context, principalID string) (*domain.User, *domain.Clinic, error)

	// EnsureContext composes ResolveContext with the isolation guard for the
	// "operate within my own clinic" case. Non-privileged principals without
	// a clinic binding, or whose clinic is still pending approval, are
	// denied.
	EnsureContext(ctx context.Context, principalID string) (*domain.User, *domain.Clinic, error)

	// AuthorizeClinicAccess decides whether the principal may touch data in
	// the target clinic. Pure: consults only the principal fields.
	AuthorizeClinicAccess(principal *domain.User, targetClinicID string) error
}
