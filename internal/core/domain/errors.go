package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrTargetNotFound     = errors.New("target user not found")
	ErrClinicNotFound     = errors.New("clinic not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDenied is the class sentinel every DeniedError matches via
	// errors.Is, so callers can branch on "denied at all" without caring
	// about the specific reason.
	ErrDenied = errors.New("access denied")
)

// Stable machine-checkable denial reasons. These are contract: tests, audit
// records, and log pipelines assert on the exact strings.
const (
	ReasonCrossTenant      = "cross-tenant access"
	ReasonNoTenantContext  = "no tenant context"
	ReasonUnauthorized     = "unauthorized"
	ReasonModifySuperAdmin = "cannot modify super admin role"
	ReasonRemoveSelf       = "cannot remove yourself"
	ReasonProvisionDenied  = "only super admins can create tenants"
	ReasonClinicPending    = "clinic pending approval"
)

// DeniedError is an authorization denial carrying its reason. Denials are
// never expressed as a bare false: the reason travels with the error so the
// caller can log and audit why, while the user-facing message stays generic.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Reason)
}

// Is makes every DeniedError match ErrDenied.
func (e *DeniedError) Is(target error) bool {
	return target == ErrDenied
}

// Denied constructs a DeniedError with the given reason.
func Denied(reason string) error {
	return &DeniedError{Reason: reason}
}

// DenialReason extracts the machine reason from a denial, or "" if err is not
// a DeniedError.
func DenialReason(err error) string {
	var de *DeniedError
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
