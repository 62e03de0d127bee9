package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// MembershipService governs the sensitive mutations on a clinic's members.
type MembershipService interface {
	// ChangeRole updates the target user's role within the clinic. The
	// requester must be an admin of that clinic (or a super admin), and a
	// non-super requester can never touch a super admin's role.
	ChangeRole(ctx context.Context, requester *domain.User, clinicID, targetUserID, newRole string) error

	// RemoveMember deactivates the target user and clears its clinic
	// membership. Requesters can never remove themselves.
	RemoveMember(ctx context.Context, requester *domain.User, clinicID, targetUserID string) error
}
