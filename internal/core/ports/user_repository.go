package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
//
// UpdateRole and UpdateMembership take the clinic id as part of the row
// filter, not as an advisory parameter: an update whose target lives in a
// different clinic must report domain.ErrTargetNotFound, never touch the row.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id, clinicID, role string) error
	UpdateMembership(ctx context.Context, id, clinicID string, status domain.UserStatus) error
}
