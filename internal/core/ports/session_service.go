package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// SessionService issues and revokes the bearer tokens the API layer consumes.
type SessionService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, tokenID string) error
}
