package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// ClinicRepository defines the persistence contract for clinic records.
type ClinicRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Clinic, error)
	Insert(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error)
}
