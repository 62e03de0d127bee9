package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// ProvisionClinicInput carries the fields for creating a new clinic.
type ProvisionClinicInput struct {
	Name     string
	Settings map[string]string
}

// ClinicService owns clinic provisioning, restricted to super admins.
type ClinicService interface {
	Provision(ctx context.Context, requester *domain.User, input ProvisionClinicInput) (*domain.Clinic, error)
}
