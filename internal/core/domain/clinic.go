package domain

import (
	"strings"
	"time"
)

// ClinicStatus is the lifecycle state of a clinic (tenant).
type ClinicStatus string

const (
	ClinicActive    ClinicStatus = "active"
	ClinicPending   ClinicStatus = "pending"
	ClinicSuspended ClinicStatus = "suspended"
	ClinicCancelled ClinicStatus = "cancelled"
)

// Plan tiers and the defaults applied at provisioning.
const (
	PlanStarter   = "starter"
	PlanStandard  = "standard"
	PlanUnlimited = "unlimited"

	DefaultPlan  = PlanStandard
	DefaultSeats = 10
)

// Clinic is one isolated customer organization, the unit of data
// partitioning. Created only through the super-admin provisioning path.
type Clinic struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Plan      string            `json:"plan"`
	Seats     int               `json:"seats"`
	Status    ClinicStatus      `json:"status"`
	Settings  map[string]string `json:"settings,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Slugify derives a URL-safe slug from a clinic name: lower-cased, internal
// whitespace runs become single hyphens, every other non-alphanumeric
// character is stripped, and hyphen runs are collapsed.
// "Test Hospital!! " → "test-hospital".
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	joined := strings.Join(fields, "-")

	var b strings.Builder
	b.Grow(len(joined))
	prevHyphen := false
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == '-':
			if !prevHyphen {
				b.WriteRune(r)
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
