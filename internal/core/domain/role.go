package domain

import "strings"

// Role is a canonical role identifier. The set of roles is closed; runtime
// code never defines new ones.
type Role string

const (
	RoleSuperAdmin   Role = "superadmin"
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
	RoleLabTech      Role = "labtech"
	RoleAccountant   Role = "accountant"

	// RoleUnknown is the fail-closed sentinel for any role string that does
	// not match an enumerated role. It carries zero capabilities and zero
	// accessible views. An unrecognized role is never an error: legacy
	// records and in-flight migrations may carry spellings we no longer
	// issue, and a request with one must degrade, not crash.
	RoleUnknown Role = "unknown"
)

// Roles lists every enumerated role, excluding RoleUnknown.
var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleReceptionist,
	RolePharmacist,
	RoleLabTech,
	RoleAccountant,
}

var roleSet = func() map[Role]struct{} {
	s := make(map[Role]struct{}, len(Roles))
	for _, r := range Roles {
		s[r] = struct{}{}
	}
	return s
}()

// NormalizeRole canonicalizes a raw role string. Role strings arrive from
// heterogeneous sources ("SuperAdmin", "super_admin", "Super Admin") and must
// all resolve to the same canonical identifier: the input is lower-cased and
// separator characters (spaces, underscores, hyphens) are removed before
// matching.
func NormalizeRole(raw string) Role {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch r {
		case ' ', '\t', '_', '-':
			continue
		}
		b.WriteRune(r)
	}

	candidate := Role(b.String())
	if _, ok := roleSet[candidate]; ok {
		return candidate
	}
	return RoleUnknown
}

// IsSuperAdmin reports whether the raw role string canonicalizes to the
// privileged role.
func IsSuperAdmin(raw string) bool {
	return NormalizeRole(raw) == RoleSuperAdmin
}
