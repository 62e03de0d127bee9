package domain

import "testing"

func TestNormalizeRole_Variants(t *testing.T) {
	variants := []string{"SuperAdmin", "superadmin", "super_admin", "Super Admin", "SUPER_ADMIN", " super admin "}
	for _, v := range variants {
		if got := NormalizeRole(v); got != RoleSuperAdmin {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", v, got, RoleSuperAdmin)
		}
	}
}

func TestNormalizeRole_AllEnumerated(t *testing.T) {
	cases := map[string]Role{
		"Admin":        RoleAdmin,
		"doctor":       RoleDoctor,
		"Nurse":        RoleNurse,
		"receptionist": RoleReceptionist,
		"Pharmacist":   RolePharmacist,
		"Lab Tech":     RoleLabTech,
		"lab_tech":     RoleLabTech,
		"LabTech":      RoleLabTech,
		"Accountant":   RoleAccountant,
	}
	for raw, want := range cases {
		if got := NormalizeRole(raw); got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRole_Unknown(t *testing.T) {
	for _, raw := range []string{"wizard", "", "admin2", "superadmins"} {
		if got := NormalizeRole(raw); got != RoleUnknown {
			t.Fatalf("NormalizeRole(%q) = %q, want unknown", raw, got)
		}
	}
}

func TestIsSuperAdmin(t *testing.T) {
	if !IsSuperAdmin("Super Admin") {
		t.Fatalf("expected Super Admin to be privileged")
	}
	if IsSuperAdmin("admin") {
		t.Fatalf("admin must not be privileged")
	}
}
