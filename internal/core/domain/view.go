package domain

// View names one navigable surface of the application.
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewPatients     View = "patients"
	ViewAppointments View = "appointments"
	ViewInventory    View = "inventory"
	ViewPharmacy     View = "pharmacy"
	ViewLabWork      View = "lab-work"
	ViewBilling      View = "billing"
	ViewReports      View = "reports"
	ViewStaff        View = "staff"
	ViewSettings     View = "settings"

	// SuperAdmin-only platform surface for managing clinics.
	ViewSAClinics View = "sa-clinics"
)

// viewRoles is the static view→allowed-roles matrix. A view absent from the
// matrix is inaccessible to everyone.
var viewRoles = map[View][]Role{
	ViewDashboard:    {RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePharmacist, RoleLabTech, RoleAccountant},
	ViewPatients:     {RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RoleLabTech},
	ViewAppointments: {RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist},
	ViewInventory:    {RoleSuperAdmin, RoleAdmin, RolePharmacist},
	ViewPharmacy:     {RoleSuperAdmin, RoleAdmin, RolePharmacist},
	ViewLabWork:      {RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleLabTech},
	ViewBilling:      {RoleSuperAdmin, RoleAdmin, RoleReceptionist, RoleAccountant},
	ViewReports:      {RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleAccountant},
	ViewStaff:        {RoleSuperAdmin, RoleAdmin},
	ViewSettings:     {RoleSuperAdmin, RoleAdmin},
	ViewSAClinics:    {RoleSuperAdmin},
}

// defaultViews maps each role to its landing view.
var defaultViews = map[Role]View{
	RoleSuperAdmin:   ViewSAClinics,
	RoleAdmin:        ViewDashboard,
	RoleDoctor:       ViewPatients,
	RoleNurse:        ViewPatients,
	RoleReceptionist: ViewAppointments,
	RolePharmacist:   ViewPharmacy,
	RoleLabTech:      ViewLabWork,
	RoleAccountant:   ViewBilling,
}

// CanEnterView reports whether the role may enter the view. Unknown roles and
// views absent from the matrix both deny.
func CanEnterView(rawRole string, v View) bool {
	role := NormalizeRole(rawRole)
	for _, allowed := range viewRoles[v] {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultViewFor returns the landing view for the role. Total over all
// inputs: an unrecognized role lands on the generic dashboard, so callers
// never need a failure branch.
func DefaultViewFor(rawRole string) View {
	if v, ok := defaultViews[NormalizeRole(rawRole)]; ok {
		return v
	}
	return ViewDashboard
}

// AccessibleViews returns every view the role may enter, used by the UI to
// build navigation. Like ListCapabilities, a convenience for rendering, not a
// security boundary.
func AccessibleViews(rawRole string) []View {
	role := NormalizeRole(rawRole)
	var out []View
	for v, allowed := range viewRoles {
		for _, r := range allowed {
			if r == role {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
