package domain

// Capability is an atomic authorized action tag in resource.action form.
// The catalog is closed: every capability any guard references is enumerated
// here, and none are defined at runtime.
type Capability string

const (
	CapPatientView   Capability = "patient.view"
	CapPatientEdit   Capability = "patient.edit"
	CapPatientDelete Capability = "patient.delete"

	CapAppointmentView   Capability = "appointment.view"
	CapAppointmentManage Capability = "appointment.manage"

	CapInventoryView   Capability = "inventory.view"
	CapInventoryEdit   Capability = "inventory.edit"
	CapInventoryDelete Capability = "inventory.delete"

	CapPharmacyDispense Capability = "pharmacy.dispense"

	CapLabOrder  Capability = "lab.order"
	CapLabResult Capability = "lab.result"

	CapInvoiceView     Capability = "invoice.view"
	CapInvoiceCreate   Capability = "invoice.create"
	CapPaymentsProcess Capability = "payments.process"

	CapReportsView Capability = "reports.view"

	CapStaffManage  Capability = "staff.manage"
	CapSettingsEdit Capability = "settings.edit"

	CapClinicProvision Capability = "clinic.provision"
	CapClinicManage    Capability = "clinic.manage"
)

// rolePermissions is the static role→capability matrix. Built once at process
// start, never mutated afterwards, so lookups are goroutine-safe without
// locking.
var rolePermissions = map[Role][]Capability{
	RoleSuperAdmin: {
		CapPatientView, CapPatientEdit, CapPatientDelete,
		CapAppointmentView, CapAppointmentManage,
		CapInventoryView, CapInventoryEdit, CapInventoryDelete,
		CapPharmacyDispense,
		CapLabOrder, CapLabResult,
		CapInvoiceView, CapInvoiceCreate, CapPaymentsProcess,
		CapReportsView,
		CapStaffManage, CapSettingsEdit,
		CapClinicProvision, CapClinicManage,
	},
	RoleAdmin: {
		CapPatientView, CapPatientEdit, CapPatientDelete,
		CapAppointmentView, CapAppointmentManage,
		CapInventoryView, CapInventoryEdit, CapInventoryDelete,
		CapPharmacyDispense,
		CapLabOrder, CapLabResult,
		CapInvoiceView, CapInvoiceCreate, CapPaymentsProcess,
		CapReportsView,
		CapStaffManage, CapSettingsEdit,
		CapClinicManage,
	},
	RoleDoctor: {
		CapPatientView, CapPatientEdit,
		CapAppointmentView, CapAppointmentManage,
		CapLabOrder, CapLabResult,
		CapReportsView,
	},
	RoleNurse: {
		CapPatientView, CapPatientEdit,
		CapAppointmentView,
		CapLabResult,
	},
	RoleReceptionist: {
		CapPatientView,
		CapAppointmentView, CapAppointmentManage,
		CapInvoiceView,
	},
	RolePharmacist: {
		CapPharmacyDispense,
		CapInventoryView, CapInventoryEdit,
	},
	RoleLabTech: {
		CapPatientView,
		CapLabOrder, CapLabResult,
	},
	RoleAccountant: {
		CapInvoiceView, CapInvoiceCreate, CapPaymentsProcess,
		CapReportsView,
	},
}

// grantSets mirrors rolePermissions as sets for O(1) membership checks.
var grantSets = func() map[Role]map[Capability]struct{} {
	m := make(map[Role]map[Capability]struct{}, len(rolePermissions))
	for role, caps := range rolePermissions {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[c] = struct{}{}
		}
		m[role] = set
	}
	return m
}()

// HasCapability reports whether the role grants the capability. The raw role
// is normalized first; an unrecognized role holds no grants. Pure lookup, no
// I/O, deterministic.
func HasCapability(rawRole string, c Capability) bool {
	set, ok := grantSets[NormalizeRole(rawRole)]
	if !ok {
		return false
	}
	_, granted := set[c]
	return granted
}

// HasAll reports whether the role grants every listed capability.
func HasAll(rawRole string, caps ...Capability) bool {
	for _, c := range caps {
		if !HasCapability(rawRole, c) {
			return false
		}
	}
	return true
}

// HasAny reports whether the role grants at least one listed capability.
func HasAny(rawRole string, caps ...Capability) bool {
	for _, c := range caps {
		if HasCapability(rawRole, c) {
			return true
		}
	}
	return false
}

// ListCapabilities returns a copy of the role's full grant set, in matrix
// order. Intended for rendering-time filtering in the UI layer only; the
// guarded action itself must always call HasCapability at the point of use.
func ListCapabilities(rawRole string) []Capability {
	caps, ok := rolePermissions[NormalizeRole(rawRole)]
	if !ok {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}
