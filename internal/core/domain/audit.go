package domain

import "time"

// AuditAction identifies the kind of security-relevant event being recorded.
type AuditAction string

const (
	AuditRoleChanged       AuditAction = "role_changed"
	AuditMemberRemoved     AuditAction = "member_removed"
	AuditClinicProvisioned AuditAction = "clinic_provisioned"
	AuditAccessDenied      AuditAction = "access_denied"
)

// AuditRecord is one entry in the authorization audit trail. Reason is the
// stable machine reason on denials and empty on allowed actions.
type AuditRecord struct {
	ActorID  string
	ClinicID string
	TargetID string
	Action   AuditAction
	Allowed  bool
	Reason   string
	At       time.Time
}
