package domain

import "time"

// AuditAction identifies the auth operation an audit entry records.
type AuditAction string

const (
	AuditSignup AuditAction = "signup"
	AuditLogin  AuditAction = "login"
)

// AuditEntry is one row in the authentication audit trail. Failed attempts
// are recorded with an empty UserID and Success=false.
type AuditEntry struct {
	Action    AuditAction
	UserID    string
	Username  string
	Role      Role
	Success   bool
	Reason    string // short failure reason, empty on success
	Timestamp time.Time
}
