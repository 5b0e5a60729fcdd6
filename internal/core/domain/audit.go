package domain

import "time"

// Audit actions recorded for account activity.
const (
	AuditRegistered  = "registered"
	AuditLoginOK     = "login_ok"
	AuditLoginFailed = "login_failed"
	AuditEdited      = "edited"
)

// AuditEntry is a single row in the account activity trail.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
