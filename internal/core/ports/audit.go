package ports

import (
	"context"
	"time"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
)

// AccountEventInput is the DTO handed from the service layer to the audit
// pipeline.
type AccountEventInput struct {
	Username  string
	Action    string
	Detail    string
	Timestamp time.Time
}

// AuditSink accepts account events for asynchronous recording. Implementations
// must not block the caller beyond a bounded buffer.
type AuditSink interface {
	Enqueue(event AccountEventInput)
}

// AuditService records account activity events.
type AuditService interface {
	Record(ctx context.Context, event AccountEventInput) error
}

// AuditRepository defines persistence operations for the activity trail.
type AuditRepository interface {
	InsertEntry(ctx context.Context, entry *domain.AuditEntry) error
	ListByUsername(ctx context.Context, username string, limit int) ([]*domain.AuditEntry, error)
}
