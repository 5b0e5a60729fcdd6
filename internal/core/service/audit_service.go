package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/c-a-r-l-x/accounts-service/internal/api/metrics"
	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists account activity to
// the audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single account event. Failures are counted and surfaced
// to the caller, but the audit pipeline treats them as non-fatal.
func (s *auditService) Record(ctx context.Context, event ports.AccountEventInput) error {
	entry := &domain.AuditEntry{
		Username:  event.Username,
		Action:    event.Action,
		Detail:    event.Detail,
		CreatedAt: event.Timestamp,
	}

	if err := s.repo.InsertEntry(ctx, entry); err != nil {
		metrics.AuditEventsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("record audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues("recorded").Inc()
	s.log.Debug().
		Str("username", event.Username).
		Str("action", event.Action).
		Msg("audit event recorded")

	return nil
}
