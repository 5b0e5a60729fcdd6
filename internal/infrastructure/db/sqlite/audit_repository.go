package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository on the audit_log table.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) InsertEntry(ctx context.Context, entry *domain.AuditEntry) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO audit_log (username, action, detail, created_at) VALUES (?, ?, ?, ?)",
		entry.Username, entry.Action, entry.Detail, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

func (r *AuditRepository) ListByUsername(ctx context.Context, username string, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, action, detail, created_at FROM audit_log WHERE username = ? ORDER BY id DESC LIMIT ?",
		username, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list audit entries: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
