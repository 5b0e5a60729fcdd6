package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
)

// AccountRepository implements ports.AccountRepository on the users table.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountRow struct {
	ID         int64
	Username   string
	Credential []byte
	Email      string
	RoleID     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r accountRow) toDomain() *domain.Account {
	return &domain.Account{
		ID:         r.ID,
		Username:   r.Username,
		Credential: string(r.Credential),
		Email:      r.Email,
		Role:       domain.Role(r.RoleID),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

const accountColumns = "id, username, credential, email, role_id, created_at, updated_at"

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM users WHERE username = ?", username)

	var ar accountRow
	err := row.Scan(&ar.ID, &ar.Username, &ar.Credential, &ar.Email, &ar.RoleID, &ar.CreatedAt, &ar.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ar.toDomain(), nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, credential, email, role_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		account.Username, []byte(account.Credential), account.Email, int64(account.Role), account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameOrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = id
	return &created, nil
}

func (r *AccountRepository) UpdateFields(ctx context.Context, username string, update ports.AccountUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if update.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *update.Username)
	}
	if update.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *update.Email)
	}
	if update.Role != nil {
		sets = append(sets, "role_id = ?")
		args = append(args, int64(*update.Role))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, username)

	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE username = ?", args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameOrEmailTaken
		}
		return fmt.Errorf("update account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) ListAll(ctx context.Context) ([]*domain.Account, error) {
	return r.list(ctx, "SELECT "+accountColumns+" FROM users ORDER BY username")
}

func (r *AccountRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Account, error) {
	return r.list(ctx, "SELECT "+accountColumns+" FROM users WHERE role_id = ? ORDER BY username", int64(role))
}

func (r *AccountRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var ar accountRow
		if err := rows.Scan(&ar.ID, &ar.Username, &ar.Credential, &ar.Email, &ar.RoleID, &ar.CreatedAt, &ar.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		accounts = append(accounts, ar.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on any
// column. The driver exposes the extended SQLite result code.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
