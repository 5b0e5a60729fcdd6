package ports

import (
	"context"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
)

// AccountUpdate carries the optional fields of a single-field update. Nil
// means the field is left untouched. The repository applies only the non-nil
// fields; it makes no atomicity promise across separate UpdateFields calls.
type AccountUpdate struct {
	Username *string
	Email    *string
	Role     *domain.Role
}

// AccountRepository defines persistence operations for accounts. The backing
// store enforces uniqueness of username and email.
type AccountRepository interface {
	// FindByUsername retrieves an account by username.
	// Returns domain.ErrAccountNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// Insert persists a new account.
	// Returns domain.ErrUsernameOrEmailTaken on a uniqueness violation.
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// UpdateFields applies the non-nil fields of update to the named account.
	// Returns domain.ErrAccountNotFound when the account does not exist.
	UpdateFields(ctx context.Context, username string, update AccountUpdate) error
	ListAll(ctx context.Context) ([]*domain.Account, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Account, error)
}
