package ports

import (
	"context"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
)

// EditAccountInput carries the optional fields of an edit operation. Nil
// means the field is not being changed.
type EditAccountInput struct {
	Username *string
	Email    *string
	Role     *int
}

// AccountService exposes the account operations consumed by the transport
// layer.
type AccountService interface {
	// Register validates username, password, email and role selection in that
	// order, hashes the password and persists the account.
	Register(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error)
	// Authenticate verifies the password for the named account and returns the
	// account (and thereby its role) on success.
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	// EditAccount applies the supplied fields in the fixed order
	// username → email → role. Each field is validated and committed
	// individually; on a validation failure the operation stops with a
	// *domain.EditError and fields already committed in the same call remain
	// committed.
	EditAccount(ctx context.Context, username string, input EditAccountInput) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	ListAccountsByRole(ctx context.Context, roleSelection int) ([]*domain.Account, error)
}
