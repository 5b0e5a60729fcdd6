package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/c-a-r-l-x/accounts-service/internal/api/metrics"
	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
)

type accountService struct {
	repo   ports.AccountRepository
	hasher ports.CredentialHasher
	audit  ports.AuditSink
	logger zerolog.Logger
}

// NewAccountService returns an AccountService implementation backed by the
// given repository and hasher. Account activity is reported to audit as a
// side channel and never fails the user-facing operation.
func NewAccountService(
	repo ports.AccountRepository,
	hasher ports.CredentialHasher,
	audit ports.AuditSink,
	logger zerolog.Logger,
) ports.AccountService {
	return &accountService{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
		logger: logger,
	}
}

// Register validates input in the fixed order username → password → email →
// role, so callers see deterministic error reporting. No store access happens
// before all four checks pass.
func (s *accountService) Register(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
	if !domain.ValidateUsername(username) {
		metrics.RegistrationsTotal.WithLabelValues("invalid_username").Inc()
		return nil, domain.ErrInvalidUsername
	}
	if !domain.ValidatePassword(password) {
		metrics.RegistrationsTotal.WithLabelValues("weak_password").Inc()
		return nil, domain.ErrWeakPassword
	}
	if !domain.ValidateEmail(email) {
		metrics.RegistrationsTotal.WithLabelValues("invalid_email").Inc()
		return nil, domain.ErrInvalidEmail
	}
	role, err := domain.ParseRole(roleSelection)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid_role").Inc()
		return nil, err
	}

	credential, err := s.hasher.Hash(password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:   username,
		Credential: credential,
		Email:      email,
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameOrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrUsernameOrEmailTaken
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("username", username).Msg("failed to insert account")
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("registered").Inc()
	s.logger.Info().Str("username", username).Str("role", role.Name()).Msg("account registered")
	s.audit.Enqueue(ports.AccountEventInput{
		Username:  username,
		Action:    domain.AuditRegistered,
		Timestamp: now,
	})

	return created, nil
}

// Authenticate resolves the account's role by looking up the username and
// verifying the password against the stored credential. There is no session
// state, lockout or timer here.
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("user_not_found").Inc()
			return nil, domain.ErrAccountNotFound
		}
		metrics.AuthAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, account.Credential) {
		metrics.AuthAttemptsTotal.WithLabelValues("wrong_password").Inc()
		s.audit.Enqueue(ports.AccountEventInput{
			Username:  username,
			Action:    domain.AuditLoginFailed,
			Timestamp: time.Now().UTC(),
		})
		return nil, domain.ErrWrongPassword
	}

	metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", username).Str("role", account.Role.Name()).Msg("login successful")
	s.audit.Enqueue(ports.AccountEventInput{
		Username:  username,
		Action:    domain.AuditLoginOK,
		Timestamp: time.Now().UTC(),
	})

	return account, nil
}

// EditAccount applies the supplied fields in the fixed order username →
// email → role. Each field is validated and committed individually; a
// validation failure stops the operation with a *domain.EditError and leaves
// earlier commits in place. This matches the store contract, which guarantees
// atomicity per field update only, and is covered by tests as intended
// behaviour rather than silently turned into a transaction.
func (s *accountService) EditAccount(ctx context.Context, username string, input ports.EditAccountInput) error {
	current := username
	applied := 0

	if input.Username != nil {
		if !domain.ValidateUsername(*input.Username) {
			return &domain.EditError{Field: "username"}
		}
		if err := s.repo.UpdateFields(ctx, current, ports.AccountUpdate{Username: input.Username}); err != nil {
			return fmt.Errorf("edit username: %w", err)
		}
		// Later updates in this call must target the renamed account.
		current = *input.Username
		applied++
	}

	if input.Email != nil {
		if !domain.ValidateEmail(*input.Email) {
			return &domain.EditError{Field: "email"}
		}
		if err := s.repo.UpdateFields(ctx, current, ports.AccountUpdate{Email: input.Email}); err != nil {
			return fmt.Errorf("edit email: %w", err)
		}
		applied++
	}

	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return &domain.EditError{Field: "role"}
		}
		if err := s.repo.UpdateFields(ctx, current, ports.AccountUpdate{Role: &role}); err != nil {
			return fmt.Errorf("edit role: %w", err)
		}
		applied++
	}

	if applied > 0 {
		s.logger.Info().Str("username", current).Int("fields", applied).Msg("account edited")
		s.audit.Enqueue(ports.AccountEventInput{
			Username:  current,
			Action:    domain.AuditEdited,
			Detail:    fmt.Sprintf("%d field(s) changed", applied),
			Timestamp: time.Now().UTC(),
		})
	}

	return nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.ListAll(ctx)
}

func (s *accountService) ListAccountsByRole(ctx context.Context, roleSelection int) ([]*domain.Account, error) {
	role, err := domain.ParseRole(roleSelection)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRole(ctx, role)
}
