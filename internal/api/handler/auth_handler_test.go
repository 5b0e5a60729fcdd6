package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error)
	authFn     func(ctx context.Context, username, password string) (*domain.Account, error)
	editFn     func(ctx context.Context, username string, input ports.EditAccountInput) error
	listFn     func(ctx context.Context) ([]*domain.Account, error)
	listRoleFn func(ctx context.Context, roleSelection int) ([]*domain.Account, error)
}

func (s *stubAccountService) Register(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
	return s.registerFn(ctx, username, password, email, roleSelection)
}

func (s *stubAccountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	return s.authFn(ctx, username, password)
}

func (s *stubAccountService) EditAccount(ctx context.Context, username string, input ports.EditAccountInput) error {
	return s.editFn(ctx, username, input)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountService) ListAccountsByRole(ctx context.Context, roleSelection int) ([]*domain.Account, error) {
	return s.listRoleFn(ctx, roleSelection)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
			if username != "alice123" || roleSelection != 1 {
				t.Fatalf("unexpected args: %s %d", username, roleSelection)
			}
			return &domain.Account{ID: 1, Username: username, Email: email, Role: domain.RoleGeneralUser}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice123","password":"Secret123","email":"alice@example.com","role":1}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice123" || resp["role_name"] != "General User" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["credential"]; leaked {
		t.Fatalf("credential must not appear in responses")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
			return nil, domain.ErrUsernameOrEmailTaken
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice123","password":"Secret123","email":"alice@example.com","role":1}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrUsernameOrEmailTaken) {
		t.Fatalf("expected ErrUsernameOrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", "not-json")
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, password, email string, roleSelection int) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"alice123"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		authFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			if username != "alice123" || password != "Secret123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Account{ID: 1, Username: username, Role: domain.RoleAdministrator}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice123","password":"Secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.RoleName != "Administrator" {
		t.Fatalf("expected Administrator, got %q", resp.RoleName)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice123" || claims["role"] != float64(domain.RoleAdministrator) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"wrong password", domain.ErrWrongPassword},
		{"unknown user", domain.ErrAccountNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAccountService{
				authFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, tc.err
				},
			}
			h := NewAuthHandler(stub, "secret", time.Hour)

			c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
				`{"username":"alice123","password":"nope1234"}`)
			if err := h.Login(c); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}
