package handler

import (
	"time"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
)

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Role     int    `json:"role"     validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// editAccountRequest carries optional field replacements. Absent fields are
// left untouched.
type editAccountRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *int    `json:"role,omitempty"`
}

// accountResponse is the transport representation of an account. The
// credential never leaves the service.
type accountResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      int       `json:"role"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      int(a.Role),
		RoleName:  a.Role.Name(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type loginResponse struct {
	Token    string          `json:"token"`
	Account  accountResponse `json:"account"`
	RoleName string          `json:"role_name"`
}

type listAccountsResponse struct {
	Data  []accountResponse `json:"data"`
	Total int               `json:"total"`
}

type auditEntryResponse struct {
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type auditTrailResponse struct {
	Username string               `json:"username"`
	Entries  []auditEntryResponse `json:"entries"`
}
