package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c-a-r-l-x/accounts-service/internal/core/domain"
	"github.com/c-a-r-l-x/accounts-service/internal/core/ports"
)

// AccountHandler handles the administrative listing, edit and audit-trail
// endpoints.
type AccountHandler struct {
	service ports.AccountService
	audit   ports.AuditRepository
}

func NewAccountHandler(service ports.AccountService, audit ports.AuditRepository) *AccountHandler {
	return &AccountHandler{service: service, audit: audit}
}

// List returns all accounts, optionally filtered by role.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Param        role  query     int  false  "Filter by role id (1 or 2)"
// @Success      200   {object}  listAccountsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Security     BearerAuth
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	var (
		accounts []*domain.Account
		err      error
	)

	if roleParam := c.QueryParam("role"); roleParam != "" {
		selection, convErr := strconv.Atoi(roleParam)
		if convErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "role must be a number")
		}
		accounts, err = h.service.ListAccountsByRole(c.Request().Context(), selection)
	} else {
		accounts, err = h.service.ListAccounts(c.Request().Context())
	}
	if err != nil {
		return err
	}

	data := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, toAccountResponse(a))
	}

	return c.JSON(http.StatusOK, listAccountsResponse{Data: data, Total: len(data)})
}

// Edit applies a partial update to the named account. Fields are validated
// and committed one at a time in the order username → email → role; a
// validation failure aborts the remaining fields but does not roll back the
// ones already applied.
//
// @Summary      Edit an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        username  path      string              true  "Current username"
// @Param        body      body      editAccountRequest  true  "Fields to change"
// @Success      204       "account updated"
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Security     BearerAuth
// @Router       /accounts/{username} [patch]
func (h *AccountHandler) Edit(c echo.Context) error {
	var req editAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.EditAccount(c.Request().Context(), c.Param("username"), ports.EditAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Audit returns the most recent activity entries for an account.
//
// @Summary      Account activity trail
// @Tags         accounts
// @Produce      json
// @Param        username  path      string  true   "Username"
// @Param        limit     query     int     false  "Maximum entries (default 50)"
// @Success      200       {object}  auditTrailResponse
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Security     BearerAuth
// @Router       /accounts/{username}/audit [get]
func (h *AccountHandler) Audit(c echo.Context) error {
	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		n, err := strconv.Atoi(limitParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
		}
		limit = n
	}

	entries, err := h.audit.ListByUsername(c.Request().Context(), c.Param("username"), limit)
	if err != nil {
		return err
	}

	data := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, auditEntryResponse{
			Action:    e.Action,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, auditTrailResponse{Username: c.Param("username"), Entries: data})
}
