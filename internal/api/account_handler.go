package api

import (
	"net/http"

	"github.com/stevenarias/bankcore/internal/api/shared"
	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/service"
)

// AccountHandler handles bank-account HTTP requests.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles GET /api/accounts requests for the authenticated user.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.WriteError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	env := h.accountService.ListByOwner(r.Context(), userID)
	shared.WriteEnvelope(w, r, env)
}

// Create handles POST /api/accounts requests. The new account is owned
// by the authenticated user.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.WriteError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := domain.NewAccount(req.AccountNumber, req.Balance, req.AccountType)
	if err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	env := h.accountService.Create(r.Context(), userID, account)
	shared.WriteEnvelope(w, r, env)
}

// GetBalance handles GET /api/accounts/{id}/balance requests.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	env := h.accountService.GetBalance(r.Context(), id)
	shared.WriteEnvelope(w, r, env)
}

// Update handles PUT /api/accounts/{id} requests.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	env := h.accountService.Update(r.Context(), id, service.AccountUpdate{
		Number: req.AccountNumber,
		Type:   req.AccountType,
	})
	shared.WriteEnvelope(w, r, env)
}

// Delete handles DELETE /api/accounts/{id} requests.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	env := h.accountService.Delete(r.Context(), id)
	shared.WriteEnvelope(w, r, env)
}

// Deposit handles POST /api/accounts/{id}/deposit requests.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AmountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	env := h.accountService.Deposit(r.Context(), id, req.Amount)
	shared.WriteEnvelope(w, r, env)
}

// Withdraw handles POST /api/accounts/{id}/withdraw requests.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AmountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	env := h.accountService.Withdraw(r.Context(), id, req.Amount)
	shared.WriteEnvelope(w, r, env)
}
