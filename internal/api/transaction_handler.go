package api

import (
	"net/http"

	"github.com/stevenarias/bankcore/internal/api/shared"
	"github.com/stevenarias/bankcore/internal/service"
)

// TransactionHandler serves the recorded movement history.
type TransactionHandler struct {
	accountService *service.AccountService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(accountService *service.AccountService) *TransactionHandler {
	return &TransactionHandler{accountService: accountService}
}

// List handles GET /api/transactions requests.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	env := h.accountService.Movements(r.Context())
	shared.WriteEnvelope(w, r, env)
}

// ListMessages handles GET /api/transactions/messages requests,
// serving the description-only view of the history.
func (h *TransactionHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	env := h.accountService.MovementMessages(r.Context())
	shared.WriteEnvelope(w, r, env)
}
