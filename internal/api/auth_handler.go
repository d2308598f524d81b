package api

import (
	"net/http"

	"github.com/stevenarias/bankcore/internal/api/shared"
	"github.com/stevenarias/bankcore/internal/service/auth"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService *auth.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	env := h.authService.Login(r.Context(), req.Email, req.Password)
	shared.WriteEnvelope(w, r, env)
}
