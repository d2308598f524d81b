package api

import (
	"net/http"

	"github.com/stevenarias/bankcore/internal/api/shared"
	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/service"
)

// UserHandler handles user management HTTP requests.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /api/users/register requests. This route is
// public; everything else under /api/users requires a token.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.IdentificationNumber, req.Name, req.Email, req.Password)
	if err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	env := h.userService.Register(r.Context(), user)
	shared.WriteEnvelope(w, r, env)
}

// List handles GET /api/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	env := h.userService.List(r.Context())
	shared.WriteEnvelope(w, r, env)
}

// GetByID handles GET /api/users/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	env := h.userService.GetByID(r.Context(), id)
	shared.WriteEnvelope(w, r, env)
}

// Update handles PUT /api/users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	env := h.userService.Update(r.Context(), id, service.UserUpdate{
		IdentificationNumber: req.IdentificationNumber,
		Name:                 req.Name,
		Email:                req.Email,
	})
	shared.WriteEnvelope(w, r, env)
}

// Delete handles DELETE /api/users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	env := h.userService.Delete(r.Context(), id)
	shared.WriteEnvelope(w, r, env)
}
