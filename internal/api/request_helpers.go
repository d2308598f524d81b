package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/api/shared"
	"github.com/stevenarias/bankcore/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The auth middleware places it there; a missing or nil
// ID means the route was reached without authentication.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requirePathUUID extracts a UUID path parameter, writing a BAD_REQUEST
// envelope and returning false when the parameter is missing or
// malformed.
func requirePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		shared.WriteError(w, r, http.StatusBadRequest, "Invalid "+paramName+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
