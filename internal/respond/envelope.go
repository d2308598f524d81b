// Package respond implements the uniform response envelope every service
// operation returns. An envelope is either a success shape (message,
// data) or an error shape (message, status), never a mix of both, and
// the builder's redaction hook guarantees that domain entities with
// sensitive fields are translated to public views before they are
// embedded.
package respond

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stevenarias/bankcore/internal/platform/logger"
	"github.com/stevenarias/bankcore/internal/redact"
)

// Envelope is the uniform result of a service operation. Status travels
// out of band; clients see message, success and data only.
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Status  int    `json:"-"`
}

// Builder produces envelopes for one entity family E. The redaction hook
// maps a domain entity to its public view; any payload that is not a *E
// (balances, token strings, nil) passes through unchanged.
type Builder[E any] struct {
	redactFn func(*E) any
}

// NewBuilder creates a Builder with the given redaction hook. A nil hook
// means the family has nothing to redact and entities pass through.
func NewBuilder[E any](redactFn func(*E) any) *Builder[E] {
	return &Builder[E]{redactFn: redactFn}
}

// Success builds the success shape. Entity payloads go through the
// redaction hook first.
func (b *Builder[E]) Success(message string, data any) Envelope {
	if entity, ok := data.(*E); ok && entity != nil && b.redactFn != nil {
		data = b.redactFn(entity)
	}

	return Envelope{
		Message: message,
		Success: true,
		Data:    data,
		Status:  http.StatusOK,
	}
}

// Error builds the failure shape. Data is always empty on failure.
func (b *Builder[E]) Error(message string, status int) Envelope {
	return Envelope{
		Message: message,
		Success: false,
		Data:    nil,
		Status:  status,
	}
}

// Do executes an operation and normalizes every outcome into an
// envelope. A returned error or a panic becomes a generic internal-error
// envelope carrying "Error: <cause>"; nothing propagates to the caller.
func (b *Builder[E]) Do(ctx context.Context, fn func() (Envelope, error)) (env Envelope) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error("recovered panic in service operation",
				slog.Any("panic", p))
			env = b.Error(fmt.Sprintf("Error: %v", p), http.StatusInternalServerError)
		}
	}()

	env, err := fn()
	if err != nil {
		logger.FromContext(ctx).Error("service operation failed",
			slog.String("error", redact.Error(err)))
		return b.Error(fmt.Sprintf("Error: %s", err.Error()), http.StatusInternalServerError)
	}

	return env
}
