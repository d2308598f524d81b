package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stevenarias/bankcore/internal/respond"
)

// WriteEnvelope serializes a response envelope. The HTTP status comes
// from the envelope; the body carries message, success and data only.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, env respond.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode JSON response",
			slog.Any("error", err),
			slog.String("trace_id", GetTraceID(r.Context())))
	}
}

// WriteError writes an error envelope with the given status and message.
// Used by middleware and handlers for failures that never reach a
// service.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	WriteEnvelope(w, r, respond.Envelope{
		Message: message,
		Success: false,
		Data:    nil,
		Status:  status,
	})
}
