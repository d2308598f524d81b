// Package api contains the HTTP handlers and request DTOs. Handlers
// decode and validate payloads, delegate to services, and serialize the
// returned envelopes; they hold no business rules of their own.
package api
