// Package service contains the application business logic. Services sit
// between the HTTP handlers and the stores: they enforce the operation
// rules (amount validation, overdraft rejection, email uniqueness),
// coordinate transactions for multi-step mutations, and normalize every
// outcome into a response envelope.
package service
