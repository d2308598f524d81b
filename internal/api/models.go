package api

import "github.com/shopspring/decimal"

// Common request structures

// RegisterUserRequest defines the payload for the user registration
// endpoint. bcrypt caps input at 72 bytes, so the password does too.
type RegisterUserRequest struct {
	IdentificationNumber string `json:"identificationNumber" validate:"required"`
	Name                 string `json:"name"                 validate:"required"`
	Email                string `json:"email"                validate:"required,email"`
	Password             string `json:"password"             validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// Credentials are not updatable here.
type UpdateUserRequest struct {
	IdentificationNumber string `json:"identificationNumber" validate:"required"`
	Name                 string `json:"name"                 validate:"required"`
	Email                string `json:"email"                validate:"required,email"`
}

// CreateAccountRequest defines the payload for opening an account. The
// opening balance may be zero; negative balances are rejected downstream.
type CreateAccountRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"accountType"   validate:"required"`
}

// UpdateAccountRequest defines the payload for the account update
// endpoint. Balance moves only through deposits and withdrawals.
type UpdateAccountRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	AccountType   string `json:"accountType"   validate:"required"`
}

// AmountRequest defines the payload for deposit and withdrawal
// endpoints. Amount sign and magnitude are validated by the service so
// the rejection message stays uniform.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
