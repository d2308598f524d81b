package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common account validation errors
var (
	ErrEmptyAccountID     = errors.New("account ID cannot be empty")
	ErrEmptyAccountNumber = errors.New("account number cannot be empty")
)

// Account represents a bank account. The balance is a non-negative decimal
// and is mutated only through the deposit/withdraw operations of the
// account service; Update touches the number and type fields only.
type Account struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	UserID    uuid.NullUUID   `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewAccount creates a new Account with the given externally assigned
// account number, opening balance and type tag. It generates a new UUID
// and sets the timestamps. The owner is attached later by the service.
func NewAccount(number string, balance decimal.Decimal, accountType string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:        uuid.New(),
		Number:    number,
		Balance:   balance,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Number == "" {
		return ErrEmptyAccountNumber
	}

	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}
