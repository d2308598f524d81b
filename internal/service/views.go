package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stevenarias/bankcore/internal/domain"
)

// UserView is the public DTO for a user. Credentials never appear here;
// the response builder's redaction hook applies it to every user entity
// before it is embedded in an envelope.
type UserView struct {
	ID                   uuid.UUID `json:"id"`
	IdentificationNumber string    `json:"identificationNumber"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewUserView maps a user entity to its public view.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:                   user.ID,
		IdentificationNumber: user.IdentificationNumber,
		Name:                 user.Name,
		Email:                user.Email,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

// RedactUser is the redaction hook for the user envelope family.
func RedactUser(user *domain.User) any {
	return NewUserView(user)
}

// AccountView is the public DTO for a bank account.
type AccountView struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"accountNumber"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"accountType"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewAccountView maps an account entity to its public view.
func NewAccountView(account *domain.Account) AccountView {
	return AccountView{
		ID:        account.ID,
		Number:    account.Number,
		Balance:   account.Balance,
		Type:      account.Type,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// RedactAccount is the redaction hook for the account envelope family.
func RedactAccount(account *domain.Account) any {
	return NewAccountView(account)
}
