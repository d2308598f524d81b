package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/domain"
)

// AccountStore defines the interface for bank-account persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// Returns ErrAccountNumberExists if the account number is taken and
	// ErrInvalidEntity if the owner reference points at a missing user.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByIDForUpdate retrieves an account and locks its row for the
	// remainder of the surrounding transaction (SELECT ... FOR UPDATE).
	// Only meaningful on a store bound to a transaction via WithTx.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// List returns every account, oldest first.
	List(ctx context.Context) ([]*domain.Account, error)

	// Update overwrites the account number and type of an existing
	// account. Balance and owner are not updatable through this path.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// UpdateBalance persists a new balance for the account.
	// Returns ErrAccountNotFound if the account does not exist.
	UpdateBalance(ctx context.Context, account *domain.Account) error

	// Delete removes an account from the store by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) AccountStore

	// DB returns the underlying database handle, used by services to open
	// transactions around multi-step operations.
	DB() *sql.DB
}
