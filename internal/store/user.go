package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext credentials are never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns every user, oldest first.
	List(ctx context.Context) ([]*domain.User, error)

	// Update overwrites the identification number, name and email of an
	// existing user. The stored credential hash is untouched.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when updating to an email that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. Accounts owned by
	// the user survive with their owner reference cleared.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
