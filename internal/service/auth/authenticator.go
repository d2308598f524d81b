package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/stevenarias/bankcore/internal/store"
)

// Authenticator verifies an email/password pair against the credential
// backend. Implementations return ErrBadCredentials when the pair does
// not verify, without distinguishing unknown emails from wrong
// passwords.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

// storeAuthenticator authenticates against the user store using a
// PasswordVerifier.
type storeAuthenticator struct {
	users    store.UserStore
	verifier PasswordVerifier
}

// NewStoreAuthenticator creates an Authenticator backed by the given
// user store and password verifier.
func NewStoreAuthenticator(users store.UserStore, verifier PasswordVerifier) (Authenticator, error) {
	if users == nil {
		return nil, errors.New("user store must not be nil")
	}
	if verifier == nil {
		return nil, errors.New("password verifier must not be nil")
	}
	return &storeAuthenticator{users: users, verifier: verifier}, nil
}

func (a *storeAuthenticator) Authenticate(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrBadCredentials
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Unknown emails read as bad credentials so callers cannot
			// probe which addresses are registered.
			return ErrBadCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	return a.verifier.Compare(user.HashedPassword, password)
}
