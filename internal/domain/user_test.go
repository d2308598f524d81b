package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("900123", "Steven Arias", "steven@example.com", "plaintext-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Email != "steven@example.com" {
		t.Errorf("Expected email steven@example.com, got %s", user.Email)
	}

	if user.Password != "plaintext-password" {
		t.Errorf("Expected plaintext password to be carried, got %s", user.Password)
	}

	if user.HashedPassword != "" {
		t.Error("Expected hashed password to be empty before hashing")
	}

	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewUserValidationFailures(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		userName string
		password string
		wantErr  error
	}{
		{"empty email", "", "Steven", "pw", ErrEmptyEmail},
		{"malformed email", "not-an-email", "Steven", "pw", ErrInvalidEmail},
		{"missing domain dot", "a@b", "Steven", "pw", ErrInvalidEmail},
		{"empty name", "a@b.com", "", "pw", ErrEmptyName},
		{"empty password", "a@b.com", "Steven", "", ErrEmptyPassword},
		{"overlong password", "a@b.com", "Steven", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser("900123", tc.userName, tc.email, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	// Users loaded from the store carry only the hash.
	user := User{
		ID:             uuid.New(),
		Name:           "Steven Arias",
		Email:          "steven@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected %v, got %v", ErrEmptyPassword, err)
	}

	user.ID = uuid.Nil
	if err := user.Validate(); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("Expected %v, got %v", ErrEmptyUserID, err)
	}
}
