package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the bank.
// The plaintext password only exists transiently during registration;
// only the bcrypt hash is ever persisted.
type User struct {
	ID                   uuid.UUID `json:"id"`
	IdentificationNumber string    `json:"identification_number"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Password             string    `json:"-"` // Plaintext, registration only
	HashedPassword       string    `json:"-"` // Never exposed
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given identity fields and plaintext
// password. It generates a new UUID and sets the timestamps.
// The caller is responsible for hashing the password before storing the user.
func NewUser(identificationNumber, name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:                   uuid.New(),
		IdentificationNumber: identificationNumber,
		Name:                 name,
		Email:                email,
		Password:             password,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Password != "" {
		// bcrypt silently truncates inputs beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a basic shape check: a non-empty local part,
// an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
