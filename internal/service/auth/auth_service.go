package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/respond"
	"github.com/stevenarias/bankcore/internal/store"
)

// Login outcome messages.
const (
	msgIncorrectCredentials = "Incorrect credentials"
	msgAuthSuccessful       = "Authentication successful"
)

// AuthService handles the login flow: credential verification followed
// by token issuance.
type AuthService struct {
	authenticator Authenticator
	users         store.UserStore
	tokens        JWTService
	respond       *respond.Builder[domain.User]
	logger        *slog.Logger
}

// NewAuthService creates an AuthService with its dependencies.
func NewAuthService(
	authenticator Authenticator,
	users store.UserStore,
	tokens JWTService,
	builder *respond.Builder[domain.User],
	logger *slog.Logger,
) (*AuthService, error) {
	if authenticator == nil {
		return nil, errors.New("authenticator must not be nil")
	}
	if users == nil {
		return nil, errors.New("user store must not be nil")
	}
	if tokens == nil {
		return nil, errors.New("JWT service must not be nil")
	}
	if builder == nil {
		return nil, errors.New("response builder must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		tokens:        tokens,
		respond:       builder,
		logger:        logger.With(slog.String("component", "auth_service")),
	}, nil
}

// Login verifies the email/password pair and, on success, issues a
// signed token carried in the envelope data.
func (s *AuthService) Login(ctx context.Context, email, password string) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if err := s.authenticator.Authenticate(ctx, email, password); err != nil {
			if errors.Is(err, ErrBadCredentials) {
				s.logger.InfoContext(ctx, "login rejected", slog.String("email", email))
				return s.respond.Error(msgIncorrectCredentials, http.StatusUnauthorized), nil
			}
			return respond.Envelope{}, err
		}

		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(fmt.Sprintf("User not found with email: %s", email), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		token, err := s.tokens.GenerateToken(ctx, user.Email, user.ID)
		if err != nil {
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "login succeeded", slog.String("user_id", user.ID.String()))
		return s.respond.Success(msgAuthSuccessful, token), nil
	})
}
