package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/respond"
	"github.com/stevenarias/bankcore/internal/service/auth"
	"github.com/stevenarias/bankcore/internal/store"
)

// User outcome messages.
const (
	msgEmailInUse     = "Email already in use"
	msgUserCreated    = "User created successfully"
	msgUserUpdated    = "User updated successfully"
	msgUserDeleted    = "User deleted successfully"
	msgUserFound      = "User found successfully"
	msgUsersRetrieved = "Users retrieved successfully"
)

func userNotFoundMessage(id uuid.UUID) string {
	return fmt.Sprintf("The user with ID: %s does not exist.", id)
}

// UserUpdate carries the mutable profile fields of a user. Credentials
// are not updatable through this path.
type UserUpdate struct {
	IdentificationNumber string
	Name                 string
	Email                string
}

// UserService implements user registration and profile management.
type UserService struct {
	users   store.UserStore
	hasher  auth.PasswordHasher
	respond *respond.Builder[domain.User]
	logger  *slog.Logger
}

// NewUserService creates a UserService with its dependencies.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	builder *respond.Builder[domain.User],
	logger *slog.Logger,
) (*UserService, error) {
	if users == nil {
		return nil, errors.New("user store must not be nil")
	}
	if hasher == nil {
		return nil, errors.New("password hasher must not be nil")
	}
	if builder == nil {
		return nil, errors.New("response builder must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:   users,
		hasher:  hasher,
		respond: builder,
		logger:  logger.With(slog.String("component", "user_service")),
	}, nil
}

// List returns every registered user as public views.
func (s *UserService) List(ctx context.Context) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		users, err := s.users.List(ctx)
		if err != nil {
			return respond.Envelope{}, err
		}

		views := make([]UserView, 0, len(users))
		for _, u := range users {
			views = append(views, NewUserView(u))
		}
		return s.respond.Success(msgUsersRetrieved, views), nil
	})
}

// Register creates a new user. The email must be unused; the plaintext
// password is hashed before anything touches storage and is never
// persisted.
func (s *UserService) Register(ctx context.Context, user *domain.User) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if err := user.Validate(); err != nil {
			return s.respond.Error(fmt.Sprintf("Error: %s", err.Error()), http.StatusBadRequest), nil
		}

		exists, err := s.users.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return respond.Envelope{}, err
		}
		if exists {
			return s.respond.Error(msgEmailInUse, http.StatusBadRequest), nil
		}

		hashed, err := s.hasher.Hash(user.Password)
		if err != nil {
			return respond.Envelope{}, err
		}
		user.HashedPassword = hashed
		user.Password = ""

		if err := s.users.Create(ctx, user); err != nil {
			// The existence check races with concurrent registrations;
			// the unique constraint is the source of truth.
			if errors.Is(err, store.ErrEmailExists) {
				return s.respond.Error(msgEmailInUse, http.StatusBadRequest), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
		return s.respond.Success(msgUserCreated, user), nil
	})
}

// GetByID returns the public view of a single user.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(userNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}
		return s.respond.Success(msgUserFound, user), nil
	})
}

// Update replaces the mutable profile fields of an existing user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, update UserUpdate) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(userNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		user.IdentificationNumber = update.IdentificationNumber
		user.Name = update.Name
		user.Email = update.Email

		if err := s.users.Update(ctx, user); err != nil {
			switch {
			case errors.Is(err, store.ErrEmailExists):
				return s.respond.Error(msgEmailInUse, http.StatusBadRequest), nil
			case errors.Is(err, store.ErrUserNotFound):
				return s.respond.Error(userNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "user updated", slog.String("user_id", id.String()))
		return s.respond.Success(msgUserUpdated, user), nil
	})
}

// Delete removes a user. The user's accounts survive with their owner
// reference cleared.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(userNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		if err := s.users.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(userNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
		return s.respond.Success(msgUserDeleted, nil), nil
	})
}
