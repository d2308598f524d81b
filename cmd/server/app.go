package main

import (
	"fmt"
	"log/slog"

	"github.com/stevenarias/bankcore/internal/config"
	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/ledger"
	"github.com/stevenarias/bankcore/internal/platform/postgres"
	"github.com/stevenarias/bankcore/internal/respond"
	"github.com/stevenarias/bankcore/internal/service"
	"github.com/stevenarias/bankcore/internal/service/auth"
	"github.com/stevenarias/bankcore/internal/store"
)

// application holds the wired dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db       *databaseHandle
	jwt      auth.JWTService
	users    store.UserStore
	accounts store.AccountStore

	userService    *service.UserService
	accountService *service.AccountService
	authService    *auth.AuthService
}

// newApplication connects to the database, runs migrations when
// configured, and builds the service graph bottom-up.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db.pool, logger); err != nil {
			db.close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	userStore := postgres.NewUserStore(db.pool, logger)
	accountStore := postgres.NewAccountStore(db.pool, logger)

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	authenticator, err := auth.NewStoreAuthenticator(userStore, hasher)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	movements := ledger.New()

	userService, err := service.NewUserService(
		userStore, hasher, respond.NewBuilder(service.RedactUser), logger)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	accountService, err := service.NewAccountService(
		accountStore, userStore, movements, respond.NewBuilder(service.RedactAccount), logger)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	authService, err := auth.NewAuthService(
		authenticator, userStore, jwtService, respond.NewBuilder[domain.User](nil), logger)
	if err != nil {
		db.close()
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		jwt:            jwtService,
		users:          userStore,
		accounts:       accountStore,
		userService:    userService,
		accountService: accountService,
		authService:    authService,
	}, nil
}

// close releases the application's long-lived resources.
func (app *application) close() {
	app.db.close()
}
