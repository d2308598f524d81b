package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/platform/logger"
	"github.com/stevenarias/bankcore/internal/store"
)

// AccountStore implements the store.AccountStore interface using a
// PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	pool   *sql.DB
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. The *sql.DB is retained so services can open
// transactions around deposit/withdraw via DB().
func NewAccountStore(db *sql.DB, log *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &AccountStore{
		db:     db,
		pool:   db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{db: tx, pool: s.pool, logger: s.logger}
}

// DB implements store.AccountStore.DB
func (s *AccountStore) DB() *sql.DB {
	return s.pool
}

// Create implements store.AccountStore.Create
// Returns store.ErrAccountNumberExists when the number unique constraint
// fires and store.ErrInvalidEntity when the owner reference is dangling.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, number, balance, type, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Number,
		account.Balance,
		account.Type,
		account.UserID,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "accounts_number_key") {
			return store.ErrAccountNumberExists
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s not found",
				store.ErrInvalidEntity, account.UserID.UUID)
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("number", account.Number))
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.getByID(ctx, id, false)
}

// GetByIDForUpdate implements store.AccountStore.GetByIDForUpdate
// The row stays locked until the surrounding transaction finishes, which
// serializes concurrent balance read-modify-write cycles.
func (s *AccountStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.getByID(ctx, id, true)
}

func (s *AccountStore) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, number, balance, type, user_id, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Number,
		&account.Balance,
		&account.Type,
		&account.UserID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("account_id", id.String()))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return nil, err
	}

	return &account, nil
}

// List implements store.AccountStore.List
func (s *AccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, number, balance, type, user_id, created_at, updated_at
		FROM accounts
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	accounts := []*domain.Account{}
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Number,
			&account.Balance,
			&account.Type,
			&account.UserID,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return accounts, nil
}

// Update implements store.AccountStore.Update
// Only the account number and type are written through this path.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updatedAt := time.Now().UTC()

	query := `
		UPDATE accounts
		SET number = $1, type = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Number,
		account.Type,
		updatedAt,
		account.ID,
	)

	if err != nil {
		if isUniqueViolation(err, "accounts_number_key") {
			return store.ErrAccountNumberExists
		}
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrAccountNotFound
	}

	account.UpdatedAt = updatedAt

	log.Info("account updated successfully",
		slog.String("account_id", account.ID.String()))
	return nil
}

// UpdateBalance implements store.AccountStore.UpdateBalance
func (s *AccountStore) UpdateBalance(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account.Balance.IsNegative() {
		return domain.ErrNegativeBalance
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE accounts
		SET balance = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Balance,
		updatedAt,
		account.ID,
	)

	if err != nil {
		log.Error("failed to update account balance",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrAccountNotFound
	}

	account.UpdatedAt = updatedAt
	return nil
}

// Delete implements store.AccountStore.Delete
func (s *AccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM accounts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrAccountNotFound
	}

	log.Info("account deleted successfully",
		slog.String("account_id", id.String()))
	return nil
}
