package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/ledger"
	"github.com/stevenarias/bankcore/internal/respond"
	"github.com/stevenarias/bankcore/internal/store"
)

// Account outcome messages.
const (
	msgInvalidAmount      = "Invalid amount."
	msgInsufficientFunds  = "Insufficient funds."
	msgAccountCreated     = "Account created successfully"
	msgAccountUpdated     = "Account updated successfully"
	msgAccountDeleted     = "Account deleted successfully"
	msgAccountNumberInUse = "Account number already in use"
	msgAccountsRetrieved  = "Accounts retrieved successfully"
)

// Transaction type labels used in movement messages.
const (
	txTypeDeposit    = "DEPOSIT"
	txTypeWithdrawal = "WITHDRAWAL"
)

func accountNotFoundMessage(id uuid.UUID) string {
	return fmt.Sprintf("The account with ID: %s does not exist.", id)
}

// AccountUpdate carries the mutable fields of an account. Balance moves
// only through Deposit and Withdraw.
type AccountUpdate struct {
	Number string
	Type   string
}

// AccountService implements account management and the deposit/withdraw
// movement operations. Every successful movement appends exactly one
// entry to the ledger, after the balance change has committed.
type AccountService struct {
	accounts store.AccountStore
	users    store.UserStore
	ledger   *ledger.Ledger
	respond  *respond.Builder[domain.Account]
	logger   *slog.Logger
}

// NewAccountService creates an AccountService with its dependencies.
func NewAccountService(
	accounts store.AccountStore,
	users store.UserStore,
	movements *ledger.Ledger,
	builder *respond.Builder[domain.Account],
	logger *slog.Logger,
) (*AccountService, error) {
	if accounts == nil {
		return nil, errors.New("account store must not be nil")
	}
	if users == nil {
		return nil, errors.New("user store must not be nil")
	}
	if movements == nil {
		return nil, errors.New("ledger must not be nil")
	}
	if builder == nil {
		return nil, errors.New("response builder must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		accounts: accounts,
		users:    users,
		ledger:   movements,
		respond:  builder,
		logger:   logger.With(slog.String("component", "account_service")),
	}, nil
}

// ListByOwner returns accounts for the authenticated owner.
//
// TODO: filter by ownerID. The listing currently returns every account
// regardless of owner, which matches the behavior clients currently
// depend on; fixing it needs a coordinated client release.
func (s *AccountService) ListByOwner(ctx context.Context, ownerID uuid.UUID) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		accounts, err := s.accounts.List(ctx)
		if err != nil {
			return respond.Envelope{}, err
		}

		views := make([]AccountView, 0, len(accounts))
		for _, a := range accounts {
			views = append(views, NewAccountView(a))
		}
		return s.respond.Success(msgAccountsRetrieved, views), nil
	})
}

// GetBalance returns the current balance of an account.
func (s *AccountService) GetBalance(ctx context.Context, id uuid.UUID) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		account, err := s.accounts.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				return s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		message := fmt.Sprintf("The balance for account: %s is: %s", account.Number, account.Balance)
		return s.respond.Success(message, account.Balance), nil
	})
}

// Create opens a new account owned by the given user.
func (s *AccountService) Create(ctx context.Context, ownerID uuid.UUID, account *domain.Account) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if err := account.Validate(); err != nil {
			return s.respond.Error(fmt.Sprintf("Error: %s", err.Error()), http.StatusBadRequest), nil
		}

		owner, err := s.users.GetByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return s.respond.Error(userNotFoundMessage(ownerID), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}
		account.UserID = uuid.NullUUID{UUID: owner.ID, Valid: true}

		if err := s.accounts.Create(ctx, account); err != nil {
			if errors.Is(err, store.ErrAccountNumberExists) {
				return s.respond.Error(msgAccountNumberInUse, http.StatusBadRequest), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "account created",
			slog.String("account_id", account.ID.String()),
			slog.String("user_id", owner.ID.String()))
		return s.respond.Success(msgAccountCreated, account), nil
	})
}

// Update replaces the account number and type of an existing account.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, update AccountUpdate) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		account, err := s.accounts.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				return s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		account.Number = update.Number
		account.Type = update.Type

		if err := s.accounts.Update(ctx, account); err != nil {
			switch {
			case errors.Is(err, store.ErrAccountNumberExists):
				return s.respond.Error(msgAccountNumberInUse, http.StatusBadRequest), nil
			case errors.Is(err, store.ErrAccountNotFound):
				return s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "account updated", slog.String("account_id", id.String()))
		return s.respond.Success(msgAccountUpdated, account), nil
	})
}

// Delete removes an account. A missing account is reported without any
// deletion being attempted.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if _, err := s.accounts.GetByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				return s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		if err := s.accounts.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				return s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound), nil
			}
			return respond.Envelope{}, err
		}

		s.logger.InfoContext(ctx, "account deleted", slog.String("account_id", id.String()))
		return s.respond.Success(msgAccountDeleted, nil), nil
	})
}

// Deposit adds a positive amount to an account balance. The amount is
// validated before the account is looked up; the balance change runs
// under a row lock so concurrent movements serialize.
func (s *AccountService) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if !amount.IsPositive() {
			return s.respond.Error(msgInvalidAmount, http.StatusBadRequest), nil
		}

		var env respond.Envelope
		var recorded *domain.Account
		err := store.RunInTransaction(ctx, s.accounts.DB(), func(ctx context.Context, tx *sql.Tx) error {
			accounts := s.accounts.WithTx(tx)

			account, err := accounts.GetByIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrAccountNotFound) {
					env = s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound)
					return nil
				}
				return err
			}

			account.Balance = account.Balance.Add(amount)
			if err := accounts.UpdateBalance(ctx, account); err != nil {
				return err
			}

			recorded = account
			env = s.respond.Success(
				fmt.Sprintf("Transaction type: %s. Amount: %s. Current balance: %s",
					txTypeDeposit, amount, account.Balance),
				account,
			)
			return nil
		})
		if err != nil {
			return respond.Envelope{}, err
		}

		if recorded != nil {
			s.ledger.Record(
				fmt.Sprintf("Successful deposit to account No. %s for an amount of: %s. Current balance: %s",
					recorded.Number, amount, recorded.Balance),
				amount,
			)
			s.logger.InfoContext(ctx, "deposit applied",
				slog.String("account_id", id.String()),
				slog.String("amount", amount.String()))
		}
		return env, nil
	})
}

// Withdraw subtracts a positive amount from an account balance. The
// amount is validated before the account is looked up; a withdrawal
// that would overdraw the account is rejected without touching it.
func (s *AccountService) Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		if !amount.IsPositive() {
			return s.respond.Error(msgInvalidAmount, http.StatusBadRequest), nil
		}

		var env respond.Envelope
		var recorded *domain.Account
		err := store.RunInTransaction(ctx, s.accounts.DB(), func(ctx context.Context, tx *sql.Tx) error {
			accounts := s.accounts.WithTx(tx)

			account, err := accounts.GetByIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrAccountNotFound) {
					env = s.respond.Error(accountNotFoundMessage(id), http.StatusNotFound)
					return nil
				}
				return err
			}

			if amount.GreaterThan(account.Balance) {
				env = s.respond.Error(msgInsufficientFunds, http.StatusBadRequest)
				return nil
			}

			account.Balance = account.Balance.Sub(amount)
			if err := accounts.UpdateBalance(ctx, account); err != nil {
				return err
			}

			recorded = account
			env = s.respond.Success(
				fmt.Sprintf("Transaction type: %s. Amount: %s. Current balance: %s",
					txTypeWithdrawal, amount, account.Balance),
				account,
			)
			return nil
		})
		if err != nil {
			return respond.Envelope{}, err
		}

		if recorded != nil {
			s.ledger.Record(
				fmt.Sprintf("Successful withdrawal from account No. %s for an amount of: %s. Current balance: %s",
					recorded.Number, amount, recorded.Balance),
				amount,
			)
			s.logger.InfoContext(ctx, "withdrawal applied",
				slog.String("account_id", id.String()),
				slog.String("amount", amount.String()))
		}
		return env, nil
	})
}

// Movements returns the recorded transaction history.
func (s *AccountService) Movements(ctx context.Context) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		return s.respond.Success("Transactions retrieved successfully", s.ledger.ListAll()), nil
	})
}

// MovementMessages returns only the descriptions of the recorded
// movements, same ordering as Movements.
func (s *AccountService) MovementMessages(ctx context.Context) respond.Envelope {
	return s.respond.Do(ctx, func() (respond.Envelope, error) {
		return s.respond.Success("Transactions retrieved successfully", s.ledger.Messages()), nil
	})
}
