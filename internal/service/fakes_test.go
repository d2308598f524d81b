package service

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for service tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	createErr error
	updateErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	existing, ok := f.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	existing.IdentificationNumber = user.IdentificationNumber
	existing.Name = user.Name
	existing.Email = user.Email
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return f }

// fakeAccountStore is an in-memory store.AccountStore. The db handle
// backs RunInTransaction in movement tests; the data itself lives in
// the map so a sqlmock with bare begin/commit expectations suffices.
type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
	db       *sql.DB

	balanceErr error
}

func newFakeAccountStore(db *sql.DB) *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[uuid.UUID]*domain.Account), db: db}
}

func (f *fakeAccountStore) Create(ctx context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Number == account.Number {
			return store.ErrAccountNumberExists
		}
	}
	clone := *account
	f.accounts[account.ID] = &clone
	return nil
}

func (f *fakeAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeAccountStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeAccountStore) Update(ctx context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.accounts[account.ID]
	if !ok {
		return store.ErrAccountNotFound
	}
	existing.Number = account.Number
	existing.Type = account.Type
	return nil
}

func (f *fakeAccountStore) UpdateBalance(ctx context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balanceErr != nil {
		return f.balanceErr
	}
	existing, ok := f.accounts[account.ID]
	if !ok {
		return store.ErrAccountNotFound
	}
	if account.Balance.IsNegative() {
		return domain.ErrNegativeBalance
	}
	existing.Balance = account.Balance
	return nil
}

func (f *fakeAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[id]; !ok {
		return store.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountStore) WithTx(tx *sql.Tx) store.AccountStore { return f }

func (f *fakeAccountStore) DB() *sql.DB { return f.db }

// fakeHasher avoids bcrypt cost in tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
