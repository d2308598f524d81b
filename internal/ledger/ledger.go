// Package ledger implements the in-memory transaction ledger: an
// append-only record of completed money-movement operations. The ledger
// lives for the lifetime of the process and is not persisted; this is a
// deliberate limitation of the system, not an oversight.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stevenarias/bankcore/internal/domain"
)

// Ledger is a mutex-guarded append-only list of transaction records.
// Deposits and withdrawals from concurrent requests append safely; the
// zero value is ready to use.
type Ledger struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	now          func() time.Time
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Record appends a new immutable entry stamped with the current time.
// Validation happens in the caller; every recorded entry is a completed
// operation, so success is always true.
func (l *Ledger) Record(message string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now
	if l.now != nil {
		now = l.now
	}

	l.transactions = append(l.transactions, domain.Transaction{
		Message: message,
		Success: true,
		Amount:  amount,
		Date:    now().UTC(),
	})
}

// ListAll returns a snapshot copy of every record in insertion order,
// oldest first. Later appends are not observable through the returned
// slice.
func (l *Ledger) ListAll() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]domain.Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	return snapshot
}

// Messages returns the message of every record, same ordering as ListAll.
func (l *Ledger) Messages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	messages := make([]string, len(l.transactions))
	for i, tx := range l.transactions {
		messages[i] = tx.Message
	}
	return messages
}

// Len reports the number of recorded transactions.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.transactions)
}
