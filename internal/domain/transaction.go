package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger record describing a completed
// money-movement operation. Records are immutable after creation and are
// held only in process memory; they do not survive a restart.
type Transaction struct {
	Message string          `json:"message"`
	Success bool            `json:"success"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
}
