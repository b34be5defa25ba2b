package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one confirmed payment. It is only
// ever created after the device has acknowledged the deduction, so the
// status is always paid.
type Transaction struct {
	EntryTime     time.Time
	ExitTime      time.Time
	Plate         string
	DurationHours decimal.Decimal
	Amount        int64
	Status        PaymentStatus
}
