package usecase

import (
	"context"
	"time"

	"github.com/iho/parkpay/internal/domain"
)

// EntryRepository defines data access for the entry log.
type EntryRepository interface {
	// FindOpen returns the first unpaid entry for plate, or nil when the
	// plate has no open entry (an absent store is not an error).
	FindOpen(ctx context.Context, plate string) (*domain.Entry, error)
	// MarkPaid transitions the first unpaid entry for plate to paid,
	// replacing the store atomically.
	MarkPaid(ctx context.Context, plate string) error
	List(ctx context.Context) ([]*domain.Entry, error)
}

// TransactionRepository defines data access for the transaction log.
type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// DeviceChannel is the line-oriented duplex link to the payment device.
// ReadLine returns domain.ErrReadIdle when no complete line arrives before
// the timeout; any other error means the link is unusable.
type DeviceChannel interface {
	WriteLine(line string) error
	ReadLine(timeout time.Duration) (string, error)
	Close() error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// SessionMetrics receives per-event outcome observations. The
// Prometheus-backed implementation lives in infrastructure/metrics.
type SessionMetrics interface {
	EventReceived()
	LineDiscarded()
	PaymentCommitted(amount int64, elapsed time.Duration)
	PaymentFailed(reason string)
}
