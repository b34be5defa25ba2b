package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/parkpay/internal/domain"
)

// PaymentUseCase drives one payment session per inbound event: entry lookup,
// fee computation, the request/acknowledge exchange with the device, and the
// ledger commit. It holds no state across events.
type PaymentUseCase struct {
	entryRepo  EntryRepository
	txRepo     TransactionRepository
	channel    DeviceChannel
	clock      Clock
	rate       decimal.Decimal
	ackTimeout time.Duration
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	entryRepo EntryRepository,
	txRepo TransactionRepository,
	channel DeviceChannel,
	clock Clock,
	ratePerHour decimal.Decimal,
	ackTimeout time.Duration,
) *PaymentUseCase {
	return &PaymentUseCase{
		entryRepo:  entryRepo,
		txRepo:     txRepo,
		channel:    channel,
		clock:      clock,
		rate:       ratePerHour,
		ackTimeout: ackTimeout,
	}
}

// Process runs the session for one event. The ledger is mutated only after
// the device returns the acknowledgment token; any other response, or a
// timeout, fails the event with both stores untouched. A failed exchange is
// never retried: the device carries no transaction ids, so resending the
// request could deduct twice.
func (uc *PaymentUseCase) Process(ctx context.Context, event domain.PaymentEvent) (*domain.Transaction, error) {
	entry, err := uc.entryRepo.FindOpen(ctx, event.Plate)
	if err != nil {
		return nil, fmt.Errorf("lookup open entry: %w", err)
	}

	if entry == nil {
		return nil, domain.ErrNoOpenEntry
	}

	now := uc.clock.Now()

	fee, err := domain.ComputeFee(entry.Timestamp, now, uc.rate)
	if err != nil {
		return nil, err
	}

	if event.Balance < fee.Amount {
		return nil, fmt.Errorf("%w: balance %d, due %d", domain.ErrInsufficientBalance, event.Balance, fee.Amount)
	}

	if err := uc.channel.WriteLine(domain.PaymentRequest(fee.Amount)); err != nil {
		return nil, fmt.Errorf("send payment request: %w", err)
	}

	ack, err := uc.channel.ReadLine(uc.ackTimeout)
	if err != nil {
		if errors.Is(err, domain.ErrReadIdle) {
			return nil, fmt.Errorf("%w after %s", domain.ErrAckTimeout, uc.ackTimeout)
		}
		return nil, fmt.Errorf("await acknowledgment: %w", err)
	}

	if ack != domain.AckToken {
		return nil, fmt.Errorf("%w: %q", domain.ErrAckMismatch, ack)
	}

	// The device has deducted the funds. Failures past this point leave the
	// deduction without a durable record and must surface loudly.
	if err := uc.entryRepo.MarkPaid(ctx, event.Plate); err != nil {
		return nil, fmt.Errorf("payment confirmed but entry update failed: %w", err)
	}

	tx := &domain.Transaction{
		Plate:         event.Plate,
		EntryTime:     entry.Timestamp,
		ExitTime:      now,
		DurationHours: fee.DurationHours,
		Amount:        fee.Amount,
		Status:        domain.StatusPaid,
	}

	if err := uc.txRepo.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("payment confirmed but transaction append failed: %w", err)
	}

	return tx, nil
}
