package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/parkpay/internal/domain"
)

// Listener is the outer loop: it reads device lines, dispatches well-formed
// events to the payment use case one at a time, and keeps running across
// every non-fatal outcome. Only a transport failure ends the loop.
type Listener struct {
	channel     DeviceChannel
	payments    *PaymentUseCase
	metrics     SessionMetrics
	logger      zerolog.Logger
	readTimeout time.Duration
}

// NewListener creates a new Listener.
func NewListener(
	channel DeviceChannel,
	payments *PaymentUseCase,
	metrics SessionMetrics,
	logger zerolog.Logger,
	readTimeout time.Duration,
) *Listener {
	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &Listener{
		channel:     channel,
		payments:    payments,
		metrics:     metrics,
		logger:      logger,
		readTimeout: readTimeout,
	}
}

// Run blocks until the context is canceled (returns nil) or the channel
// becomes unusable (returns the transport error). Sessions are strictly
// sequential: no new line is dispatched while an exchange is in flight,
// because the single physical link can only carry one request/ack pair.
func (l *Listener) Run(ctx context.Context) error {
	l.logger.Info().Dur("read_timeout", l.readTimeout).Msg("listening for device events")

	for {
		select {
		case <-ctx.Done():
			l.logger.Info().Msg("listener stopping")
			return nil
		default:
		}

		line, err := l.channel.ReadLine(l.readTimeout)
		if errors.Is(err, domain.ErrReadIdle) {
			continue
		}
		if err != nil {
			return fmt.Errorf("device channel: %w", err)
		}
		if line == "" {
			continue
		}

		l.handleLine(ctx, line)
	}
}

func (l *Listener) handleLine(ctx context.Context, line string) {
	event, err := domain.ParseEvent(line)
	if err != nil {
		l.metrics.LineDiscarded()
		l.logger.Warn().Err(err).Msg("dropping unrecognized line")
		return
	}

	l.metrics.EventReceived()

	logger := l.logger.With().
		Str("session_id", ulid.Make().String()).
		Str("plate", event.Plate).
		Int64("balance", event.Balance).
		Logger()
	logger.Info().Msg("payment event received")

	start := time.Now()

	tx, err := l.payments.Process(ctx, event)
	if err != nil {
		l.report(logger, err)
		return
	}

	l.metrics.PaymentCommitted(tx.Amount, time.Since(start))
	logger.Info().
		Int64("amount", tx.Amount).
		Str("duration_hr", tx.DurationHours.String()).
		Msg("payment committed")
}

// report logs one terminal non-success outcome. None of these stop the loop.
func (l *Listener) report(logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNoOpenEntry):
		l.metrics.PaymentFailed("no_open_entry")
		logger.Warn().Msg("plate has no open entry")
	case errors.Is(err, domain.ErrInvalidInterval):
		l.metrics.PaymentFailed("invalid_interval")
		logger.Error().Err(err).Msg("entry timestamp is after current time")
	case errors.Is(err, domain.ErrInsufficientBalance):
		l.metrics.PaymentFailed("insufficient_balance")
		logger.Info().Err(err).Msg("balance does not cover fee")
	case errors.Is(err, domain.ErrAckTimeout), errors.Is(err, domain.ErrAckMismatch):
		l.metrics.PaymentFailed("protocol")
		logger.Error().Err(err).Msg("payment not confirmed by device")
	case errors.Is(err, domain.ErrStorage):
		l.metrics.PaymentFailed("storage")
		logger.Error().Err(err).Msg("ledger storage failure")
	default:
		l.metrics.PaymentFailed("internal")
		logger.Error().Err(err).Msg("payment session failed")
	}
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) EventReceived() {}

func (NopMetrics) LineDiscarded() {}

func (NopMetrics) PaymentCommitted(amount int64, d time.Duration) {}

func (NopMetrics) PaymentFailed(reason string) {}
