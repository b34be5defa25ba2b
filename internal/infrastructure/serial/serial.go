package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	bugst "go.bug.st/serial"
)

// Port is the subset of a serial port the device channel needs.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// Config holds serial link configuration.
type Config struct {
	Path        string
	BaudRate    int
	SettleDelay time.Duration
	OpenTimeout time.Duration
}

// Open opens the configured port, retrying with exponential backoff while
// the device enumerates. The settle delay covers the microcontroller reset
// triggered by DTR toggling on open.
func Open(cfg Config, logger zerolog.Logger) (Port, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.OpenTimeout

	port, err := backoff.RetryWithData(func() (bugst.Port, error) {
		p, err := bugst.Open(cfg.Path, &bugst.Mode{BaudRate: cfg.BaudRate})
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Path).Msg("serial open failed, retrying")
			return nil, err
		}
		return p, nil
	}, b)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Path, err)
	}

	logger.Info().Str("path", cfg.Path).Int("baud", cfg.BaudRate).Msg("serial port open")

	if cfg.SettleDelay > 0 {
		time.Sleep(cfg.SettleDelay)
	}

	return port, nil
}
