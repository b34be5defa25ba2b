package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Serial link
	SerialPath  string        `env:"SERIAL_PATH"  envDefault:"/dev/ttyUSB0"`
	SerialBaud  int           `env:"SERIAL_BAUD"  envDefault:"9600"`
	SettleDelay time.Duration `env:"SETTLE_DELAY" envDefault:"2s"`
	OpenTimeout time.Duration `env:"OPEN_TIMEOUT" envDefault:"30s"`

	// Protocol
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"2s"`
	AckTimeout  time.Duration `env:"ACK_TIMEOUT"  envDefault:"5s"`

	// Fees (whole currency units per hour)
	RatePerHour int64 `env:"RATE_PER_HOUR" envDefault:"200"`

	// Ledger stores
	EntryLogPath       string `env:"ENTRY_LOG_PATH"       envDefault:"plates_log.csv"`
	TransactionLogPath string `env:"TRANSACTION_LOG_PATH" envDefault:"data/transactions.csv"`

	// Ops HTTP server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
