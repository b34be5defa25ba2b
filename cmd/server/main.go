package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/parkpay/internal/adapter/device"
	httpAdapter "github.com/iho/parkpay/internal/adapter/http"
	"github.com/iho/parkpay/internal/adapter/http/handler"
	"github.com/iho/parkpay/internal/adapter/repository/csvfile"
	"github.com/iho/parkpay/internal/infrastructure/config"
	"github.com/iho/parkpay/internal/infrastructure/logger"
	"github.com/iho/parkpay/internal/infrastructure/metrics"
	serialInfra "github.com/iho/parkpay/internal/infrastructure/serial"
	"github.com/iho/parkpay/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = logg

	// Initialize metrics
	m := metrics.New()

	// Initialize ledger stores
	entryRepo := csvfile.NewEntryRepository(cfg.EntryLogPath)
	txRepo := csvfile.NewTransactionRepository(cfg.TransactionLogPath)

	// Open the device link
	port, err := serialInfra.Open(serialInfra.Config{
		Path:        cfg.SerialPath,
		BaudRate:    cfg.SerialBaud,
		SettleDelay: cfg.SettleDelay,
		OpenTimeout: cfg.OpenTimeout,
	}, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to open serial port")
	}

	channel := device.NewChannel(port)

	// Initialize use cases
	payments := usecase.NewPaymentUseCase(
		entryRepo,
		txRepo,
		channel,
		usecase.SystemClock{},
		decimal.NewFromInt(cfg.RatePerHour),
		cfg.AckTimeout,
	)
	listener := usecase.NewListener(channel, payments, m, logg, cfg.ReadTimeout)

	// Create ops server
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HealthHandler: handler.NewHealthHandler(entryRepo),
	})
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logg.Info().Str("port", cfg.HTTPPort).Msg("starting ops server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	// Run the listener
	ctx, cancel := context.WithCancel(context.Background())
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- listener.Run(ctx)
	}()

	// Wait for interrupt signal or transport failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		logg.Info().Str("signal", sig.String()).Msg("shutting down...")
		cancel()
		if err := <-listenErr; err != nil {
			logg.Error().Err(err).Msg("listener failed during shutdown")
			exitCode = 1
		}
	case err := <-listenErr:
		cancel()
		if err != nil {
			// A dead link needs an operator or supervisor restart.
			logg.Error().Err(err).Msg("listener terminated")
			exitCode = 1
		}
	}

	if err := channel.Close(); err != nil {
		logg.Error().Err(err).Msg("failed to close device channel")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("ops server forced to shutdown")
	}

	logg.Info().Msg("stopped")
	os.Exit(exitCode)
}
