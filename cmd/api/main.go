package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mem-vault/mem-coin/internal/config"
	"github.com/mem-vault/mem-coin/internal/eth"
	"github.com/mem-vault/mem-coin/internal/events"
	"github.com/mem-vault/mem-coin/internal/handler"
	"github.com/mem-vault/mem-coin/internal/logging"
	"github.com/mem-vault/mem-coin/internal/metrics"
	"github.com/mem-vault/mem-coin/internal/registry"
	"github.com/mem-vault/mem-coin/internal/service"
	"github.com/mem-vault/mem-coin/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(promReg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	sinks := events.Fanout{events.NewLogSink(logger)}
	opts := service.Options{Metrics: m}

	var swapStore *store.Store
	if cfg.MySQLDSN != "" {
		dao, err := store.NewDao(cfg.MySQLDSN)
		if err != nil {
			return fmt.Errorf("failed to open swap store: %w", err)
		}
		defer dao.Close()
		swapStore = store.NewStore(ctx, logger, dao, cfg.EventQueue)
		swapStore.Start()
		sinks = append(sinks, swapStore)
	}
	opts.Sink = sinks

	if cfg.RPCEndpoint != "" {
		ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
		if err != nil {
			return fmt.Errorf("failed to connect to Ethereum node: %w", err)
		}
		defer ethereumClient.Close()
		opts.Chain = ethereumClient
	}

	poolService, err := service.NewPoolService(logger, registry.New(), cfg.Fees, opts)
	if err != nil {
		return err
	}
	poolHandler := handler.NewPoolHandler(logger, poolService)

	app := fiber.New()
	handler.Register(app, poolHandler, promReg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()
	logger.Info("listening", "addr", cfg.Addr, "swap_fee_bps", cfg.Fees.SwapFeeBps, "admin_fee_bps", cfg.Fees.AdminFeeBps)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		stop()
		if swapStore != nil {
			swapStore.Wait()
		}
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}
	if swapStore != nil {
		swapStore.Wait()
	}
	return nil
}
