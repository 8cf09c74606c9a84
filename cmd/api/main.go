package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stonk-bot/stonk_bot/internal/bank"
	"github.com/stonk-bot/stonk_bot/internal/casino"
	"github.com/stonk-bot/stonk_bot/internal/config"
	"github.com/stonk-bot/stonk_bot/internal/infra"
	"github.com/stonk-bot/stonk_bot/internal/leaderboard"
	"github.com/stonk-bot/stonk_bot/internal/logging"
	"github.com/stonk-bot/stonk_bot/internal/market"
	"github.com/stonk-bot/stonk_bot/internal/notification"
	"github.com/stonk-bot/stonk_bot/internal/predictions"
	"github.com/stonk-bot/stonk_bot/internal/routes"
	"github.com/stonk-bot/stonk_bot/internal/server"
	"github.com/stonk-bot/stonk_bot/internal/settlement"
	"github.com/stonk-bot/stonk_bot/internal/shop"
	"github.com/stonk-bot/stonk_bot/internal/timezones"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppEnv)

	ctx := context.Background()

	// A corrupt document aborts startup; operating on unknown state is worse
	// than refusing to start.
	ledger, err := bank.OpenFileRepository(cfg.LedgerPath())
	if err != nil {
		logger.Error("open ledger", "error", err)
		os.Exit(1)
	}
	book, err := predictions.OpenFileRepository(cfg.PredictionsPath())
	if err != nil {
		logger.Error("open predictions", "error", err)
		os.Exit(1)
	}
	board, err := leaderboard.OpenFileRepository(cfg.LeaderboardPath())
	if err != nil {
		logger.Error("open leaderboard", "error", err)
		os.Exit(1)
	}
	zones, err := timezones.Open(cfg.TimezonesPath())
	if err != nil {
		logger.Error("open timezones", "error", err)
		os.Exit(1)
	}

	cache, err := infra.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if cache != nil {
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	} else {
		logger.Warn("redis not configured; cooldowns and idempotency disabled")
	}

	calendar := market.NewCalendar(cfg.MarketLocation())
	prices := market.NewYahooSource(cfg.PriceBaseURL)
	notifier := notification.NewLoggerNotifier(logger)

	banks := bank.NewService(ledger, notifier, nil)
	shops := shop.NewService(ledger)
	slots := casino.NewService(banks, nil)
	preds := predictions.NewService(book, calendar)
	boards := leaderboard.NewService(board)
	settler := settlement.NewService(banks, book, board, prices, notifier, logger, cfg.PredictionSymbol)

	srv, err := server.New(server.ServerConfig{AppName: cfg.AppName, Address: cfg.Address()}, routes.Deps{
		Cfg:         cfg,
		Cache:       cache,
		Logger:      logger,
		Banks:       banks,
		Shop:        shops,
		Casino:      slots,
		Predictions: preds,
		Board:       boards,
		Zones:       zones,
		Prices:      prices,
		Settlement:  settler,
	})
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	go settlement.NewScheduler(settler, calendar, logger).Run(schedCtx)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
