package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/config"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/transport/pubsub"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/rest"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until a signal arrives or a server fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessions := repository.NewSessionRegistry()
	hub := pubsub.New(logger)
	coordinator := usecase.NewCoordinator(
		logger,
		sessions,
		repository.NewMembershipIndex(),
		service.NewMatchmakerService(sessions),
		hub,
		conf.Loop.QueueSize,
	)

	errCh := make(chan error, 4)

	// run event loop
	go func() {
		if err := coordinator.Run(ctx); err != nil {
			errCh <- fmt.Errorf("event loop error: %w", err)
		}
	}()

	if conf.Redis.Enabled {
		closeStorage, err := runStatsReporter(ctx, logger, conf, coordinator)
		if err != nil {
			return err
		}
		defer closeStorage()
	}

	// run HTTP server
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.New(logger, coordinator).Start(ctx, conf.HTTPPort); err != nil {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// run Websocket server
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, coordinator, hub, conf.WebSocket)
		if err := wsServer.Start(ctx, conf.SocketPort); err != nil {
			errCh <- fmt.Errorf("WebSocket server error: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		log.Error("Shutting down after failure", "error", err)
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// runStatsReporter connects to redis and publishes stats snapshots until ctx is done.
func runStatsReporter(ctx context.Context, logger *slog.Logger, conf *config.Config, coordinator *usecase.Coordinator) (func(), error) {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	reporter := service.NewStatsReporterService(
		logger,
		coordinator,
		repository.NewStatsRepository(redisStorage),
		conf.Stats.PublishInterval,
		conf.Redis.SnapshotTTL,
	)

	go func() {
		log.Info("Starting stats reporter", "redis", redisAddrString, "interval", conf.Stats.PublishInterval)
		if err := reporter.Run(ctx); err != nil {
			log.Error("stats reporter error", "error", err)
		}
	}()

	return func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}, nil
}
