package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type StatsReporterService interface {
	Run(ctx context.Context) error
	Publish(ctx context.Context) error
}

type statsSource interface {
	Stats(ctx context.Context) (*entity.Stats, error)
}

type statsRepo interface {
	Save(ctx context.Context, stats *entity.Stats, ttl time.Duration) error
}

type statsReporterService struct {
	logger *slog.Logger

	source statsSource
	repo   statsRepo

	interval time.Duration
	ttl      time.Duration
}

func NewStatsReporterService(logger *slog.Logger, source statsSource, repo statsRepo, interval, ttl time.Duration) StatsReporterService {
	return &statsReporterService{
		logger:   logger.With("component", "stats-reporter"),
		source:   source,
		repo:     repo,
		interval: interval,
		ttl:      ttl,
	}
}

// Run publishes a snapshot every interval until ctx is done. Failed publishes are logged and retried on the next tick.
func (that *statsReporterService) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := that.Publish(ctx); err != nil {
				log.Error("failed to publish stats", "error", err)
			}
		}
	}
}

func (that *statsReporterService) Publish(ctx context.Context) error {
	stats, err := that.source.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	if err = that.repo.Save(ctx, stats, that.ttl); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}
