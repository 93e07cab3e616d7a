package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type statsSource interface {
	Stats(ctx context.Context) (*entity.Stats, error)
}

type Server struct {
	logger *slog.Logger
	stats  statsSource
}

func New(logger *slog.Logger, stats statsSource) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		stats:  stats,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", that.bannerHandler)
	mux.HandleFunc("GET /ping", that.pingHandler)
	mux.HandleFunc("GET /stats", that.statsHandler)

	return mux
}

// Start - starts HTTP server and shuts it down once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
