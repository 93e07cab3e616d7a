package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository/storage"
)

const (
	sourceHTTP  = "http"
	sourceRedis = "redis"
)

var ErrUnknownSource = errors.New("unknown stats source")

func statsCmd() *cobra.Command {
	var (
		from    string
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the server status snapshot",
		Long: "Print active games, players and rooms, read from a running server's /stats " +
			"endpoint or from the snapshot it publishes to redis.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var (
				stats *entity.Stats
				err   error
			)

			switch from {
			case sourceHTTP:
				stats, err = fetchHTTPStats(ctx, addr)
			case sourceRedis:
				stats, err = fetchRedisStats(ctx, addr)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownSource, from)
			}

			if err != nil {
				return err
			}

			return printStats(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().StringVar(&from, "from", sourceHTTP, "where to read stats from: http or redis")
	cmd.Flags().StringVar(&addr, "addr", "http://localhost:9090", "server base URL, or host:port of redis")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	return cmd
}

func fetchHTTPStats(ctx context.Context, baseURL string) (*entity.Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(baseURL, "/")+"/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to request stats: unexpected status %s", resp.Status)
	}

	var stats entity.Stats
	if err = json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}

	return &stats, nil
}

func fetchRedisStats(ctx context.Context, addr string) (*entity.Stats, error) {
	client, err := storage.New(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}
	defer client.Close()

	stats, err := repository.NewStatsRepository(client).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats snapshot: %w", err)
	}

	return stats, nil
}

func printStats(w io.Writer, stats *entity.Stats) error {
	if _, err := fmt.Fprintf(w, "active games: %d\ntotal players: %d\n", stats.ActiveGames, stats.TotalPlayers); err != nil {
		return fmt.Errorf("failed to print stats: %w", err)
	}

	for _, room := range stats.Rooms {
		state := "waiting"
		if room.GameInProgress {
			state = "in progress"
		}

		if _, err := fmt.Fprintf(w, "  %s\tplayers=%d\t%s\n", room.ID, room.Players, state); err != nil {
			return fmt.Errorf("failed to print stats: %w", err)
		}
	}

	return nil
}
