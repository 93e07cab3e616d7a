package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9000"`
	WebSocket  WebSocket `yaml:"websocket"`
	Loop       Loop      `yaml:"loop"`
	Redis      Redis     `yaml:"redis"`
	Stats      Stats     `yaml:"stats"`
}

type WebSocket struct {
	SendBuffer     int      `yaml:"send-buffer" env:"WS_SEND_BUFFER" env-default:"64"`
	ReadLimit      int64    `yaml:"read-limit" env:"WS_READ_LIMIT" env-default:"4096"`
	AllowedOrigins []string `yaml:"allowed-origins" env:"WS_ALLOWED_ORIGINS" env-separator:","`
}

type Loop struct {
	QueueSize int `yaml:"queue-size" env:"LOOP_QUEUE_SIZE" env-default:"256"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"REDIS_SNAPSHOT_TTL" env-default:"30s"`
}

type Stats struct {
	PublishInterval time.Duration `yaml:"publish-interval" env:"STATS_PUBLISH_INTERVAL" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		if err = config.validate(); err != nil {
			return nil, err
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate rejects values that would panic further down: tickers need a
// positive interval and channels a non-negative size.
func (that *Config) validate() error {
	switch {
	case that.Stats.PublishInterval <= 0:
		return fmt.Errorf("%w: stats.publish-interval must be positive, got %s", ErrInvalidConfig, that.Stats.PublishInterval)
	case that.Redis.SnapshotTTL < 0:
		return fmt.Errorf("%w: redis.snapshot-ttl must not be negative, got %s", ErrInvalidConfig, that.Redis.SnapshotTTL)
	case that.Loop.QueueSize < 0:
		return fmt.Errorf("%w: loop.queue-size must not be negative, got %d", ErrInvalidConfig, that.Loop.QueueSize)
	case that.WebSocket.SendBuffer < 0:
		return fmt.Errorf("%w: websocket.send-buffer must not be negative, got %d", ErrInvalidConfig, that.WebSocket.SendBuffer)
	}

	return nil
}

// GetRedisAddr returns host:port, or "" when no host is configured.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// OriginAllowed reports whether a WebSocket upgrade from origin may proceed.
// An empty list or a "*" entry admits every origin.
func (that *WebSocket) OriginAllowed(origin string) bool {
	if origin == "" || len(that.AllowedOrigins) == 0 {
		return true
	}

	for _, allowed := range that.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}
