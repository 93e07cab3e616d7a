package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file with custom ports and redis enabled
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
http-port: "8081"
socket-port: "8082"
websocket:
  send-buffer: 8
  allowed-origins:
    - http://localhost:3000
redis:
  enabled: true
  host: redis
stats:
  publish-interval: 1s
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: values from the file override defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "8082", conf.SocketPort)
		assert.Equal(t, 8, conf.WebSocket.SendBuffer)
		assert.Equal(t, []string{"http://localhost:3000"}, conf.WebSocket.AllowedOrigins)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Second, conf.Stats.PublishInterval)

		// And: unset values keep their defaults
		assert.Equal(t, 256, conf.Loop.QueueSize)
		assert.Equal(t, 30*time.Second, conf.Redis.SnapshotTTL)
	})

	t.Run("Falls back to environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a port in the environment
		t.Setenv("SOCKET_PORT", "7000")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "7000", conf.SocketPort)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Redis.Enabled)
	})

	t.Run("Rejects a zero publish interval from the environment", func(t *testing.T) {
		// Given: a zero interval that would stop the stats ticker from starting
		t.Setenv("STATS_PUBLISH_INTERVAL", "0s")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the config is refused
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, conf)
	})

	t.Run("Rejects a negative publish interval from the yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("stats:\n  publish-interval: -5s\n"), 0o600))

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Rejects a negative queue size", func(t *testing.T) {
		t.Setenv("LOOP_QUEUE_SIZE", "-1")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestWebSocket_OriginAllowed(t *testing.T) {
	t.Run("Any origin when list is empty", func(t *testing.T) {
		ws := WebSocket{}

		assert.True(t, ws.OriginAllowed("http://example.com"))
	})

	t.Run("Wildcard admits every origin", func(t *testing.T) {
		ws := WebSocket{AllowedOrigins: []string{"*"}}

		assert.True(t, ws.OriginAllowed("http://example.com"))
	})

	t.Run("Only listed origins are admitted", func(t *testing.T) {
		ws := WebSocket{AllowedOrigins: []string{"http://localhost:3000"}}

		assert.True(t, ws.OriginAllowed("http://localhost:3000"))
		assert.False(t, ws.OriginAllowed("http://evil.example"))
		assert.True(t, ws.OriginAllowed(""))
	})
}
