package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const sessionIDPrefix = "game_"

// GenerateSessionID - generates a short identifier for a session, e.g. game_1f0c9a2b.
func GenerateSessionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return sessionIDPrefix + raw[:8]
}

// GenerateConnectionID - generates a unique identifier for a socket connection.
func GenerateConnectionID() string {
	return uuid.NewString()
}
