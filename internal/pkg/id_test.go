package pkg

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	id := GenerateSessionID()

	assert.True(t, strings.HasPrefix(id, "game_"))
	assert.Len(t, id, len("game_")+8)
	assert.NotEqual(t, id, GenerateSessionID())
}

func TestGenerateConnectionID(t *testing.T) {
	id := GenerateConnectionID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
}
