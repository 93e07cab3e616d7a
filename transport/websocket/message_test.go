package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

func TestServer_decodeMessage(t *testing.T) {
	server := &Server{decoders: newDecoders()}

	tests := []struct {
		name    string
		raw     string
		want    entity.Event
		wantErr error
	}{
		{
			name: "Clicked square",
			raw:  `{"action":"clicked-square","payload":{"index":8,"symbol":"O"}}`,
			want: entity.ClickedSquare{Index: 8, Symbol: "O"},
		},
		{
			name: "Clicked square at index zero",
			raw:  `{"action":"clicked-square","payload":{"index":0,"symbol":"X"}}`,
			want: entity.ClickedSquare{Index: 0, Symbol: "X"},
		},
		{
			name: "Game over with draw",
			raw:  `{"action":"game-over","payload":{"winner":"Draw"}}`,
			want: entity.GameOver{Winner: "Draw"},
		},
		{
			name: "Reset ignores payload",
			raw:  `{"action":"reset-game","payload":{"anything":true}}`,
			want: entity.ResetGame{},
		},
		{
			name: "Leave game",
			raw:  `{"action":"leave-game"}`,
			want: entity.LeaveGame{},
		},
		{
			name:    "Unknown action",
			raw:     `{"action":"connect"}`,
			wantErr: apperror.ErrUnknownAction,
		},
		{
			name:    "Missing symbol",
			raw:     `{"action":"clicked-square","payload":{"index":1}}`,
			wantErr: apperror.ErrInvalidPayload,
		},
		{
			name:    "Missing payload",
			raw:     `{"action":"game-over"}`,
			wantErr: apperror.ErrInvalidPayload,
		},
		{
			name:    "Wrong payload type",
			raw:     `{"action":"clicked-square","payload":{"index":"one","symbol":"X"}}`,
			wantErr: apperror.ErrInvalidPayload,
		},
		{
			name:    "Not json",
			raw:     `clicked-square`,
			wantErr: apperror.ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := server.decodeMessage([]byte(tt.raw))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, event)
		})
	}
}

func TestEncodeMessage(t *testing.T) {
	// Given: a player assignment
	msg := entity.PlayerAssigned{Symbol: entity.RoleSecond, Players: 2, RoomID: "game_0a1b2c3d"}

	// When: encoding it
	data, err := encodeMessage(msg)

	// Then: the payload is wrapped in the action envelope
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"player-assigned","payload":{"symbol":"O","players":2,"roomId":"game_0a1b2c3d"}}`, string(data))

	var envelope Message
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.Equal(t, entity.ActionPlayerAssigned, envelope.Action)
}
