package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	// Given: create a new session
	session := NewSession("game_1")

	// Then: it should start empty with X to move
	assert.Equal(t, "game_1", session.ID)
	assert.Empty(t, session.Participants)
	assert.Equal(t, Board{}, session.Board)
	assert.Equal(t, RoleFirst, session.Turn)
	assert.False(t, session.Completed)
	assert.False(t, session.InProgress())
}

func TestSession_Seat(t *testing.T) {
	t.Run("Roles are assigned in join order", func(t *testing.T) {
		// Given: an empty session
		session := NewSession("game_1")

		// When: two connections are seated
		first, err := session.Seat("a")
		require.NoError(t, err)
		second, err := session.Seat("b")
		require.NoError(t, err)

		// Then: the first plays X and the second O
		assert.Equal(t, RoleFirst, first)
		assert.Equal(t, RoleSecond, second)
		assert.Equal(t, 2, session.PlayerCount())
		assert.True(t, session.IsFull())
	})

	t.Run("Third participant is rejected", func(t *testing.T) {
		// Given: a full session
		session := NewSession("game_1")
		_, _ = session.Seat("a")
		_, _ = session.Seat("b")

		// When: a third connection tries to sit down
		_, err := session.Seat("c")

		// Then: ErrSessionFull is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrSessionFull)
		assert.Equal(t, 2, session.PlayerCount())
	})

	t.Run("Remaining participant keeps its role after the first leaves", func(t *testing.T) {
		// Given: a session where X left
		session := NewSession("game_1")
		_, _ = session.Seat("a")
		_, _ = session.Seat("b")
		session.Unseat("a")

		// When: a new connection is seated
		role, err := session.Seat("c")

		// Then: the newcomer gets O because the session was not empty
		require.NoError(t, err)
		assert.Equal(t, RoleSecond, role)
		assert.Equal(t, []Participant{{ID: "b", Role: RoleSecond}, {ID: "c", Role: RoleSecond}}, session.Participants)
	})
}

func TestSession_Unseat(t *testing.T) {
	t.Run("Removes and compacts the list", func(t *testing.T) {
		// Given: a full session
		session := NewSession("game_1")
		_, _ = session.Seat("a")
		_, _ = session.Seat("b")

		// When: the first participant is removed
		removed := session.Unseat("a")

		// Then: the second one moves to the front
		assert.True(t, removed)
		assert.Equal(t, []Participant{{ID: "b", Role: RoleSecond}}, session.Participants)
	})

	t.Run("Unknown connection is a no-op", func(t *testing.T) {
		// Given: a session with one participant
		session := NewSession("game_1")
		_, _ = session.Seat("a")

		// When: removing a connection that never sat down
		removed := session.Unseat("zzz")

		// Then: nothing changes
		assert.False(t, removed)
		assert.Equal(t, 1, session.PlayerCount())
	})

	t.Run("Last participant leaves the session empty", func(t *testing.T) {
		session := NewSession("game_1")
		_, _ = session.Seat("a")

		session.Unseat("a")

		assert.True(t, session.IsEmpty())
	})
}

func TestSession_ApplyMove(t *testing.T) {
	t.Run("Writes the symbol and toggles the turn", func(t *testing.T) {
		// Given: a new session
		session := NewSession("game_1")

		// When: X plays the centre
		err := session.ApplyMove(4, "X")

		// Then: the cell is marked and O is to move
		require.NoError(t, err)
		assert.Equal(t, "X", session.Board[4])
		assert.Equal(t, RoleSecond, session.Turn)
		assert.True(t, session.InProgress())
	})

	t.Run("Occupied cell and wrong turn are not checked", func(t *testing.T) {
		// Given: a session where X already played the centre
		session := NewSession("game_1")
		require.NoError(t, session.ApplyMove(4, "X"))

		// When: X plays the same cell again out of turn
		err := session.ApplyMove(4, "X")

		// Then: the write goes through and the turn toggles again
		require.NoError(t, err)
		assert.Equal(t, "X", session.Board[4])
		assert.Equal(t, RoleFirst, session.Turn)
	})

	t.Run("Error on cell index greater than range", func(t *testing.T) {
		session := NewSession("game_1")

		err := session.ApplyMove(20, "X")

		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
		assert.Equal(t, RoleFirst, session.Turn)
		assert.False(t, session.InProgress())
	})

	t.Run("Error on negative cell index", func(t *testing.T) {
		session := NewSession("game_1")

		err := session.ApplyMove(-1, "X")

		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
	})
}

func TestSession_Reset(t *testing.T) {
	// Given: a completed session with moves on the board
	session := NewSession("game_1")
	require.NoError(t, session.ApplyMove(0, "X"))
	require.NoError(t, session.ApplyMove(1, "O"))
	require.NoError(t, session.ApplyMove(2, "X"))
	session.Complete()

	// When: the session is reset
	session.Reset()

	// Then: board, turn and completion flag are back to the start
	assert.Equal(t, Board{}, session.Board)
	assert.Equal(t, RoleFirst, session.Turn)
	assert.False(t, session.Completed)
}

func TestSession_Summary(t *testing.T) {
	session := NewSession("game_1")
	_, _ = session.Seat("a")
	require.NoError(t, session.ApplyMove(8, "X"))

	assert.Equal(t, RoomSummary{ID: "game_1", Players: 1, GameInProgress: true}, session.Summary())
}

func TestBoard_Result(t *testing.T) {
	t.Run("Returns X when X wins", func(t *testing.T) {
		board := Board{
			"X", "X", "X",
			"", "", "",
			"", "", "",
		}

		assert.Equal(t, "X", board.Result())
	})

	t.Run("Returns O on a diagonal", func(t *testing.T) {
		board := Board{
			"", "", "O",
			"", "O", "",
			"O", "", "",
		}

		assert.Equal(t, "O", board.Result())
	})

	t.Run("Returns Draw when the board is full", func(t *testing.T) {
		board := Board{
			"X", "O", "X",
			"O", "X", "O",
			"O", "X", "O",
		}

		assert.Equal(t, Draw, board.Result())
	})

	t.Run("Returns EmptyCell while the game is ongoing", func(t *testing.T) {
		board := Board{
			"X", "O", "",
			"", "X", "",
			"", "", "O",
		}

		assert.Equal(t, EmptyCell, board.Result())
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Empty cells are encoded as null", func(t *testing.T) {
		board := Board{"X", "", "", "", "O", "", "", "", ""}

		data, err := json.Marshal(board)

		require.NoError(t, err)
		assert.JSONEq(t, `["X",null,null,null,"O",null,null,null,null]`, string(data))
	})

	t.Run("Null cells decode as empty", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`["X",null,null,null,"O",null,null,null,null]`), &board)

		require.NoError(t, err)
		assert.Equal(t, Board{"X", "", "", "", "O", "", "", "", ""}, board)
	})

	t.Run("Wrong length is rejected", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`["X"]`), &board)

		require.ErrorIs(t, err, apperror.ErrInvalidPayload)
	})
}
