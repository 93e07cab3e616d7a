package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

const (
	RoleFirst  Role = "X"
	RoleSecond Role = "O"

	Draw      = "Draw"
	EmptyCell = ""

	BoardSize = 9
	Capacity  = 2
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Role is the symbol a participant plays with.
type Role string

func (that Role) Opposite() Role {
	if that == RoleFirst {
		return RoleSecond
	}
	return RoleFirst
}

type Board [BoardSize]string

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// Result returns the winning symbol, Draw when every cell is taken, or EmptyCell while the game goes on.
func (that Board) Result() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return Draw
}

// MarshalJSON encodes empty cells as null, which is what browser clients test for.
func (that Board) MarshalJSON() ([]byte, error) {
	cells := make([]*string, len(that))
	for i := range that {
		if that[i] != EmptyCell {
			cells[i] = &that[i]
		}
	}

	return json.Marshal(cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []*string
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: board has %d cells", apperror.ErrInvalidPayload, len(cells))
	}

	for i, cell := range cells {
		that[i] = EmptyCell
		if cell != nil {
			that[i] = *cell
		}
	}

	return nil
}

type Participant struct {
	ID   string
	Role Role
}

// Session is one two-party match: who sits at it and the shared board.
type Session struct {
	ID           string
	Participants []Participant
	Board        Board
	Turn         Role
	Completed    bool
}

func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		Participants: make([]Participant, 0, Capacity),
		Turn:         RoleFirst,
	}
}

// Seat appends a participant. The first seat plays X, any later one O.
func (that *Session) Seat(connID string) (Role, error) {
	if that.IsFull() {
		return "", fmt.Errorf("%w: session %s", apperror.ErrSessionFull, that.ID)
	}

	role := RoleSecond
	if len(that.Participants) == 0 {
		role = RoleFirst
	}

	that.Participants = append(that.Participants, Participant{ID: connID, Role: role})

	return role, nil
}

// Unseat removes the participant and compacts the list. It reports whether connID was seated.
func (that *Session) Unseat(connID string) bool {
	for i, participant := range that.Participants {
		if participant.ID == connID {
			that.Participants = append(that.Participants[:i], that.Participants[i+1:]...)
			return true
		}
	}

	return false
}

func (that *Session) PlayerCount() int {
	return len(that.Participants)
}

func (that *Session) IsFull() bool {
	return len(that.Participants) >= Capacity
}

func (that *Session) IsEmpty() bool {
	return len(that.Participants) == 0
}

// ApplyMove writes symbol into the cell and passes the turn.
// Neither the turn order nor the cell occupancy is checked.
func (that *Session) ApplyMove(index int, symbol string) error {
	if index < 0 || index >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, index)
	}

	that.Board[index] = symbol
	that.Turn = that.Turn.Opposite()

	return nil
}

func (that *Session) Reset() {
	that.Board = Board{}
	that.Turn = RoleFirst
	that.Completed = false
}

func (that *Session) Complete() {
	that.Completed = true
}

// InProgress reports whether any cell has been played.
func (that *Session) InProgress() bool {
	return !that.Board.IsEmpty()
}

func (that *Session) Summary() RoomSummary {
	return RoomSummary{
		ID:             that.ID,
		Players:        that.PlayerCount(),
		GameInProgress: that.InProgress(),
	}
}
