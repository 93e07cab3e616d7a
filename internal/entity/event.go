package entity

const (
	ActionConnect       = "connect"
	ActionDisconnect    = "disconnect"
	ActionClickedSquare = "clicked-square"
	ActionResetGame     = "reset-game"
	ActionGameOver      = "game-over"
	ActionLeaveGame     = "leave-game"

	ActionPlayerAssigned = "player-assigned"
	ActionSyncGameState  = "sync-game-state"
	ActionPlayerCount    = "player-count"
	ActionMoveMade       = "move-made"
	ActionGameReset      = "game-reset"
	ActionOpponentLeft   = "opponent-left"
)

// Event is something a connection did. The set of implementations is closed.
type Event interface {
	Action() string
	inbound()
}

// Outbound is a message the server sends to one or more connections.
type Outbound interface {
	Action() string
}

type Connect struct{}

type Disconnect struct{}

type ClickedSquare struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type ResetGame struct{}

type GameOver struct {
	Winner string `json:"winner"`
}

type LeaveGame struct{}

func (Connect) Action() string       { return ActionConnect }
func (Disconnect) Action() string    { return ActionDisconnect }
func (ClickedSquare) Action() string { return ActionClickedSquare }
func (ResetGame) Action() string     { return ActionResetGame }
func (GameOver) Action() string      { return ActionGameOver }
func (LeaveGame) Action() string     { return ActionLeaveGame }

func (Connect) inbound()       {}
func (Disconnect) inbound()    {}
func (ClickedSquare) inbound() {}
func (ResetGame) inbound()     {}
func (GameOver) inbound()      {}
func (LeaveGame) inbound()     {}

type PlayerAssigned struct {
	Symbol  Role   `json:"symbol"`
	Players int    `json:"players"`
	RoomID  string `json:"roomId"`
}

type SyncGameState struct {
	Board       Board `json:"board"`
	CurrentTurn Role  `json:"currentTurn"`
	GameOver    bool  `json:"gameOver"`
}

type PlayerCount struct {
	Count int `json:"count"`
}

type MoveMade struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type GameReset struct{}

type OpponentLeft struct{}

func (PlayerAssigned) Action() string { return ActionPlayerAssigned }
func (SyncGameState) Action() string  { return ActionSyncGameState }
func (PlayerCount) Action() string    { return ActionPlayerCount }
func (MoveMade) Action() string       { return ActionMoveMade }
func (GameReset) Action() string      { return ActionGameReset }
func (OpponentLeft) Action() string   { return ActionOpponentLeft }
