package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type sessionRegistry interface {
	Get(id string) (*entity.Session, bool)
	Delete(id string)
	All() []*entity.Session
	Len() int
}

type membershipIndex interface {
	Set(connID, sessionID string)
	Get(connID string) (string, bool)
	Delete(connID string)
	Len() int
}

type matchmaker interface {
	Assign() string
}

type broadcaster interface {
	Join(group, connID string)
	Leave(group, connID string)
	Send(connID string, msg entity.Outbound)
	Broadcast(group string, msg entity.Outbound)
}

// Coordinator seats connections into sessions and relays their events to
// everyone sharing the session. Dispatch is not safe for concurrent use:
// call it from Run's goroutine, or through Submit.
type Coordinator struct {
	logger *slog.Logger

	sessions   sessionRegistry
	members    membershipIndex
	matchmaker matchmaker
	groups     broadcaster

	queue   chan func()
	stopped chan struct{}
}

func NewCoordinator(
	logger *slog.Logger,
	sessions sessionRegistry,
	members membershipIndex,
	matchmaker matchmaker,
	groups broadcaster,
	queueSize int,
) *Coordinator {
	return &Coordinator{
		logger: logger.With("component", "coordinator"),

		sessions:   sessions,
		members:    members,
		matchmaker: matchmaker,
		groups:     groups,

		queue:   make(chan func(), queueSize),
		stopped: make(chan struct{}),
	}
}

// Dispatch routes one event of connID to its handler.
func (that *Coordinator) Dispatch(connID string, event entity.Event) {
	switch ev := event.(type) {
	case entity.Connect:
		that.handleConnect(connID)
	case entity.ClickedSquare:
		that.handleClickedSquare(connID, ev)
	case entity.ResetGame:
		that.handleResetGame(connID)
	case entity.GameOver:
		that.handleGameOver(connID, ev)
	case entity.Disconnect:
		that.handleDisconnect(connID)
	case entity.LeaveGame:
		that.handleLeaveGame(connID)
	default:
		that.logger.Warn("unsupported event", "connID", connID, "action", event.Action())
	}
}

func (that *Coordinator) handleConnect(connID string) {
	log := that.logger.With("method", "handleConnect", "connID", connID)

	if sessionID, seated := that.members.Get(connID); seated {
		log.Warn("connection is already seated", "sessionID", sessionID)
		return
	}

	that.join(connID)
}

func (that *Coordinator) handleClickedSquare(connID string, move entity.ClickedSquare) {
	log := that.logger.With("method", "handleClickedSquare", "connID", connID)

	session, err := that.seatedSession(connID)
	if err != nil {
		log.Debug("ignoring move", "error", err)
		return
	}

	if err = session.ApplyMove(move.Index, move.Symbol); err != nil {
		log.Warn("dropping move", "sessionID", session.ID, "error", err)
		return
	}

	that.groups.Broadcast(session.ID, entity.MoveMade{Index: move.Index, Symbol: move.Symbol})

	log.Debug("move relayed", "sessionID", session.ID, "index", move.Index, "symbol", move.Symbol)
}

func (that *Coordinator) handleResetGame(connID string) {
	log := that.logger.With("method", "handleResetGame", "connID", connID)

	session, err := that.seatedSession(connID)
	if err != nil {
		log.Debug("ignoring reset", "error", err)
		return
	}

	session.Reset()
	that.groups.Broadcast(session.ID, entity.GameReset{})

	log.Info("game reset", "sessionID", session.ID)
}

// handleGameOver records completion. The opponent is not told: both clients
// derive the result from the same board.
func (that *Coordinator) handleGameOver(connID string, report entity.GameOver) {
	log := that.logger.With("method", "handleGameOver", "connID", connID)

	session, err := that.seatedSession(connID)
	if err != nil {
		log.Debug("ignoring game over", "error", err)
		return
	}

	session.Complete()

	if result := session.Board.Result(); result != report.Winner {
		log.Warn("reported winner does not match the board",
			"sessionID", session.ID, "reported", report.Winner, "board", result)
		return
	}

	log.Info("game finished", "sessionID", session.ID, "winner", report.Winner)
}

func (that *Coordinator) handleDisconnect(connID string) {
	log := that.logger.With("method", "handleDisconnect", "connID", connID)

	if sessionID, left := that.depart(connID); left {
		log.Info("player disconnected", "sessionID", sessionID)
	}
}

// handleLeaveGame runs the departure steps and then seats the connection again.
// The first waiting session may be the one that was just left.
func (that *Coordinator) handleLeaveGame(connID string) {
	log := that.logger.With("method", "handleLeaveGame", "connID", connID)

	sessionID, left := that.depart(connID)
	if !left {
		log.Debug("ignoring leave from a connection without a session")
		return
	}

	log.Info("player left for a rematch", "sessionID", sessionID)

	that.join(connID)
}

func (that *Coordinator) join(connID string) {
	log := that.logger.With("method", "join", "connID", connID)

	sessionID := that.matchmaker.Assign()

	session, ok := that.sessions.Get(sessionID)
	if !ok {
		log.Error("failed to seat player", "error", fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID))
		return
	}

	role, err := session.Seat(connID)
	if err != nil {
		log.Error("failed to seat player", "sessionID", sessionID, "error", err)
		return
	}

	that.members.Set(connID, session.ID)
	that.groups.Join(session.ID, connID)

	that.groups.Send(connID, entity.PlayerAssigned{
		Symbol:  role,
		Players: session.PlayerCount(),
		RoomID:  session.ID,
	})

	if session.IsFull() && session.InProgress() {
		that.groups.Send(connID, entity.SyncGameState{
			Board:       session.Board,
			CurrentTurn: session.Turn,
			GameOver:    session.Completed,
		})
	}

	that.groups.Broadcast(session.ID, entity.PlayerCount{Count: session.PlayerCount()})

	log.Info("player seated", "sessionID", session.ID, "symbol", role, "players", session.PlayerCount())
}

// depart removes connID from its session and reports the session it sat in.
// The membership entry goes first so the index never outlives the session.
func (that *Coordinator) depart(connID string) (string, bool) {
	log := that.logger.With("method", "depart", "connID", connID)

	sessionID, ok := that.members.Get(connID)
	if !ok {
		return "", false
	}

	that.members.Delete(connID)
	that.groups.Leave(sessionID, connID)

	session, ok := that.sessions.Get(sessionID)
	if !ok {
		log.Debug("session already gone", "sessionID", sessionID)
		return "", false
	}

	if !session.Unseat(connID) {
		log.Warn("membership pointed at a session without the player", "sessionID", sessionID)
	}

	if session.IsEmpty() {
		that.sessions.Delete(sessionID)
		log.Info("session deleted", "sessionID", sessionID)

		return sessionID, true
	}

	that.groups.Broadcast(sessionID, entity.PlayerCount{Count: session.PlayerCount()})
	that.groups.Broadcast(sessionID, entity.OpponentLeft{})

	return sessionID, true
}

func (that *Coordinator) seatedSession(connID string) (*entity.Session, error) {
	sessionID, ok := that.members.Get(connID)
	if !ok {
		return nil, apperror.ErrNotSeated
	}

	session, ok := that.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	return session, nil
}

// snapshot builds the status view; it must run on the loop like any handler.
func (that *Coordinator) snapshot() *entity.Stats {
	all := that.sessions.All()

	rooms := make([]entity.RoomSummary, 0, len(all))
	for _, session := range all {
		rooms = append(rooms, session.Summary())
	}

	return &entity.Stats{
		ActiveGames:  that.sessions.Len(),
		TotalPlayers: that.members.Len(),
		Rooms:        rooms,
	}
}
