package repository

import (
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/pkg"
)

// SessionRegistry owns the live sessions. It is not safe for concurrent use;
// the coordinator's event loop is its only caller.
type SessionRegistry interface {
	Create() *entity.Session
	Get(id string) (*entity.Session, bool)
	Delete(id string)
	All() []*entity.Session
	Len() int
}

type memorySessions struct {
	sessions map[string]*entity.Session
	order    []string
	newID    func() string
}

func NewSessionRegistry() SessionRegistry {
	return &memorySessions{
		sessions: make(map[string]*entity.Session),
		newID:    pkg.GenerateSessionID,
	}
}

func (that *memorySessions) Create() *entity.Session {
	id := that.newID()
	for {
		if _, exists := that.sessions[id]; !exists {
			break
		}
		id = that.newID()
	}

	session := entity.NewSession(id)

	that.sessions[id] = session
	that.order = append(that.order, id)

	return session
}

func (that *memorySessions) Get(id string) (*entity.Session, bool) {
	session, ok := that.sessions[id]
	return session, ok
}

func (that *memorySessions) Delete(id string) {
	if _, ok := that.sessions[id]; !ok {
		return
	}

	delete(that.sessions, id)

	for i, existing := range that.order {
		if existing == id {
			that.order = append(that.order[:i], that.order[i+1:]...)
			break
		}
	}
}

// All returns the live sessions in creation order.
func (that *memorySessions) All() []*entity.Session {
	sessions := make([]*entity.Session, 0, len(that.order))
	for _, id := range that.order {
		sessions = append(sessions, that.sessions[id])
	}

	return sessions
}

func (that *memorySessions) Len() int {
	return len(that.sessions)
}
