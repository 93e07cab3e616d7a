package service

import (
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type MatchmakerService interface {
	Assign() string
}

type sessionRegistry interface {
	Create() *entity.Session
	All() []*entity.Session
}

type matchmakerService struct {
	sessions sessionRegistry
}

func NewMatchmakerService(sessions sessionRegistry) MatchmakerService {
	return &matchmakerService{
		sessions: sessions,
	}
}

// Assign returns the first session waiting for an opponent, or a freshly created one.
func (that *matchmakerService) Assign() string {
	for _, session := range that.sessions.All() {
		if session.PlayerCount() == 1 {
			return session.ID
		}
	}

	return that.sessions.Create().ID
}
