package repository

// MembershipIndex maps a connection to the session it is seated in.
// Like SessionRegistry it belongs to the event loop and has no locking.
type MembershipIndex interface {
	Set(connID, sessionID string)
	Get(connID string) (string, bool)
	Delete(connID string)
	Len() int
}

type memoryMembership struct {
	sessionByConn map[string]string
}

func NewMembershipIndex() MembershipIndex {
	return &memoryMembership{
		sessionByConn: make(map[string]string),
	}
}

func (that *memoryMembership) Set(connID, sessionID string) {
	that.sessionByConn[connID] = sessionID
}

func (that *memoryMembership) Get(connID string) (string, bool) {
	sessionID, ok := that.sessionByConn[connID]
	return sessionID, ok
}

func (that *memoryMembership) Delete(connID string) {
	delete(that.sessionByConn, connID)
}

func (that *memoryMembership) Len() int {
	return len(that.sessionByConn)
}
