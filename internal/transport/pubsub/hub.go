package pubsub

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Subscriber receives messages addressed to a connection. Deliver must not block.
type Subscriber interface {
	Deliver(msg entity.Outbound)
}

// Hub keeps broadcast groups keyed by session id. It knows connections only
// by id and by their Subscriber, never by the transport behind them.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]Subscriber
	groups      map[string]map[string]struct{}
	memberOf    map[string]map[string]struct{}
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "pubsub"),
		subscribers: make(map[string]Subscriber),
		groups:      make(map[string]map[string]struct{}),
		memberOf:    make(map[string]map[string]struct{}),
	}
}

func (that *Hub) Register(connID string, subscriber Subscriber) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.subscribers[connID] = subscriber
}

// Unregister forgets the connection and removes it from every group it joined.
func (that *Hub) Unregister(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.subscribers, connID)

	for group := range that.memberOf[connID] {
		that.removeLocked(group, connID)
	}
	delete(that.memberOf, connID)
}

func (that *Hub) Join(group, connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	members, ok := that.groups[group]
	if !ok {
		members = make(map[string]struct{})
		that.groups[group] = members
	}
	members[connID] = struct{}{}

	joined, ok := that.memberOf[connID]
	if !ok {
		joined = make(map[string]struct{})
		that.memberOf[connID] = joined
	}
	joined[group] = struct{}{}
}

func (that *Hub) Leave(group, connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removeLocked(group, connID)

	if joined, ok := that.memberOf[connID]; ok {
		delete(joined, group)
		if len(joined) == 0 {
			delete(that.memberOf, connID)
		}
	}
}

func (that *Hub) removeLocked(group, connID string) {
	members, ok := that.groups[group]
	if !ok {
		return
	}

	delete(members, connID)
	if len(members) == 0 {
		delete(that.groups, group)
	}
}

// Send delivers msg to a single connection. Unknown connections are skipped.
func (that *Hub) Send(connID string, msg entity.Outbound) {
	that.mu.RLock()
	subscriber, ok := that.subscribers[connID]
	that.mu.RUnlock()

	if !ok {
		that.logger.Debug("subscriber not found", "connID", connID, "action", msg.Action())
		return
	}

	subscriber.Deliver(msg)
}

// Broadcast delivers msg to every current member of group.
func (that *Hub) Broadcast(group string, msg entity.Outbound) {
	that.mu.RLock()
	subscribers := make([]Subscriber, 0, len(that.groups[group]))
	for connID := range that.groups[group] {
		if subscriber, ok := that.subscribers[connID]; ok {
			subscribers = append(subscribers, subscriber)
		}
	}
	that.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.Deliver(msg)
	}
}

// Members returns the sorted connection ids of group.
func (that *Hub) Members(group string) []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	members := make([]string, 0, len(that.groups[group]))
	for connID := range that.groups[group] {
		members = append(members, connID)
	}
	sort.Strings(members)

	return members
}

func (that *Hub) GroupCount() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.groups)
}
