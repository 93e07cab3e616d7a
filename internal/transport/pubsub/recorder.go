package pubsub

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Recorder is an in-memory Subscriber that keeps everything delivered to it.
type Recorder struct {
	mu       sync.Mutex
	messages []entity.Outbound
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (that *Recorder) Deliver(msg entity.Outbound) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.messages = append(that.messages, msg)
}

func (that *Recorder) Messages() []entity.Outbound {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Outbound(nil), that.messages...)
}

// Drain returns the recorded messages and forgets them.
func (that *Recorder) Drain() []entity.Outbound {
	that.mu.Lock()
	defer that.mu.Unlock()

	messages := that.messages
	that.messages = nil

	return messages
}
