package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// client is one socket connection. Deliver never blocks: when the send
// buffer is full the connection is closed, which ends its read loop.
type client struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	send      chan entity.Outbound
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(logger *slog.Logger, id string, conn *websocket.Conn, sendBuffer int) *client {
	return &client{
		id:     id,
		conn:   conn,
		logger: logger.With("connID", id),
		send:   make(chan entity.Outbound, sendBuffer),
		done:   make(chan struct{}),
	}
}

func (that *client) Deliver(msg entity.Outbound) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- msg:
	default:
		that.logger.Warn("send buffer is full, closing connection", "action", msg.Action())
		that.close()
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

// writePump drains the send buffer onto the socket and keeps it alive with pings.
func (that *client) writePump(ctx context.Context) {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-that.done:
			return
		case <-ctx.Done():
			_ = that.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			that.close()
			return
		case msg := <-that.send:
			data, err := encodeMessage(msg)
			if err != nil {
				log.Error("failed to encode message", "action", msg.Action(), "error", err)
				continue
			}

			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug("failed to write message", "error", err)
				that.close()
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug("failed to write ping", "error", err)
				that.close()
				return
			}
		}
	}
}
