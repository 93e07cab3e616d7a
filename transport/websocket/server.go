package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/config"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/transport/pubsub"
)

const disconnectTimeout = 5 * time.Second

type coordinator interface {
	Submit(ctx context.Context, connID string, event entity.Event) error
}

type hub interface {
	Register(connID string, subscriber pubsub.Subscriber)
	Unregister(connID string)
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	hub         hub
	conf        config.WebSocket

	upgrader websocket.Upgrader
	decoders map[string]decoder
}

func New(logger *slog.Logger, coordinator coordinator, hub hub, conf config.WebSocket) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		coordinator: coordinator,
		hub:         hub,
		conf:        conf,
		decoders:    newDecoders(),
	}

	server.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(req *http.Request) bool {
			return server.conf.OriginAllowed(req.Header.Get("Origin"))
		},
	}

	return server
}

// Handler returns the mux serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeWS)

	return mux
}

// Start - starts WebSocket server and shuts it down once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS upgrades the request and serves the connection until it closes.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// the upgrader has already replied with an error status
		log.Warn("failed to upgrade connection", "error", err, "origin", req.Header.Get("Origin"))
		return
	}

	c := newClient(that.logger, pkg.GenerateConnectionID(), conn, that.conf.SendBuffer)
	that.hub.Register(c.id, c)

	log.Info("WebSocket connection established", "connID", c.id)

	ctx := req.Context()
	go c.writePump(ctx)

	if err = that.coordinator.Submit(ctx, c.id, entity.Connect{}); err != nil {
		log.Error("failed to submit connect", "connID", c.id, "error", err)
		that.hub.Unregister(c.id)
		c.close()
		return
	}

	that.readPump(ctx, c)

	// the request context may already be cancelled here
	disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err = that.coordinator.Submit(disconnectCtx, c.id, entity.Disconnect{}); err != nil {
		log.Error("failed to submit disconnect", "connID", c.id, "error", err)
	}

	that.hub.Unregister(c.id)
	c.close()

	log.Info("WebSocket connection closed", "connID", c.id)
}

// readPump decodes frames and submits them until the connection fails or closes.
func (that *Server) readPump(ctx context.Context, c *client) {
	log := c.logger.With("method", "readPump")

	c.conn.SetReadLimit(that.conf.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}
			return
		}

		event, err := that.decodeMessage(data)
		if err != nil {
			if errors.Is(err, apperror.ErrUnknownAction) {
				log.Debug("ignoring message", "error", err)
			} else {
				log.Warn("dropping malformed message", "error", err)
			}
			continue
		}

		if err = that.coordinator.Submit(ctx, c.id, event); err != nil {
			log.Error("failed to submit event", "action", event.Action(), "error", err)
			return
		}
	}
}
