package rest

import "net/http"

const banner = "Tic-Tac-Toe server is up and running with multiple game room support!"

func (that *Server) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Server) bannerHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(banner)); err != nil {
		that.logger.Error("failed to write banner", "error", err)
	}
}
