package rest

import (
	"encoding/json"
	"net/http"
)

func (that *Server) statsHandler(w http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "statsHandler")

	stats, err := that.stats.Stats(req.Context())
	if err != nil {
		log.Error("failed to collect stats", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("failed to encode stats", "error", err)
	}
}
