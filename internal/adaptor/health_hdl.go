package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-records/pkg/utils"

	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store pinger
	log   *zap.Logger
}

func NewHealthHandler(store pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		log:   log.With(zap.String("handler", "health")),
	}
}

// Ping handles GET /ping
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]string{"ping": "pong!"})
}

// Health handles GET /health and reports whether the store is reachable
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		utils.ResponseUnavailable(w, "Store unavailable")
		return
	}

	utils.ResponseSuccess(w, map[string]string{"status": "ok"})
}
