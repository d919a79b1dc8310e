// Package system serves the liveness, version and database diagnostics
// endpoints.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"blackhole/internal/httpx"
)

// Database is the part of the store the diagnostics need.
type Database interface {
	Driver() string
	SelectOne(ctx context.Context) (int, error)
}

type Handler struct {
	version string
	db      Database
	now     func() time.Time
}

func NewHandler(version string, db Database) *Handler {
	return &Handler{version: version, db: db, now: time.Now}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"version": h.version})
}

type pingResponse struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status"`
	Message string `json:"message"`
	TS      string `json:"ts"`
}

// Ping handles GET /ping. The timestamp is UTC with a trailing Z.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Debug-Handler", "go")
	httpx.JSON(w, http.StatusOK, pingResponse{
		OK:      true,
		Status:  "ok",
		Message: "pong",
		TS:      h.now().UTC().Format("2006-01-02T15:04:05.000000Z"),
	})
}

// DBPing handles GET /db-ping
func (h *Handler) DBPing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	driver := h.db.Driver()
	one, err := h.db.SelectOne(ctx)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("driver", driver).Msg("db ping failed")
		httpx.JSON(w, http.StatusInternalServerError, map[string]any{
			"db":     "error",
			"driver": driver,
			"error":  err.Error(),
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"db":      "ok",
		"select1": one,
		"driver":  driver,
	})
}
