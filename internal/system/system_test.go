package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	driver string
	err    error
}

func (f fakeDB) Driver() string { return f.driver }

func (f fakeDB) SelectOne(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func TestHealth(t *testing.T) {
	h := NewHandler("0.1.0", fakeDB{driver: "sqlite"})
	w := httptest.NewRecorder()

	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestVersion(t *testing.T) {
	h := NewHandler("9.9.9", fakeDB{driver: "sqlite"})
	w := httptest.NewRecorder()

	h.Version(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.JSONEq(t, `{"version":"9.9.9"}`, w.Body.String())
}

func TestPing(t *testing.T) {
	h := NewHandler("0.1.0", fakeDB{driver: "sqlite"})
	h.now = func() time.Time { return time.Date(2025, 3, 1, 12, 30, 0, 0, time.FixedZone("MSK", 3*3600)) }
	w := httptest.NewRecorder()

	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "go", w.Header().Get("X-Debug-Handler"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "pong", body["message"])
	assert.Equal(t, "2025-03-01T09:30:00.000000Z", body["ts"])
}

func TestDBPing(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := NewHandler("0.1.0", fakeDB{driver: "pgx"})
		w := httptest.NewRecorder()

		h.DBPing(w, httptest.NewRequest(http.MethodGet, "/db-ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"db":"ok","select1":1,"driver":"pgx"}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		h := NewHandler("0.1.0", fakeDB{driver: "pgx", err: errors.New("connection refused")})
		w := httptest.NewRecorder()

		h.DBPing(w, httptest.NewRequest(http.MethodGet, "/db-ping", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"db":"error","driver":"pgx","error":"connection refused"}`, w.Body.String())
	})
}
