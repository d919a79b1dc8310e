// Package testutil holds request and response helpers shared by handler
// tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"blackhole/internal/httpx"
)

// TestSeed is a catalog entry with every optional field set.
func TestSeed() map[string]any {
	return map[string]any{
		"name":        "Стрелец A*",
		"distance_ly": 26000,
		"mass_solar":  4.3e6,
		"description": "Сверхмассивная чёрная дыра в центре Млечного Пути",
	}
}

// NewRequest creates a request with body encoded as JSON. A string body
// is sent as is, which lets tests post malformed JSON.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		return httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, bytes.NewBufferString(b))
	default:
		raw, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(raw))
	}
	r.Header.Set("Content-Type", "application/json")
	return r
}

// DecodeError reads the error envelope from a recorded response.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder) httpx.ErrorResponse {
	t.Helper()
	var res httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res), w.Body.String())
	require.False(t, res.Success)
	return res
}

// DetailFields lists the fields named in an error's validation details.
func DetailFields(res httpx.ErrorResponse) []string {
	fields := make([]string, 0, len(res.Error.Details))
	for _, d := range res.Error.Details {
		fields = append(fields, d.Field)
	}
	return fields
}
