// Package testutil holds helpers shared by handler, router and adapter tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"reliva/internal/platform/upstream"
)

// NewRequest creates a request whose body is body encoded as JSON. A string
// body is sent verbatim.
func NewRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse is a recorded response with its body decoded as a JSON object.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
	Raw    string
}

func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)

	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
		Raw:    string(raw),
	}
}

// Serve runs r through h and records the response.
func Serve(h http.Handler, r *http.Request) RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return RecordHTTPResponse(w)
}

// Provider starts a fake provider for the test and returns its base URL and an
// upstream client suited to talk to it.
func Provider(t *testing.T, name string, h http.Handler) (string, *upstream.Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL, upstream.NewClient(upstream.Options{Provider: name, Logger: zerolog.Nop()})
}
