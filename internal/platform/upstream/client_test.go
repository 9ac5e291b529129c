package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(provider string) *Client {
	return NewClient(Options{Provider: provider, Timeout: 2 * time.Second, Logger: zerolog.Nop()})
}

func TestGetJSON_DecodesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "reliva/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"A.R. Rahman"}}`))
	}))
	defer srv.Close()

	c := newTestClient("saavn.dev")
	header := http.Header{}
	header.Set("Authorization", "Bearer abc")

	payload, err := c.GetJSON(context.Background(), srv.URL+"/api/artists/456269", header)
	require.NoError(t, err)

	data := payload["data"].(map[string]any)
	assert.Equal(t, "A.R. Rahman", data["name"])
}

func TestGetJSON_NonSuccessIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient("tmdb")
	_, err := c.GetJSON(context.Background(), srv.URL+"/movie/1?api_key=secret", nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.NotContains(t, statusErr.Error(), "secret")
	assert.False(t, IsTransient(err))
}

func TestGetJSON_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient("nytimes").GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestDo_DoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient("mirror")
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := c.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_TimeoutIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(Options{Provider: "slow", Timeout: 20 * time.Millisecond, Logger: zerolog.Nop()})
	_, err := c.GetJSON(context.Background(), srv.URL+"?key=hidden", nil)

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.NotContains(t, err.Error(), "hidden")
}

func TestDo_BreakerOpensAfterRepeatedServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient("flaky")
	for i := 0; i < 10; i++ {
		_, _ = c.GetJSON(context.Background(), srv.URL, nil)
	}

	_, err := c.GetJSON(context.Background(), srv.URL, nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(10), atomic.LoadInt32(&calls))
}

func TestDo_ClientErrorsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient("books")
	for i := 0; i < 15; i++ {
		_, err := c.GetJSON(context.Background(), srv.URL, nil)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "call %d", i)
	}
}

func TestPostJSON_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"accessToken":"tok","expiresIn":3600}`))
	}))
	defer srv.Close()

	payload, err := newTestClient("musicapi").PostJSON(context.Background(), srv.URL, nil, map[string]string{"clientId": "id"})
	require.NoError(t, err)
	assert.Equal(t, "tok", payload["accessToken"])
}
