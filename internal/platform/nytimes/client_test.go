package nytimes

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/testutil"
)

func TestOverview(t *testing.T) {
	baseURL, client := testutil.Provider(t, "nytimes", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lists/overview.json", r.URL.Path)
		assert.Equal(t, "nyt", r.URL.Query().Get("api-key"))
		assert.Equal(t, "2024-05-12", r.URL.Query().Get("published_date"))
		_, _ = w.Write([]byte(`{"status":"OK","results":{"published_date":"2024-05-12","lists":[]}}`))
	}))

	c := NewClient(baseURL, "nyt", client)
	assert.True(t, c.Configured())

	payload, err := c.Overview(context.Background(), "2024-05-12")
	require.NoError(t, err)
	assert.Equal(t, "OK", payload["status"])
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("http://x", "", nil).Configured())
}
