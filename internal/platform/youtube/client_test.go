package youtube

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/testutil"
)

func TestSearchVideos(t *testing.T) {
	baseURL, client := testutil.Provider(t, "youtube", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "yt-key", q.Get("key"))
		assert.Equal(t, "1", q.Get("maxResults"))
		_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"SUXWAEX2jlg"},"snippet":{"title":"Fight Club Trailer"}}]}`))
	}))

	c := NewClient(baseURL, "yt-key", client)
	require.True(t, c.Configured())

	payload, err := c.SearchVideos(context.Background(), "Fight Club trailer", 0)
	require.NoError(t, err)
	assert.Len(t, payload["items"], 1)
}

func TestSearchVideos_QuotaExceeded(t *testing.T) {
	baseURL, client := testutil.Provider(t, "youtube", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	}))

	_, err := NewClient(baseURL, "yt-key", client).SearchVideos(context.Background(), "x", 1)
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "yt-key")
}
