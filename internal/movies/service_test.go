package movies

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/httpx"
	"reliva/internal/platform/upstream"
)

type fixture struct {
	svc     *Service
	catalog *MockCatalog
	videos  *MockVideoSearcher
	cache   *MemoryCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		catalog: NewMockCatalog(ctrl),
		videos:  NewMockVideoSearcher(ctrl),
		cache:   NewMemoryCache(16),
	}
	f.svc = NewService(f.catalog, f.videos, f.cache, zerolog.Nop())
	return f
}

func status(t *testing.T, err error) int {
	t.Helper()
	var appErr *httpx.Error
	require.True(t, errors.As(err, &appErr))
	return appErr.Status()
}

func okResponse(body string) *upstream.Response {
	return &upstream.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"application/json;charset=utf-8"}},
		Body:       []byte(body),
	}
}

func TestProxy_CachesSuccessfulGet(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	query := url.Values{"language": {"en-US"}}
	f.catalog.EXPECT().Proxy(gomock.Any(), http.MethodGet, "movie/550", query, nil, "").
		Return(okResponse(`{"id":550}`), nil).Times(1)

	first, err := f.svc.Proxy(context.Background(), http.MethodGet, "movie/550", query, nil, "")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := f.svc.Proxy(context.Background(), http.MethodGet, "movie/550", query, nil, "")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, `{"id":550}`, string(second.Body))
	assert.Equal(t, "application/json;charset=utf-8", second.ContentType)
}

func TestProxy_CacheKeyIgnoresClientAPIKey(t *testing.T) {
	a := proxyCacheKey("/movie/550", url.Values{"api_key": {"client"}, "page": {"1"}})
	b := proxyCacheKey("movie/550", url.Values{"page": {"1"}})
	assert.Equal(t, a, b)
}

func TestProxy_ForwardsErrorStatusUncached(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	f.catalog.EXPECT().Proxy(gomock.Any(), http.MethodGet, "movie/0", gomock.Any(), nil, "").
		Return(&upstream.Response{StatusCode: http.StatusNotFound, Header: http.Header{}, Body: []byte(`{"status_code":34}`)}, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		resp, err := f.svc.Proxy(context.Background(), http.MethodGet, "movie/0", nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "application/json", resp.ContentType)
	}
}

func TestProxy_PostIsNotCached(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	f.catalog.EXPECT().Proxy(gomock.Any(), http.MethodPost, "movie/550/rating", gomock.Any(), gomock.Any(), "application/json").
		Return(okResponse(`{"success":true}`), nil).Times(2)

	for i := 0; i < 2; i++ {
		resp, err := f.svc.Proxy(context.Background(), http.MethodPost, "movie/550/rating", nil, nil, "application/json")
		require.NoError(t, err)
		assert.False(t, resp.Cached)
	}
}

func TestProxy_Errors(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(false)
	_, err := f.svc.Proxy(context.Background(), http.MethodGet, "movie/550", nil, nil, "")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
	assert.Contains(t, err.Error(), "TMDB_API_KEY")

	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	_, err = f.svc.Proxy(context.Background(), http.MethodGet, "/", nil, nil, "")
	assert.Equal(t, http.StatusBadRequest, status(t, err))

	f.catalog.EXPECT().Proxy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, upstream.ErrCircuitOpen)
	_, err = f.svc.Proxy(context.Background(), http.MethodGet, "movie/550", nil, nil, "")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	f.catalog.EXPECT().Search(gomock.Any(), "tv", "Dark", 2).Return(upstream.Payload{
		"results": []any{map[string]any{"id": float64(70523), "name": "Dark", "first_air_date": "2017-12-01"}},
	}, nil)

	movies, err := f.svc.Search(context.Background(), "TV", "Dark", 2)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 70523, movies[0].ID)
	assert.Equal(t, "Dark", movies[0].Title)
	assert.Equal(t, "tv", movies[0].MediaType)

	_, err = f.svc.Search(context.Background(), "anime", "Dark", 0)
	assert.Equal(t, http.StatusBadRequest, status(t, err))

	_, err = f.svc.Search(context.Background(), "movie", " ", 0)
	assert.Equal(t, http.StatusBadRequest, status(t, err))
}

func TestTrending(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Configured().Return(true).AnyTimes()
	f.catalog.EXPECT().Trending(gomock.Any(), "movie", "week").Return(upstream.Payload{"results": []any{}}, nil)

	movies, err := f.svc.Trending(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	_, err = f.svc.Trending(context.Background(), "movie", "month")
	assert.Equal(t, http.StatusBadRequest, status(t, err))

	f.catalog.EXPECT().Trending(gomock.Any(), "tv", "day").Return(nil, errors.New("timeout"))
	_, err = f.svc.Trending(context.Background(), "tv", "day")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
}

func TestTrailer(t *testing.T) {
	f := newFixture(t)
	f.videos.EXPECT().Configured().Return(true).AnyTimes()
	f.videos.EXPECT().SearchVideos(gomock.Any(), "Dune trailer", 1).Return(upstream.Payload{
		"items": []any{map[string]any{
			"id":      map[string]any{"kind": "youtube#video", "videoId": "n9xhJrPXop4"},
			"snippet": map[string]any{"title": "DUNE &amp; Official Trailer"},
		}},
	}, nil)

	trailer, err := f.svc.Trailer(context.Background(), "Dune")
	require.NoError(t, err)
	assert.Equal(t, "n9xhJrPXop4", trailer.VideoID)
	assert.Equal(t, "DUNE & Official Trailer", trailer.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=n9xhJrPXop4", trailer.URL)

	f.videos.EXPECT().SearchVideos(gomock.Any(), "Nothing Trailer", 1).Return(upstream.Payload{"items": []any{}}, nil)
	_, err = f.svc.Trailer(context.Background(), "Nothing Trailer")
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestTrailer_NotConfigured(t *testing.T) {
	f := newFixture(t)
	f.videos.EXPECT().Configured().Return(false)

	_, err := f.svc.Trailer(context.Background(), "Dune")
	assert.Contains(t, err.Error(), "YOUTUBE_API_KEY")
}
