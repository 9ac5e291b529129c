package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tmdb key", "https://api.themoviedb.org/3/movie/550?api_key=abc&language=en", "https://api.themoviedb.org/3/movie/550?api_key=REDACTED&language=en"},
		{"nyt key", "https://api.nytimes.com/svc/books/v3/lists/overview.json?api-key=xyz", "https://api.nytimes.com/svc/books/v3/lists/overview.json?api-key=REDACTED"},
		{"google key", "https://www.googleapis.com/youtube/v3/search?key=k&q=x", "https://www.googleapis.com/youtube/v3/search?key=REDACTED&q=x"},
		{"no secrets", "https://saavn.dev/api/artists/1?page=2", "https://saavn.dev/api/artists/1?page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURL(tt.in))
		})
	}
}

func TestRedactURL_Unparseable(t *testing.T) {
	assert.Equal(t, "[unparseable url]", RedactURL("http://[::1"))
}
