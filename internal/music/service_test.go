package music

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/httpx"
	"reliva/internal/media"
	"reliva/internal/platform/upstream"
)

type fixture struct {
	primary  *MockCatalogSource
	mirror   *MockCatalogSource
	spotify  *MockTrackSearcher
	previews *MockPreviewSearcher
	svc      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		primary:  NewMockCatalogSource(ctrl),
		mirror:   NewMockCatalogSource(ctrl),
		spotify:  NewMockTrackSearcher(ctrl),
		previews: NewMockPreviewSearcher(ctrl),
	}
	f.primary.EXPECT().Name().Return("saavn.dev").AnyTimes()
	f.mirror.EXPECT().Name().Return("saavn-mirror").AnyTimes()
	f.svc = NewService(f.primary, f.mirror, f.spotify, f.previews, zerolog.Nop())
	return f
}

var errTransport = errors.New("dial tcp: i/o timeout")

func status(t *testing.T, err error) int {
	t.Helper()
	var appErr *httpx.Error
	require.True(t, errors.As(err, &appErr), "expected *httpx.Error, got %v", err)
	return appErr.Status()
}

func TestArtist_PrimaryWins(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().Artist(gomock.Any(), "1").Return(upstream.Payload{"id": "1", "name": "Primary"}, nil)

	artist, err := f.svc.Artist(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Primary", artist.Name)
}

func TestArtist_MirrorAfterEmptyPrimary(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().Artist(gomock.Any(), "1").Return(upstream.Payload{}, nil)
	f.mirror.EXPECT().Artist(gomock.Any(), "1").Return(upstream.Payload{"id": "1", "name": "Mirror"}, nil)

	artist, err := f.svc.Artist(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Mirror", artist.Name)
}

func TestArtist_KnownAliasSearchesPrimary(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.primary.EXPECT().Artist(gomock.Any(), "456269").Return(nil, errTransport),
		f.mirror.EXPECT().Artist(gomock.Any(), "456269").Return(upstream.Payload{}, nil),
		f.primary.EXPECT().SearchArtists(gomock.Any(), "A.R. Rahman").Return([]upstream.Payload{
			{"id": "456269", "name": "A.R. Rahman"},
			{"id": "999", "name": "Someone Else"},
		}, nil),
	)

	artist, err := f.svc.Artist(context.Background(), "456269")
	require.NoError(t, err)
	assert.Equal(t, "A.R. Rahman", artist.Name)
	assert.Equal(t, similarSeeds["456269"], artist.SimilarArtists)
}

func TestArtist_NotFoundWhenExhausted(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().Artist(gomock.Any(), "nobody").Return(nil, errTransport)
	f.mirror.EXPECT().Artist(gomock.Any(), "nobody").Return(nil, errTransport)

	_, err := f.svc.Artist(context.Background(), "nobody")
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestSimilarArtists_LiveThenSeedThenEmpty(t *testing.T) {
	t.Run("live", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "1").Return(upstream.Payload{
			"similarArtists": []any{map[string]any{"id": "2", "name": "Two"}},
		}, nil)

		stubs := f.svc.SimilarArtists(context.Background(), "1")
		require.Len(t, stubs, 1)
		assert.Equal(t, "Two", stubs[0].Name)
	})

	t.Run("seeded for known alias when live sources are empty", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "456269").Return(upstream.Payload{"similarArtists": []any{}}, nil)
		f.mirror.EXPECT().Artist(gomock.Any(), "456269").Return(upstream.Payload{}, nil)

		stubs := f.svc.SimilarArtists(context.Background(), "456269")
		assert.NotEmpty(t, stubs)
		assert.Equal(t, similarSeeds["456269"], stubs)
	})

	t.Run("slug alias shares the seed set", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "ar-rahman").Return(nil, errTransport)
		f.mirror.EXPECT().Artist(gomock.Any(), "ar-rahman").Return(nil, errTransport)

		assert.Equal(t, similarSeeds["456269"], f.svc.SimilarArtists(context.Background(), "ar-rahman"))
	})

	t.Run("empty array otherwise", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "7").Return(nil, errTransport)
		f.mirror.EXPECT().Artist(gomock.Any(), "7").Return(nil, errTransport)

		stubs := f.svc.SimilarArtists(context.Background(), "7")
		assert.NotNil(t, stubs)
		assert.Empty(t, stubs)
	})
}

func TestSeededSimilar_ReturnsCopy(t *testing.T) {
	first := seededSimilar("456269")
	first[0].Name = "changed"
	assert.Equal(t, "Ilaiyaraaja", similarSeeds["456269"][0].Name)
}

func TestArtistDOB(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "456269").Return(upstream.Payload{"id": "456269", "name": "A.R. Rahman", "dob": "1967-01-06"}, nil)

		dob, err := f.svc.ArtistDOB(context.Background(), "456269")
		require.NoError(t, err)
		assert.Equal(t, DOB{ID: "456269", Name: "A.R. Rahman", DOB: "1967-01-06", IsValid: true}, dob)
	})

	t.Run("unparsable date is invalid", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "1").Return(upstream.Payload{"name": "X", "dob": "sometime in 1967", "isValid": true}, nil)

		dob, err := f.svc.ArtistDOB(context.Background(), "1")
		require.NoError(t, err)
		assert.False(t, dob.IsValid)
		assert.Equal(t, "1", dob.ID)
	})

	t.Run("transport failure is 500", func(t *testing.T) {
		f := newFixture(t)
		f.primary.EXPECT().Artist(gomock.Any(), "1").Return(nil, errTransport)
		f.mirror.EXPECT().Artist(gomock.Any(), "1").Return(nil, errTransport)

		_, err := f.svc.ArtistDOB(context.Background(), "1")
		assert.Equal(t, http.StatusInternalServerError, status(t, err))
	})
}

func TestSongAndAlbum(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().Song(gomock.Any(), "s").Return(upstream.Payload{}, nil)
	f.mirror.EXPECT().Song(gomock.Any(), "s").Return(upstream.Payload{"id": "s", "name": "Jai Ho", "primaryArtists": "A.R. Rahman"}, nil)

	song, err := f.svc.Song(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, "Jai Ho", song.Name)
	assert.Equal(t, []media.ArtistRef{{Name: "A.R. Rahman"}}, song.Artists.Primary)

	f.primary.EXPECT().Album(gomock.Any(), "a").Return(upstream.Payload{}, nil)
	f.mirror.EXPECT().Album(gomock.Any(), "a").Return(upstream.Payload{}, nil)

	_, err = f.svc.Album(context.Background(), "a")
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestSong_AllTransportFailuresAre500(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().Song(gomock.Any(), "s").Return(nil, errTransport)
	f.mirror.EXPECT().Song(gomock.Any(), "s").Return(nil, errTransport)

	_, err := f.svc.Song(context.Background(), "s")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
}

func TestSearchSongs(t *testing.T) {
	f := newFixture(t)
	f.primary.EXPECT().SearchSongs(gomock.Any(), "nothing", defaultSearchLimit).Return([]upstream.Payload{}, nil)
	f.mirror.EXPECT().SearchSongs(gomock.Any(), "nothing", defaultSearchLimit).Return(nil, nil)

	songs, err := f.svc.SearchSongs(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, songs)
	assert.Empty(t, songs)

	f.primary.EXPECT().SearchSongs(gomock.Any(), "x", defaultSearchLimit).Return(nil, errTransport)
	f.mirror.EXPECT().SearchSongs(gomock.Any(), "x", defaultSearchLimit).Return([]upstream.Payload{{"id": "1", "name": "One"}}, nil)

	songs, err = f.svc.SearchSongs(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, songs, 1)

	f.primary.EXPECT().SearchSongs(gomock.Any(), "roja", defaultSearchLimit).Return(nil, nil)
	f.mirror.EXPECT().SearchSongs(gomock.Any(), "roja", defaultSearchLimit).Return([]upstream.Payload{{"id": "2", "name": "Roja"}}, nil)

	songs, err = f.svc.SearchSongs(context.Background(), "roja")
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "Roja", songs[0].Name)

	f.primary.EXPECT().SearchSongs(gomock.Any(), "down", defaultSearchLimit).Return(nil, errTransport)
	f.mirror.EXPECT().SearchSongs(gomock.Any(), "down", defaultSearchLimit).Return(nil, errTransport)
	_, err = f.svc.SearchSongs(context.Background(), "down")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
}

func TestUnknownIDOnBothDeploymentsIsNotFound(t *testing.T) {
	f := newFixture(t)
	notFound := &upstream.StatusError{Provider: "saavn", StatusCode: http.StatusNotFound}
	f.primary.EXPECT().Song(gomock.Any(), "missing").Return(nil, notFound)
	f.mirror.EXPECT().Song(gomock.Any(), "missing").Return(nil, notFound)
	f.primary.EXPECT().Album(gomock.Any(), "missing").Return(nil, notFound)
	f.mirror.EXPECT().Album(gomock.Any(), "missing").Return(nil, notFound)
	f.primary.EXPECT().Artist(gomock.Any(), "missing").Return(nil, notFound)
	f.mirror.EXPECT().Artist(gomock.Any(), "missing").Return(nil, notFound)

	_, err := f.svc.Song(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, status(t, err))

	_, err = f.svc.Album(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, status(t, err))

	_, err = f.svc.ArtistDOB(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestSpotifySearch(t *testing.T) {
	f := newFixture(t)
	f.spotify.EXPECT().Configured().Return(false)

	_, err := f.svc.SpotifySearch(context.Background(), "q", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOTIFY_CLIENT_ID")

	f.spotify.EXPECT().Configured().Return(true)
	f.spotify.EXPECT().SearchTracks(gomock.Any(), "q", 10).Return([]map[string]any{
		{"id": "1", "name": "Roja", "artists": []any{map[string]any{"id": "a", "name": "A.R. Rahman"}}},
	}, nil)

	tracks, err := f.svc.SpotifySearch(context.Background(), "q", 10)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "A.R. Rahman", tracks[0].PrimaryArtists)
}

func TestPreview(t *testing.T) {
	f := newFixture(t)
	f.previews.EXPECT().Configured().Return(true).Times(2)
	f.previews.EXPECT().Search(gomock.Any(), "Jai Ho", "A.R. Rahman", gomock.Nil()).Return(upstream.Payload{
		"tuples": []any{
			map[string]any{"source": "appleMusic", "data": map[string]any{"previewUrl": nil}},
			map[string]any{"source": "spotify", "data": map[string]any{"previewUrl": "https://p.scdn.co/x", "name": "Jai Ho"}},
		},
	}, nil)

	preview, err := f.svc.Preview(context.Background(), "Jai Ho", "A.R. Rahman")
	require.NoError(t, err)
	assert.Equal(t, Preview{PreviewURL: "https://p.scdn.co/x", Source: "spotify", Name: "Jai Ho"}, preview)

	f.previews.EXPECT().Search(gomock.Any(), "silence", "", gomock.Nil()).Return(upstream.Payload{"tuples": []any{}}, nil)
	_, err = f.svc.Preview(context.Background(), "silence", "")
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestPreview_NotConfigured(t *testing.T) {
	f := newFixture(t)
	f.previews.EXPECT().Configured().Return(false)

	_, err := f.svc.Preview(context.Background(), "x", "")
	assert.Equal(t, http.StatusInternalServerError, status(t, err))
	assert.Contains(t, err.Error(), "MUSICAPI_CLIENT_ID")
}
