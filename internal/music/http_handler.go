package music

import (
	"net/http"
	"strconv"
	"strings"

	"reliva/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func requiredQuery(r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	return v, v != ""
}

// Artist handles GET /api/saavn/artist
// @Summary Get artist
// @Description Resolve an artist through saavn.dev, the mirror, then the known-alias search
// @Tags music
// @Produce json
// @Param id query string true "Artist id or alias"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/saavn/artist [get]
func (h *HTTPHandler) Artist(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(r, "id")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}

	artist, err := h.service.Artist(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, artist, nil)
}

// SimilarArtists handles GET /api/saavn/artist/similar. It always answers 200.
func (h *HTTPHandler) SimilarArtists(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(r, "id")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}
	httpx.JSONSuccess(w, r, h.service.SimilarArtists(r.Context(), id), nil)
}

// ArtistDOB handles GET /api/saavn/artist/dob
func (h *HTTPHandler) ArtistDOB(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(r, "id")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}

	dob, err := h.service.ArtistDOB(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, dob, nil)
}

// Song handles GET /api/saavn/song
func (h *HTTPHandler) Song(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(r, "id")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}

	song, err := h.service.Song(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, song, nil)
}

// Album handles GET /api/saavn/album
func (h *HTTPHandler) Album(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(r, "id")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}

	album, err := h.service.Album(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, album, nil)
}

// Search handles GET /api/saavn/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := requiredQuery(r, "query")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("query"))
		return
	}

	songs, err := h.service.SearchSongs(r.Context(), query)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, songs, map[string]interface{}{"total": len(songs)})
}

// SpotifySearch handles GET /api/spotify/search
func (h *HTTPHandler) SpotifySearch(w http.ResponseWriter, r *http.Request) {
	query, ok := requiredQuery(r, "q")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("q"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	tracks, err := h.service.SpotifySearch(r.Context(), query, limit)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, tracks, map[string]interface{}{"total": len(tracks)})
}

// Preview handles GET /api/musicapi/preview
func (h *HTTPHandler) Preview(w http.ResponseWriter, r *http.Request) {
	track, ok := requiredQuery(r, "track")
	if !ok {
		httpx.WriteError(w, r, httpx.MissingParameter("track"))
		return
	}

	preview, err := h.service.Preview(r.Context(), track, strings.TrimSpace(r.URL.Query().Get("artist")))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, preview, nil)
}
