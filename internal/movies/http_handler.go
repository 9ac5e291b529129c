package movies

import (
	"net/http"
	"strconv"
	"strings"

	"reliva/internal/httpx"
)

const proxyCacheControl = "public, max-age=300"

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Proxy handles GET|POST /api/tmdb/proxy/{path...}
// @Summary TMDB passthrough
// @Description Forwards the request to TMDB v3 with the server api_key; GET responses are cached for 5 minutes
// @Tags movies
// @Param path path string true "TMDB path, e.g. movie/550"
// @Router /api/tmdb/proxy/{path} [get]
func (h *HTTPHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	var contentType string
	if r.Method != http.MethodGet {
		contentType = r.Header.Get("Content-Type")
	}

	resp, err := h.service.Proxy(r.Context(), r.Method, r.PathValue("path"), r.URL.Query(), r.Body, contentType)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", resp.ContentType)
	if r.Method == http.MethodGet {
		w.Header().Set("Cache-Control", proxyCacheControl)
		if resp.Cached {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

// Search handles GET /api/tmdb/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	movies, err := h.service.Search(r.Context(), q.Get("type"), q.Get("query"), page)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, movies, nil)
}

// Trending handles GET /api/tmdb/trending
func (h *HTTPHandler) Trending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	movies, err := h.service.Trending(r.Context(), q.Get("type"), q.Get("window"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, movies, nil)
}

// Trailer handles GET /api/youtube/trailer
func (h *HTTPHandler) Trailer(w http.ResponseWriter, r *http.Request) {
	trailer, err := h.service.Trailer(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, trailer, nil)
}
