package books

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

// Get handles GET /api/books/{id}
// @Summary Get a book volume
// @Description Direct Google Books lookup, falling back to a decoded synthetic id
// @Tags books
// @Produce json
// @Param id path string true "Volume id or URL-encoded JSON {title, author, ...}"
// @Success 200 {object} media.Volume
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.WriteError(w, r, httpx.MissingParameter("id"))
		return
	}

	volume, err := h.service.Book(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, volume)
}

// Search handles GET /api/google-books
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	maxResults, _ := strconv.Atoi(query.Get("maxResults"))

	result, err := h.service.Search(r.Context(), SearchQuery{
		Q:          query.Get("q"),
		ISBN:       query.Get("isbn"),
		Title:      query.Get("title"),
		Author:     query.Get("author"),
		MaxResults: maxResults,
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// BestSellers handles GET /api/nytimes/books
func (h *HTTPHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.BestSellers(r.Context(), strings.TrimSpace(r.URL.Query().Get("published_date")))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lists)
}
