package user

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"reliva/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return httpx.BadRequest("Invalid request body")
	}
	return nil
}

// Follow handles POST /api/users/follow
// @Summary Follow or unfollow a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body FollowRequest true "Follow request"
// @Success 200 {object} FollowResult
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/users/follow [post]
func (h *HTTPHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req FollowRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	req.CurrentUserID = strings.TrimSpace(req.CurrentUserID)
	req.TargetUserID = strings.TrimSpace(req.TargetUserID)

	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONValidationError(w, r, errs)
		return
	}

	result, err := h.service.Follow(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

type usernameReq struct {
	Username string `json:"username"`
}

// ValidateUsername handles POST /api/validate-username
// @Summary Check username availability
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} UsernameCheck
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/validate-username [post]
func (h *HTTPHandler) ValidateUsername(w http.ResponseWriter, r *http.Request) {
	var req usernameReq
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	check, err := h.service.ValidateUsername(r.Context(), req.Username)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, check)
}

// GetPreferences handles GET /api/users/{id}/preferences
func (h *HTTPHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.Preferences(r.Context(), strings.TrimSpace(r.PathValue("id")))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, prefs, nil)
}

// PutPreferences handles PUT /api/users/{id}/preferences
func (h *HTTPHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var in PreferencesInput
	if err := decodeBody(r, &in); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if errs := httpx.ValidateStruct(in); len(errs) > 0 {
		httpx.JSONValidationError(w, r, errs)
		return
	}

	prefs, err := h.service.SavePreferences(r.Context(), strings.TrimSpace(r.PathValue("id")), in)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, prefs, nil)
}
