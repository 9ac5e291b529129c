package user

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"reliva/internal/httpx"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService accepts a nil repository; every operation that needs the profile
// store then answers not configured.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) store() (Repository, error) {
	if s.repo == nil {
		return nil, httpx.NotConfigured("Profile store", "DATABASE_DSN")
	}
	return s.repo, nil
}

func (s *Service) Follow(ctx context.Context, req FollowRequest) (FollowResult, error) {
	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action != ActionFollow && action != ActionUnfollow {
		return FollowResult{}, httpx.BadRequest("Invalid action")
	}
	if req.CurrentUserID == req.TargetUserID {
		return FollowResult{}, httpx.BadRequest("Cannot follow yourself")
	}
	repo, err := s.store()
	if err != nil {
		return FollowResult{}, err
	}

	var counts FollowCounts
	message := "Successfully followed user"
	if action == ActionFollow {
		counts, err = repo.Follow(ctx, req.CurrentUserID, req.TargetUserID)
	} else {
		message = "Successfully unfollowed user"
		counts, err = repo.Unfollow(ctx, req.CurrentUserID, req.TargetUserID)
	}

	switch {
	case err == nil:
		return FollowResult{Success: true, Message: message, FollowCounts: counts}, nil
	case errors.Is(err, ErrNotFound):
		return FollowResult{}, httpx.NotFound("User not found")
	case errors.Is(err, ErrAlreadyFollowing):
		return FollowResult{}, httpx.BadRequest("Already following this user")
	case errors.Is(err, ErrNotFollowing):
		return FollowResult{}, httpx.BadRequest("Not following this user")
	default:
		return FollowResult{}, httpx.Internal(err)
	}
}

// ValidateUsername checks length, then format, then availability, on the input
// as sent. Rule violations are reported in the result, not as errors.
func (s *Service) ValidateUsername(ctx context.Context, username string) (UsernameCheck, error) {
	if strings.TrimSpace(username) == "" {
		return UsernameCheck{}, httpx.MissingParameter("username")
	}
	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		return UsernameCheck{Message: msgUsernameLength}, nil
	}
	if !usernamePattern.MatchString(username) {
		return UsernameCheck{Message: msgUsernameFormat}, nil
	}

	repo, err := s.store()
	if err != nil {
		return UsernameCheck{}, err
	}
	taken, err := repo.UsernameTaken(ctx, username)
	if err != nil {
		return UsernameCheck{}, httpx.Internal(err)
	}
	if taken {
		return UsernameCheck{Message: msgUsernameTaken}, nil
	}
	return UsernameCheck{Available: true, Message: msgUsernameAvailable}, nil
}

// Preferences looks up a preference document by Firebase UID or legacy id. A
// Firebase user without a stored document gets empty defaults.
func (s *Service) Preferences(ctx context.Context, id string) (Preferences, error) {
	kind := IdentifyIDType(id)
	if kind == IDTypeUnknown {
		return Preferences{}, httpx.InvalidIdentifier("Invalid user ID", nil)
	}
	repo, err := s.store()
	if err != nil {
		return Preferences{}, err
	}

	var prefs Preferences
	if kind == IDTypeFirebase {
		prefs, err = repo.GetPreferences(ctx, id)
	} else {
		prefs, err = repo.GetPreferencesByLegacyID(ctx, id)
	}
	switch {
	case err == nil:
		return prefs, nil
	case errors.Is(err, ErrNotFound) && kind == IDTypeFirebase:
		return defaultPreferences(id), nil
	case errors.Is(err, ErrNotFound):
		return Preferences{}, httpx.NotFound("Preferences not found")
	default:
		return Preferences{}, httpx.Internal(err)
	}
}

// SavePreferences replaces the document of a Firebase user. Legacy ids are read-only.
func (s *Service) SavePreferences(ctx context.Context, id string, in PreferencesInput) (Preferences, error) {
	switch IdentifyIDType(id) {
	case IDTypeFirebase:
	case IDTypeMongo:
		return Preferences{}, httpx.BadRequest("Preferences can only be updated with a Firebase user ID")
	default:
		return Preferences{}, httpx.InvalidIdentifier("Invalid user ID", nil)
	}
	repo, err := s.store()
	if err != nil {
		return Preferences{}, err
	}

	prefs := defaultPreferences(id)
	if in.MediaKinds != nil {
		prefs.MediaKinds = dedupe(in.MediaKinds)
	}
	if in.Genres != nil {
		prefs.Genres = dedupe(in.Genres)
	}
	if in.Languages != nil {
		prefs.Languages = dedupe(in.Languages)
	}
	if in.Settings != nil {
		prefs.Settings = in.Settings
	}

	saved, err := repo.UpsertPreferences(ctx, prefs)
	if err != nil {
		return Preferences{}, httpx.Internal(err)
	}
	s.logger.Info().Str("user_id", id).Msg("preferences saved")
	return saved, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		out = append(out, v)
	}
	return out
}
