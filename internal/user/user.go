// Package user holds the social side of profiles: the follow graph, username
// validation, id-type identification and per-user media preferences.
package user

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrNotFound         = errors.New("user: not found")
	ErrAlreadyFollowing = errors.New("user: already following")
	ErrNotFollowing     = errors.New("user: not following")
	ErrAlreadyExists    = errors.New("user: already exists")
)

// Profile is a public user profile keyed by Firebase UID.
type Profile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

type FollowRequest struct {
	CurrentUserID string `json:"currentUserId" validate:"required"`
	TargetUserID  string `json:"targetUserId" validate:"required"`
	Action        string `json:"action" validate:"required"`
}

// FollowCounts are the current user's following count and the target's follower count
// after a follow graph mutation.
type FollowCounts struct {
	Following int `json:"following"`
	Followers int `json:"followers"`
}

type FollowResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	FollowCounts
}

type UsernameCheck struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

const (
	usernameMinLen = 3
	usernameMaxLen = 20

	msgUsernameLength    = "Username must be between 3 and 20 characters"
	msgUsernameFormat    = "Username can only contain letters, numbers, and underscores"
	msgUsernameTaken     = "Username is already taken"
	msgUsernameAvailable = "Username is available"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// IDType classifies a user identifier by shape.
type IDType string

const (
	IDTypeMongo    IDType = "mongodb"
	IDTypeFirebase IDType = "firebase"
	IDTypeUnknown  IDType = "unknown"
)

var (
	mongoIDPattern    = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	firebaseIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{28}$`)
)

// IdentifyIDType reports whether id looks like a 24-hex legacy document id or a
// 28-character Firebase UID.
func IdentifyIDType(id string) IDType {
	switch {
	case mongoIDPattern.MatchString(id):
		return IDTypeMongo
	case firebaseIDPattern.MatchString(id):
		return IDTypeFirebase
	default:
		return IDTypeUnknown
	}
}

// Preferences is the media preference document of one user. LegacyID is the
// 24-hex id of documents imported from the old store.
type Preferences struct {
	UserID     string         `json:"userId"`
	LegacyID   string         `json:"legacyId,omitempty"`
	MediaKinds []string       `json:"mediaKinds"`
	Genres     []string       `json:"genres"`
	Languages  []string       `json:"languages"`
	Settings   map[string]any `json:"settings"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type PreferencesInput struct {
	MediaKinds []string       `json:"mediaKinds" validate:"omitempty,max=4,dive,media_kind"`
	Genres     []string       `json:"genres" validate:"omitempty,max=50,dive,min=1,max=40"`
	Languages  []string       `json:"languages" validate:"omitempty,max=20,dive,min=2,max=20"`
	Settings   map[string]any `json:"settings"`
}

func defaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:     userID,
		MediaKinds: []string{},
		Genres:     []string{},
		Languages:  []string{},
		Settings:   map[string]any{},
	}
}
