package user

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=user

import (
	"context"
)

type Repository interface {
	// Follow adds current -> target and returns the updated counts. It returns
	// ErrNotFound when either profile is missing and ErrAlreadyFollowing on a duplicate.
	Follow(ctx context.Context, currentID, targetID string) (FollowCounts, error)
	// Unfollow removes current -> target, or returns ErrNotFollowing.
	Unfollow(ctx context.Context, currentID, targetID string) (FollowCounts, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	CreateProfile(ctx context.Context, p Profile) error
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
	GetPreferencesByLegacyID(ctx context.Context, legacyID string) (Preferences, error)
	UpsertPreferences(ctx context.Context, p Preferences) (Preferences, error)
}
