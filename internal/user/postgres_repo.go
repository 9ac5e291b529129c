package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Follow(ctx context.Context, currentID, targetID string) (FollowCounts, error) {
	const query = `
	INSERT INTO follows (follower_id, followee_id)
	VALUES ($1, $2)
	ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	return r.mutateFollow(ctx, currentID, targetID, query, ErrAlreadyFollowing)
}

func (r *PostgresRepo) Unfollow(ctx context.Context, currentID, targetID string) (FollowCounts, error) {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	return r.mutateFollow(ctx, currentID, targetID, query, ErrNotFollowing)
}

// mutateFollow locks both profiles, runs stmt and reads back the counts in one
// transaction. noop is returned when stmt affects no row.
func (r *PostgresRepo) mutateFollow(ctx context.Context, currentID, targetID, stmt string, noop error) (FollowCounts, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(timeoutCtx, pgx.TxOptions{})
	if err != nil {
		return FollowCounts{}, fmt.Errorf("begin follow tx: %w", err)
	}
	defer func() { _ = tx.Rollback(timeoutCtx) }()

	var found int
	const lockProfiles = `
	SELECT count(*) FROM (
		SELECT id FROM user_profiles WHERE id IN ($1, $2) ORDER BY id FOR UPDATE
	) locked
	`
	if err := tx.QueryRow(timeoutCtx, lockProfiles, currentID, targetID).Scan(&found); err != nil {
		return FollowCounts{}, err
	}
	if found != 2 {
		return FollowCounts{}, ErrNotFound
	}

	tag, err := tx.Exec(timeoutCtx, stmt, currentID, targetID)
	if err != nil {
		return FollowCounts{}, err
	}
	if tag.RowsAffected() == 0 {
		return FollowCounts{}, noop
	}

	var counts FollowCounts
	const countQuery = `
	SELECT
		(SELECT count(*) FROM follows WHERE follower_id = $1),
		(SELECT count(*) FROM follows WHERE followee_id = $2)
	`
	if err := tx.QueryRow(timeoutCtx, countQuery, currentID, targetID).Scan(&counts.Following, &counts.Followers); err != nil {
		return FollowCounts{}, err
	}
	if err := tx.Commit(timeoutCtx); err != nil {
		return FollowCounts{}, fmt.Errorf("commit follow tx: %w", err)
	}
	return counts, nil
}

func (r *PostgresRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_profiles WHERE lower(username) = lower($1))`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var taken bool
	err := r.db.QueryRow(timeoutCtx, query, username).Scan(&taken)
	return taken, err
}

func (r *PostgresRepo) CreateProfile(ctx context.Context, p Profile) error {
	const query = `
	INSERT INTO user_profiles (id, username, display_name, avatar_url, bio)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(timeoutCtx, query, p.ID, p.Username, p.DisplayName, p.AvatarURL, p.Bio)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("username %q: %w", p.Username, ErrAlreadyExists)
	}
	return err
}

const preferencesColumns = `user_id, COALESCE(legacy_id, ''), media_kinds, genres, languages, settings, updated_at`

func scanPreferences(row pgx.Row) (Preferences, error) {
	var p Preferences
	var settings []byte
	err := row.Scan(&p.UserID, &p.LegacyID, &p.MediaKinds, &p.Genres, &p.Languages, &settings, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preferences{}, ErrNotFound
		}
		return Preferences{}, err
	}
	p.Settings = map[string]any{}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &p.Settings); err != nil {
			return Preferences{}, fmt.Errorf("decode settings: %w", err)
		}
	}
	return p, nil
}

func (r *PostgresRepo) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	query := `SELECT ` + preferencesColumns + ` FROM user_preferences WHERE user_id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanPreferences(r.db.QueryRow(timeoutCtx, query, userID))
}

func (r *PostgresRepo) GetPreferencesByLegacyID(ctx context.Context, legacyID string) (Preferences, error) {
	query := `SELECT ` + preferencesColumns + ` FROM user_preferences WHERE legacy_id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanPreferences(r.db.QueryRow(timeoutCtx, query, legacyID))
}

// UpsertPreferences replaces the document for p.UserID. An existing legacy_id is kept.
func (r *PostgresRepo) UpsertPreferences(ctx context.Context, p Preferences) (Preferences, error) {
	settings, err := json.Marshal(p.Settings)
	if err != nil {
		return Preferences{}, fmt.Errorf("encode settings: %w", err)
	}
	query := `
	INSERT INTO user_preferences (user_id, media_kinds, genres, languages, settings, updated_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (user_id) DO UPDATE SET
		media_kinds = EXCLUDED.media_kinds,
		genres = EXCLUDED.genres,
		languages = EXCLUDED.languages,
		settings = EXCLUDED.settings,
		updated_at = now()
	RETURNING ` + preferencesColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanPreferences(r.db.QueryRow(timeoutCtx, query, p.UserID, p.MediaKinds, p.Genres, p.Languages, settings))
}
