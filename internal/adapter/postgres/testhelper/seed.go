package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/norahazel/mydiary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a password auth method.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	// Placeholder bcrypt hash; repository tests never verify passwords.
	hash := "$2a$10$testtesttesttesttesttestesttesttesttesttesttesttests"
	_, err = pool.Exec(ctx,
		`INSERT INTO auth_methods (id, user_id, method, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), user.ID, string(domain.AuthMethodPassword), hash, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert auth_method: %v", err)
	}

	return user
}

// SeedMood creates a mood with a unique name and an emoji.
// Returns a filled domain.Mood.
func SeedMood(t *testing.T, pool *pgxpool.Pool) domain.Mood {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	emoji := "🙂"
	mood := domain.Mood{
		ID:        uuid.New(),
		Name:      "mood-" + suffix,
		Emoji:     &emoji,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO moods (id, name, emoji, created_at)
		 VALUES ($1, $2, $3, $4)`,
		mood.ID, mood.Name, mood.Emoji, mood.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMood insert mood: %v", err)
	}

	return mood
}

// SeedTag creates a tag with a unique name. Returns a filled domain.Tag.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:        uuid.New(),
		Name:      "tag-" + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, name, created_at)
		 VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert tag: %v", err)
	}

	return tag
}

// SeedEntry creates an unlocked diary entry for the given user, without
// a mood or a tag. Returns a filled domain.Entry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Entry " + suffix,
		Content:   "Dear diary, " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, title, content, is_locked, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	return entry
}

// SeedLockedEntry creates a locked diary entry protected by the given PIN.
func SeedLockedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, pin string) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Locked entry " + suffix,
		Content:   "Secret " + suffix,
		IsLocked:  true,
		PIN:       &pin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, title, content, is_locked, pin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, true, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.PIN, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLockedEntry insert entry: %v", err)
	}

	return entry
}

// SeedEntryWithMood creates an unlocked entry referencing a freshly seeded mood.
// Returns the entry with Mood populated.
func SeedEntryWithMood(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Entry {
	t.Helper()
	ctx := context.Background()

	mood := SeedMood(t, pool)

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Entry " + suffix,
		Content:   "Dear diary, " + suffix,
		MoodID:    &mood.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, title, content, mood_id, is_locked, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.MoodID, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntryWithMood insert entry: %v", err)
	}

	entry.Mood = &mood
	return entry
}

// LinkTag attaches a tag to an entry via the junction table.
func LinkTag(t *testing.T, pool *pgxpool.Pool, entryID, tagID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO entry_tags (entry_id, tag_id, created_at) VALUES ($1, $2, $3)`,
		entryID, tagID, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: LinkTag insert entry_tag: %v", err)
	}
}
