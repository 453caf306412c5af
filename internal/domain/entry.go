package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one dated diary record owned by a single user.
//
// Lock invariant: IsLocked == true implies PIN != nil, and
// IsLocked == false implies PIN == nil. The invariant is checked by
// Validate, enforced by the diary service, and backed by a CHECK
// constraint on the entries table.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	MoodID    *uuid.UUID
	IsLocked  bool
	PIN       *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Mood *Mood
	Tag  *Tag
}

// Validate checks the lock invariant and required fields.
func (e *Entry) Validate() error {
	var errs []FieldError

	if e.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if e.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "required"})
	}
	if e.IsLocked && e.PIN == nil {
		errs = append(errs, FieldError{Field: "pin", Message: "required when entry is locked"})
	}
	if !e.IsLocked && e.PIN != nil {
		errs = append(errs, FieldError{Field: "pin", Message: "must be empty when entry is unlocked"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// MatchesPIN compares a candidate PIN against the stored one using
// normalized string forms. An unlocked entry matches nothing.
func (e *Entry) MatchesPIN(candidate string) bool {
	if e.PIN == nil {
		return false
	}
	return NormalizePIN(*e.PIN) == NormalizePIN(candidate)
}

// Mood is a named feeling with an optional display glyph.
// Moods are global and identified by case-insensitive unique name;
// they are created lazily on first use.
type Mood struct {
	ID        uuid.UUID
	Name      string
	Emoji     *string
	CreatedAt time.Time
}

// Tag is a free-text label shared across users, identified by its
// lowercase-normalized unique name. Storage is M2M via entry_tags but
// the view model exposes only the most-recently-linked tag per entry.
type Tag struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// EntryView is the reshaped, presentation-facing form of an Entry:
// mood and tag references resolved to display strings.
type EntryView struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Emotion   string
	Glyph     string
	Tag       string
	IsLocked  bool
	PIN       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View reshapes the entry for presentation. Mood and Tag must already
// be resolved; absent ones reshape to empty strings.
func (e *Entry) View() EntryView {
	v := EntryView{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		IsLocked:  e.IsLocked,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.Mood != nil {
		v.Emotion = e.Mood.Name
		if e.Mood.Emoji != nil {
			v.Glyph = *e.Mood.Emoji
		}
	}
	if e.Tag != nil {
		v.Tag = e.Tag.Name
	}
	if e.PIN != nil {
		v.PIN = *e.PIN
	}

	return v
}
