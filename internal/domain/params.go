package domain

import "github.com/google/uuid"

// EntryUpdateParams carries a partial update for an entry.
// A nil pointer means "leave unchanged". Mood and PIN clearing are explicit
// via ClearMood/ClearPIN because a nil pointer already means "unchanged".
type EntryUpdateParams struct {
	Title     *string
	Content   *string
	MoodID    *uuid.UUID
	ClearMood bool
	IsLocked  *bool
	PIN       *string
	ClearPIN  bool
}

// IsEmpty returns true when no field would change.
func (p EntryUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.MoodID == nil && !p.ClearMood &&
		p.IsLocked == nil && p.PIN == nil && !p.ClearPIN
}
