package diary

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/norahazel/mydiary-backend/internal/config"
	"github.com/norahazel/mydiary-backend/internal/domain"
)

// CreateEntryInput holds parameters for creating an entry. Emotion is a
// required free-text mood name, Tag an optional label; both are resolved
// (or created) on write. Setting Lock requires PIN and ConfirmPIN to match.
type CreateEntryInput struct {
	Title      string
	Content    string
	Emotion    string
	Tag        string
	Lock       bool
	PIN        string
	ConfirmPIN string
}

// Validate validates the create input against configured limits.
func (i CreateEntryInput) Validate(cfg config.DiaryConfig) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > cfg.MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > cfg.MaxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if strings.TrimSpace(i.Emotion) == "" {
		errs = append(errs, domain.FieldError{Field: "emotion", Message: "required"})
	} else if len(i.Emotion) > 100 {
		errs = append(errs, domain.FieldError{Field: "emotion", Message: "too long"})
	}

	if len(i.Tag) > 100 {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "too long"})
	}

	errs = append(errs, validateLock(i.Lock, i.PIN, i.ConfirmPIN)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds a partial update. Nil pointers leave the field
// unchanged. An empty *Emotion or *Tag clears the mood or tag. Lock=true
// requires a valid PIN pair; Lock=false clears the stored PIN.
type UpdateEntryInput struct {
	EntryID    uuid.UUID
	Title      *string
	Content    *string
	Emotion    *string
	Tag        *string
	Lock       *bool
	PIN        string
	ConfirmPIN string
}

// Validate validates the update input.
func (i UpdateEntryInput) Validate(cfg config.DiaryConfig) error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > cfg.MaxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Content != nil {
		if strings.TrimSpace(*i.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "cannot be empty"})
		} else if len(*i.Content) > cfg.MaxContentLen {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
		}
	}

	if i.Emotion != nil && len(*i.Emotion) > 100 {
		errs = append(errs, domain.FieldError{Field: "emotion", Message: "too long"})
	}
	if i.Tag != nil && len(*i.Tag) > 100 {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "too long"})
	}

	if i.Lock != nil {
		errs = append(errs, validateLock(*i.Lock, i.PIN, i.ConfirmPIN)...)
	} else if i.PIN != "" || i.ConfirmPIN != "" {
		errs = append(errs, domain.FieldError{Field: "pin", Message: "pin given without lock"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// IsEmpty reports whether the update changes nothing.
func (i UpdateEntryInput) IsEmpty() bool {
	return i.Title == nil && i.Content == nil && i.Emotion == nil &&
		i.Tag == nil && i.Lock == nil
}

// LockEntryInput holds parameters for locking an entry with a new PIN.
type LockEntryInput struct {
	EntryID    uuid.UUID
	PIN        string
	ConfirmPIN string
}

// Validate validates the lock input.
func (i LockEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	errs = append(errs, validateLock(true, i.PIN, i.ConfirmPIN)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateLock checks the PIN pair when lock is requested and rejects
// stray PINs when it is not.
func validateLock(lock bool, pin, confirm string) []domain.FieldError {
	var errs []domain.FieldError

	if !lock {
		if pin != "" || confirm != "" {
			errs = append(errs, domain.FieldError{Field: "pin", Message: "pin given without lock"})
		}
		return errs
	}

	if err := domain.ValidateNewPIN(pin); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr.Errors...)
		} else {
			errs = append(errs, domain.FieldError{Field: "pin", Message: "invalid"})
		}
		return errs
	}
	if domain.NormalizePIN(pin) != domain.NormalizePIN(confirm) {
		errs = append(errs, domain.FieldError{Field: "confirm_pin", Message: "pins do not match"})
	}
	return errs
}
