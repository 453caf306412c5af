package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.MinPasswordLen < 6 {
		return fmt.Errorf("auth.min_password_len must be at least 6 (got %d)", c.Auth.MinPasswordLen)
	}

	if c.Diary.MaxEntriesPerUser <= 0 {
		return fmt.Errorf("diary.max_entries_per_user must be > 0 (got %d)", c.Diary.MaxEntriesPerUser)
	}

	if c.Diary.UnlockSessionTTL <= 0 {
		return fmt.Errorf("diary.unlock_session_ttl must be > 0 (got %v)", c.Diary.UnlockSessionTTL)
	}

	return nil
}
