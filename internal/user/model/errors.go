package model

import (
	"fmt"

	"github.com/deopraglabs/prysme/internal/apperr"
)

var (
	// ErrUserNotFound indicates that the requested user does not exist or was deleted.
	ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)
	// ErrUserConflict indicates that a concurrent request created the same user first.
	ErrUserConflict = fmt.Errorf("user already exists: %w", apperr.ErrConflictOnCreate)
)
