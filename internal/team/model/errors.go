package model

import (
	"fmt"

	"github.com/deopraglabs/prysme/internal/apperr"
)

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = fmt.Errorf("team %w", apperr.ErrNotFound)
	// ErrTeamConflict indicates that the manager already owns a team created concurrently.
	ErrTeamConflict = fmt.Errorf("team already exists for manager: %w", apperr.ErrConflictOnCreate)
)
