package model

import (
	"fmt"

	"github.com/deopraglabs/prysme/internal/apperr"
)

var (
	// ErrCustomerNotFound indicates that the requested customer does not exist or was deleted.
	ErrCustomerNotFound = fmt.Errorf("customer %w", apperr.ErrNotFound)
	// ErrCustomerConflict indicates that a concurrent request created the same customer first.
	ErrCustomerConflict = fmt.Errorf("customer already exists: %w", apperr.ErrConflictOnCreate)
)
