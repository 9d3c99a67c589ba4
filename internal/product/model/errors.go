package model

import (
	"fmt"

	"github.com/deopraglabs/prysme/internal/apperr"
)

var (
	// ErrProductNotFound indicates that the requested product does not exist or was deleted.
	ErrProductNotFound = fmt.Errorf("product %w", apperr.ErrNotFound)
	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("product category %w", apperr.ErrNotFound)
	// ErrCategoryConflict indicates that a category with the same name exists.
	ErrCategoryConflict = fmt.Errorf("product category already exists: %w", apperr.ErrConflictOnCreate)
)
