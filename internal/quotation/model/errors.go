package model

import (
	"fmt"

	"github.com/deopraglabs/prysme/internal/apperr"
)

var (
	// ErrQuotationNotFound indicates that the requested quotation does not exist.
	ErrQuotationNotFound = fmt.Errorf("quotation %w", apperr.ErrNotFound)
	// ErrItemNotFound indicates that the item does not exist in the quotation.
	ErrItemNotFound = fmt.Errorf("quotation item %w", apperr.ErrNotFound)
	// ErrSellerNotFound indicates that the seller is not a live user.
	ErrSellerNotFound = fmt.Errorf("seller %w", apperr.ErrNotFound)
	// ErrInvalidTransition indicates a status change that would move the quotation backwards or out of a final status.
	ErrInvalidTransition = fmt.Errorf("status transition not allowed: %w", apperr.ErrInvalidState)
	// ErrQuotationClosed indicates an item change on a rejected or closed quotation.
	ErrQuotationClosed = fmt.Errorf("quotation is closed for changes: %w", apperr.ErrInvalidState)
)
