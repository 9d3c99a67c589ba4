// Package model provides domain models and DTOs for quotation module.
package model

import (
	"github.com/shopspring/decimal"
)

// ItemRequest describes a quotation line. A missing unit price takes the
// product's current price. ID is only meaningful when replacing items.
type ItemRequest struct {
	ID        uint             `json:"id"`
	ProductID uint             `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest is the body of a quotation creation.
type CreateQuotationRequest struct {
	CustomerID uint          `json:"customer_id" binding:"required"`
	SellerID   uint          `json:"seller_id"   binding:"required"`
	Items      []ItemRequest `json:"items"       binding:"omitempty,dive"`
}

// ChangeStatusRequest is the body of a status change.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReplaceItemsRequest is the full item list of a quotation.
type ReplaceItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"dive"`
}

// UpdateItemRequest changes the quantity or unit price of an item.
type UpdateItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// QuotationResponse is a quotation with its computed total.
type QuotationResponse struct {
	*Quotation
	Total decimal.Decimal `json:"total"`
}

// NewQuotationResponse wraps q with its total.
func NewQuotationResponse(q *Quotation) *QuotationResponse {
	if q.Items == nil {
		q.Items = []Item{}
	}
	return &QuotationResponse{Quotation: q, Total: q.Total()}
}
