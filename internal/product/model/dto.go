// Package model provides domain models and DTOs for product module.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SaveProductRequest is the body of product create and update requests.
// Price and Stock accept JSON numbers or numeric strings.
type SaveProductRequest struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"        binding:"max=255"`
	Description string           `json:"description" binding:"max=4000"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *decimal.Decimal `json:"stock"`
	CategoryID  *uint            `json:"category_id"`
	Active      *bool            `json:"active"`
}

// ToProduct converts the request into a product candidate. A missing
// stock is zero and a missing active flag means active.
func (r *SaveProductRequest) ToProduct() *Product {
	p := &Product{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		CategoryID:  r.CategoryID,
		Active:      r.Active == nil || *r.Active,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// CreateCategoryRequest is the body of a category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
