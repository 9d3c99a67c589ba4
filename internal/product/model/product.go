package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory groups products.
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey;column:id"                                                  json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_product_categories_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at"                                                     json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at"                                                     json:"-"`
}

// TableName specifies the table name for GORM.
func (ProductCategory) TableName() string {
	return "product_categories"
}

// Product represents a product entity in the system.
// Matches the products table schema.
type Product struct {
	ID          uint             `gorm:"primaryKey;column:id"                      json:"id"`
	Name        string           `gorm:"column:name;type:varchar(255);not null"    json:"name"`
	Description string           `gorm:"column:description;type:text;not null"     json:"description"`
	Price       decimal.Decimal  `gorm:"column:price;type:numeric(15,4);not null"  json:"price"`
	Stock       decimal.Decimal  `gorm:"column:stock;type:numeric(15,4);not null"  json:"stock"`
	CategoryID  *uint            `gorm:"column:category_id;index:idx_products_category_id" json:"category_id,omitempty"`
	Category    *ProductCategory `gorm:"foreignKey:CategoryID"                     json:"category,omitempty"`
	Active      bool             `gorm:"column:active;not null"                    json:"active"`
	Deleted     bool             `gorm:"column:deleted;not null;default:false"     json:"-"`
	CreatedAt   time.Time        `gorm:"column:created_at"                         json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at"                         json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Product) TableName() string {
	return "products"
}
