package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is a price proposal made by a seller to a customer.
// Matches the quotations table schema.
type Quotation struct {
	ID           uint      `gorm:"primaryKey;column:id"                                                 json:"id"`
	CustomerID   uint      `gorm:"column:customer_id;not null;index:idx_quotations_customer_id"         json:"customer_id"`
	SellerID     uint      `gorm:"column:seller_id;not null;index:idx_quotations_seller_id"             json:"seller_id"`
	DateTime     time.Time `gorm:"column:date_time;not null"                                            json:"date_time"`
	BudgetStatus Status    `gorm:"column:budget_status;type:varchar(20);not null;index:idx_quotations_budget_status" json:"budget_status"`
	Items        []Item    `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"                   json:"items"`
	CreatedAt    time.Time `gorm:"column:created_at"                                                    json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at"                                                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Quotation) TableName() string {
	return "quotations"
}

// Total returns the sum of the item totals.
func (q *Quotation) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range q.Items {
		total = total.Add(q.Items[i].Total())
	}
	return total
}

// Item is a quoted product line. UnitPrice is the price at the time the
// line was added and does not follow later product price changes.
type Item struct {
	ID          uint            `gorm:"primaryKey;column:id"                                          json:"id"`
	QuotationID uint            `gorm:"column:quotation_id;not null;index:idx_quotation_items_quotation_id" json:"quotation_id"`
	ProductID   uint            `gorm:"column:product_id;not null"                                    json:"product_id"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:numeric(15,4);not null"                   json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(15,4);not null"                 json:"unit_price"`
	CreatedAt   time.Time       `gorm:"column:created_at"                                             json:"-"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"                                             json:"-"`
}

// TableName specifies the table name for GORM.
func (Item) TableName() string {
	return "quotation_items"
}

// Total returns quantity times unit price.
func (i *Item) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
