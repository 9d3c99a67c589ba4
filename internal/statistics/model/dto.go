// Package model provides data transfer objects for statistics module.
package model

import "github.com/shopspring/decimal"

// SellerStatistics summarizes the quotations of one seller.
type SellerStatistics struct {
	SellerID       uint            `gorm:"column:seller_id"       json:"seller_id"`
	FirstName      string          `gorm:"column:first_name"      json:"first_name"`
	LastName       string          `gorm:"column:last_name"       json:"last_name"`
	Email          string          `gorm:"column:email"           json:"email"`
	QuotationCount int64           `gorm:"column:quotation_count" json:"quotation_count"`
	ApprovedCount  int64           `gorm:"column:approved_count"  json:"approved_count"`
	QuotedAmount   decimal.Decimal `gorm:"column:quoted_amount"   json:"quoted_amount"`
	ApprovedAmount decimal.Decimal `gorm:"column:approved_amount" json:"approved_amount"`
}

// SellersStatisticsResponse represents response for sellers statistics.
type SellersStatisticsResponse struct {
	Sellers []SellerStatistics `json:"sellers"`
	Total   int                `json:"total"`
}

// StatusCount is the number of quotations in a status.
type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

// QuotationStatistics represents statistics for quotations.
type QuotationStatistics struct {
	TotalQuotations int64            `json:"total_quotations"`
	ByStatus        map[string]int64 `json:"by_status"`
	QuotedAmount    decimal.Decimal  `json:"quoted_amount"`
}

// QuotationStatisticsResponse represents response for quotation statistics.
type QuotationStatisticsResponse struct {
	Statistics QuotationStatistics `json:"statistics"`
}
