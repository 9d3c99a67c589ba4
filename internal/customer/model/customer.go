package model

import (
	"time"

	"gorm.io/gorm"
)

// Address is the postal address embedded in a customer row.
type Address struct {
	Street   string `gorm:"column:street;type:varchar(255);not null"  json:"street"   binding:"max=255"`
	Number   string `gorm:"column:number;type:varchar(20);not null"   json:"number"   binding:"max=20"`
	District string `gorm:"column:district;type:varchar(255);not null" json:"district" binding:"max=255"`
	City     string `gorm:"column:city;type:varchar(255);not null"    json:"city"     binding:"max=255"`
	State    string `gorm:"column:state;type:varchar(2);not null"     json:"state"    binding:"omitempty,len=2"`
	ZipCode  string `gorm:"column:zip_code;type:varchar(10);not null" json:"zip_code" binding:"max=10"`
}

// Customer represents a customer entity in the system.
// Matches the customers table schema.
type Customer struct {
	ID                  uint       `gorm:"primaryKey;column:id"                                                   json:"id"`
	CpfCnpj             string     `gorm:"column:cpf_cnpj;type:varchar(20);not null;uniqueIndex:idx_customers_cpf_cnpj" json:"cpf_cnpj"`
	Name                string     `gorm:"column:name;type:varchar(255);not null"                                 json:"name"`
	TradeName           string     `gorm:"column:trade_name;type:varchar(255);not null"                           json:"trade_name"`
	Email               string     `gorm:"column:email;type:varchar(255);not null"                                json:"email"`
	BirthFoundationDate *time.Time `gorm:"column:birth_foundation_date"                                           json:"birth_foundation_date,omitempty"`
	StateRegistration   string     `gorm:"column:state_registration;type:varchar(50);not null"                    json:"state_registration"`
	PhoneNumbers        []string   `gorm:"column:phone_numbers;type:text;serializer:json"                         json:"phone_numbers"`
	Address             Address    `gorm:"embedded;embeddedPrefix:address_"                                       json:"address"`
	Deleted             bool       `gorm:"column:deleted;not null;default:false"                                  json:"-"`
	CreatedAt           time.Time  `gorm:"column:created_at"                                                      json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"                                                      json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Customer) TableName() string {
	return "customers"
}

// BeforeSave stores an empty phone list as [] rather than null.
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	if c.PhoneNumbers == nil {
		c.PhoneNumbers = []string{}
	}
	return nil
}
