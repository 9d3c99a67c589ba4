// Package model provides domain models and DTOs for customer module.
package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// SaveCustomerRequest is the body of customer create and update requests.
type SaveCustomerRequest struct {
	ID                  uint     `json:"id"`
	CpfCnpj             string   `json:"cpf_cnpj"              binding:"max=20"`
	Name                string   `json:"name"                  binding:"max=255"`
	TradeName           string   `json:"trade_name"            binding:"max=255"`
	Email               string   `json:"email"                 binding:"omitempty,max=255,email"`
	BirthFoundationDate string   `json:"birth_foundation_date" binding:"omitempty,datetime=2006-01-02"`
	StateRegistration   string   `json:"state_registration"    binding:"max=50"`
	PhoneNumbers        []string `json:"phone_numbers"         binding:"omitempty,dive,max=50"`
	Address             Address  `json:"address"`
}

// ToCustomer converts the request into a customer candidate with trimmed
// identifying fields.
func (r *SaveCustomerRequest) ToCustomer() *Customer {
	c := &Customer{
		ID:                r.ID,
		CpfCnpj:           strings.TrimSpace(r.CpfCnpj),
		Name:              strings.TrimSpace(r.Name),
		TradeName:         strings.TrimSpace(r.TradeName),
		Email:             strings.TrimSpace(r.Email),
		StateRegistration: strings.TrimSpace(r.StateRegistration),
		PhoneNumbers:      make([]string, 0, len(r.PhoneNumbers)),
		Address:           r.Address,
	}
	for _, phone := range r.PhoneNumbers {
		if phone = strings.TrimSpace(phone); phone != "" {
			c.PhoneNumbers = append(c.PhoneNumbers, phone)
		}
	}
	if r.BirthFoundationDate != "" {
		if t, err := time.Parse(DateLayout, r.BirthFoundationDate); err == nil {
			c.BirthFoundationDate = &t
		}
	}
	return c
}
