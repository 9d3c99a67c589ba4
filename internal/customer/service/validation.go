package service

import (
	"context"
	"strings"

	"github.com/deopraglabs/prysme/internal/customer/model"
	"github.com/deopraglabs/prysme/internal/customer/repository"
)

// Violation messages, reported in this order.
const (
	MsgNameRequired    = "Name is required"
	MsgCpfCnpjRequired = "CPF/CNPJ is required"
	MsgCpfCnpjTaken    = "CPF/CNPJ is already associated with another customer"
	MsgEmailTaken      = "Email is already associated with another customer"
)

func validate(ctx context.Context, candidate *model.Customer, repo repository.Repository) ([]string, error) {
	violations := make([]string, 0)

	if strings.TrimSpace(candidate.Name) == "" {
		violations = append(violations, MsgNameRequired)
	}
	if strings.TrimSpace(candidate.CpfCnpj) == "" {
		violations = append(violations, MsgCpfCnpjRequired)
	} else {
		other, err := repo.FindByCpfCnpjAndIDNot(ctx, candidate.CpfCnpj, candidate.ID)
		if err != nil {
			return nil, err
		}
		if other != nil {
			violations = append(violations, MsgCpfCnpjTaken)
		}
	}

	// email is optional for customers
	if strings.TrimSpace(candidate.Email) != "" {
		other, err := repo.FindByEmailAndIDNot(ctx, candidate.Email, candidate.ID)
		if err != nil {
			return nil, err
		}
		if other != nil {
			violations = append(violations, MsgEmailTaken)
		}
	}

	return violations, nil
}
