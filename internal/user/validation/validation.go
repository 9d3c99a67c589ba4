// Package validation holds the business rules a user record must satisfy
// before it is written.
package validation

import (
	"context"
	"strings"

	"github.com/deopraglabs/prysme/internal/user/model"
)

// Violation messages, reported in this order.
const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgBirthDateRequired = "Birth date is required"
	MsgGenderRequired    = "Gender is required"
	MsgPhoneRequired     = "Phone number is required"
	MsgEmailTaken        = "Email is already associated with another account"
	MsgPhoneTaken        = "Phone number is already associated with another account"
)

// UniquenessLookup finds live users other than the candidate holding a
// unique value. Both methods return nil when there is none.
type UniquenessLookup interface {
	FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.User, error)
	FindByPhoneNumberAndIDNot(ctx context.Context, phoneNumber string, id uint) (*model.User, error)
}

// Validate returns every rule the candidate violates. An empty result
// means the candidate may be written. Lookup errors abort validation and
// are returned unchanged.
func Validate(ctx context.Context, candidate *model.User, lookup UniquenessLookup) ([]string, error) {
	violations := make([]string, 0)

	check := func(failed bool, msg string) {
		if failed {
			violations = append(violations, msg)
		}
	}

	check(isEmpty(candidate.FirstName), MsgFirstNameRequired)
	check(isEmpty(candidate.LastName), MsgLastNameRequired)
	check(isEmpty(candidate.Email), MsgEmailRequired)
	check(candidate.BirthDate == nil, MsgBirthDateRequired)
	check(candidate.Gender == "", MsgGenderRequired)
	check(isEmpty(candidate.PhoneNumber), MsgPhoneRequired)

	if !isEmpty(candidate.Email) {
		other, err := lookup.FindByEmailAndIDNot(ctx, candidate.Email, candidate.ID)
		if err != nil {
			return nil, err
		}
		check(other != nil, MsgEmailTaken)
	}

	if !isEmpty(candidate.PhoneNumber) {
		other, err := lookup.FindByPhoneNumberAndIDNot(ctx, candidate.PhoneNumber, candidate.ID)
		if err != nil {
			return nil, err
		}
		check(other != nil, MsgPhoneTaken)
	}

	return violations, nil
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
