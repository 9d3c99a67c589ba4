package validation

import (
	"context"
	"slices"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/deopraglabs/prysme/internal/user/model"
)

// Format violation messages, reported after the required and uniqueness
// rules in this order.
const (
	MsgBirthDateInvalid = "Birth date must be a valid date in yyyy-mm-dd format"
	MsgEmailInvalid     = "Email is invalid"
	MsgGenderInvalid    = "Gender must be one of M, F, O"
	MsgRoleInvalid      = "Roles must be one of MANAGER, SELLER, ADMIN"
	MsgFirstNameTooLong = "First name must be at most 255 characters"
	MsgLastNameTooLong  = "Last name must be at most 255 characters"
	MsgEmailTooLong     = "Email must be at most 255 characters"
	MsgPhoneTooLong     = "Phone number must be at most 50 characters"
	MsgPasswordLength   = "Password must be between 6 and 72 characters"
)

const (
	maxNameLength        = 255
	maxPhoneNumberLength = 50
	minPasswordLength    = 6
	maxPasswordLength    = 72
)

var (
	validate = validator.New()

	genders = []model.Gender{model.GenderMale, model.GenderFemale, model.GenderOther}
	roles   = []string{model.RoleManager, model.RoleSeller, model.RoleAdmin}
)

// ValidateRequest runs Validate on candidate and then checks the formats of
// req, the request candidate was built from. A malformed birth date takes
// the place of the missing birth date message.
func ValidateRequest(
	ctx context.Context,
	req *model.SaveUserRequest,
	candidate *model.User,
	lookup UniquenessLookup,
) ([]string, error) {
	violations, err := Validate(ctx, candidate, lookup)
	if err != nil {
		return nil, err
	}

	if req.BirthDate != "" && candidate.BirthDate == nil {
		if i := slices.Index(violations, MsgBirthDateRequired); i >= 0 {
			violations[i] = MsgBirthDateInvalid
		}
	}

	return append(violations, formatViolations(candidate, req.Password)...), nil
}

func formatViolations(candidate *model.User, password string) []string {
	violations := make([]string, 0)
	check := func(failed bool, msg string) {
		if failed {
			violations = append(violations, msg)
		}
	}

	check(!isEmpty(candidate.Email) && validate.Var(candidate.Email, "email") != nil, MsgEmailInvalid)
	check(candidate.Gender != "" && !slices.Contains(genders, candidate.Gender), MsgGenderInvalid)
	check(slices.ContainsFunc(candidate.Roles, func(r string) bool { return !slices.Contains(roles, r) }), MsgRoleInvalid)
	check(utf8.RuneCountInString(candidate.FirstName) > maxNameLength, MsgFirstNameTooLong)
	check(utf8.RuneCountInString(candidate.LastName) > maxNameLength, MsgLastNameTooLong)
	check(utf8.RuneCountInString(candidate.Email) > maxNameLength, MsgEmailTooLong)
	check(utf8.RuneCountInString(candidate.PhoneNumber) > maxPhoneNumberLength, MsgPhoneTooLong)

	if n := utf8.RuneCountInString(password); password != "" && (n < minPasswordLength || n > maxPasswordLength) {
		violations = append(violations, MsgPasswordLength)
	}
	return violations
}
