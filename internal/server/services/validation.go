package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

var (
	emailRx   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[A-Za-z]{2,}$`)
	nameRx    = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'\-]{1,49}$`)
	idRx      = regexp.MustCompile(`^\d{13}$`)
	accountRx = regexp.MustCompile(`^\d{10}$`)
	codeRx    = regexp.MustCompile(`^\d{6}$`)
)

const (
	minPasswordLength = 10
	maxPasswordLength = 128
)

func invalid(field string) error {
	return fmt.Errorf("%w: invalid %s", common.ErrValidation, field)
}

// ValidateEmail checks the address shape after normalization.
func ValidateEmail(email string) error {
	if !emailRx.MatchString(NormalizeEmail(email)) {
		return invalid("email")
	}
	return nil
}

func ValidateAccountNumber(n string) error {
	if !accountRx.MatchString(n) {
		return invalid("account number")
	}
	return nil
}

func ValidateCode(code string) error {
	if !codeRx.MatchString(code) {
		return invalid("code")
	}
	return nil
}

// ValidatePassword requires at least minPasswordLength characters with a
// lower-case letter, an upper-case letter, a digit and a symbol.
func ValidatePassword(p string) error {
	n := utf8.RuneCountInString(p)
	if n < minPasswordLength || n > maxPasswordLength {
		return fmt.Errorf("%w: password must be %d to %d characters", common.ErrValidation, minPasswordLength, maxPasswordLength)
	}

	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ':
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return fmt.Errorf("%w: password too weak", common.ErrValidation)
	}
	return nil
}

// ValidateProfile checks every registration field except the password.
func ValidateProfile(p models.Profile) error {
	if err := ValidateEmail(p.Email); err != nil {
		return err
	}
	if !nameRx.MatchString(strings.TrimSpace(p.FirstName)) {
		return invalid("first name")
	}
	if !nameRx.MatchString(strings.TrimSpace(p.LastName)) {
		return invalid("last name")
	}
	if !idRx.MatchString(p.IDNumber) {
		return invalid("id number")
	}
	if err := ValidateAccountNumber(p.AccountNumber); err != nil {
		return err
	}
	switch p.Role {
	case "", common.RoleCustomer, common.RoleAdmin:
	default:
		return invalid("role")
	}
	return nil
}
