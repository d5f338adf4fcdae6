package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/shopspring/decimal"
)

// maxAmountLength bounds the cleaned input so decimal arithmetic stays cheap.
const maxAmountLength = 40

var (
	plainAmount = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	hundred     = decimal.NewFromInt(100)
	maxCents    = decimal.NewFromInt(math.MaxInt64)
)

// ParseAmount converts a major-unit amount string such as "1,250.50" into
// cents. Spaces and thousands separators are ignored and sub-cent digits
// are rounded half away from zero. Only plain decimal notation is accepted,
// so "1e100000000" is rejected before any arithmetic. Anything that does not
// come out as a positive int64 is common.ErrInvalidAmount.
func ParseAmount(s string) (int64, error) {
	clean := strings.NewReplacer(",", "", " ", "").Replace(s)
	if len(clean) > maxAmountLength || !plainAmount.MatchString(clean) {
		return 0, common.ErrInvalidAmount
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, common.ErrInvalidAmount
	}

	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(maxCents) {
		return 0, common.ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as a fixed two-decimal major-unit string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
