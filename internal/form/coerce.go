// internal/form/coerce.go
package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"claim-dashboard/internal/models"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseAmount reads the longest decimal prefix of s, ignoring leading
// whitespace. Text without a numeric prefix yields NaN.
func ParseAmount(s string) models.Number {
	m := floatPrefix.FindString(trimLeadingSpace(s))
	if m == "" {
		return models.Number(math.NaN())
	}
	// ParseFloat reports ErrRange together with ±Inf, which is the value we want.
	f, _ := strconv.ParseFloat(m, 64)
	return models.Number(f)
}

// ParseAge reads the longest base-10 integer prefix of s, ignoring leading
// whitespace. Text without leading digits yields NaN.
func ParseAge(s string) models.Number {
	m := intPrefix.FindString(trimLeadingSpace(s))
	if m == "" {
		return models.Number(math.NaN())
	}
	f, _ := strconv.ParseFloat(m, 64)
	return models.Number(f)
}

// BuildRequest copies the form state into a request, coercing the two
// numeric fields. Coercion failures are kept as NaN; nothing is rejected.
func BuildRequest(state models.ClaimFormState) *models.ClaimRequest {
	return &models.ClaimRequest{
		ClaimAmount:          ParseAmount(state.ClaimAmount),
		Age:                  ParseAge(state.Age),
		Gender:               state.Gender,
		LocationPolicyholder: state.LocationPolicyholder,
		LocationHospital:     state.LocationHospital,
		ProcedureCode:        state.ProcedureCode,
	}
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
