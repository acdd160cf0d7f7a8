// internal/form/display.go
package form

import (
	"math"
	"strconv"

	"claim-dashboard/internal/models"
)

// View is the render model for the display surface.
type View struct {
	Form   models.ClaimFormState `json:"form"`
	Result *models.ClaimResult   `json:"result"`
	Error  string                `json:"error"`

	// Formatted result lines; empty when there is no result.
	Fraudulent  string `json:"fraudulent,omitempty"`
	Probability string `json:"probability,omitempty"`
}

func newView(state models.ClaimFormState, result *models.ClaimResult, errMsg string) View {
	v := View{
		Form:   state,
		Result: result,
		Error:  errMsg,
	}
	if result != nil {
		v.Fraudulent = FormatFraudulent(result.IsFraudulent)
		v.Probability = FormatProbability(result.FraudProbability)
	}
	return v
}

// HasResult reports whether the result panel should be shown.
func (v View) HasResult() bool {
	return v.Result != nil
}

// Flagged reports whether the result marks the claim as fraudulent. A missing
// flag counts as not fraudulent.
func (v View) Flagged() bool {
	return v.Result != nil && v.Result.IsFraudulent != nil && *v.Result.IsFraudulent
}

func (v View) FraudulentLine() string {
	return "Fraudulent Claim: " + v.Fraudulent
}

func (v View) ProbabilityLine() string {
	return "Fraud Probability: " + v.Probability
}

// FormatFraudulent renders the flag as Yes or No. A missing flag renders No.
func FormatFraudulent(flag *bool) string {
	if flag != nil && *flag {
		return "Yes"
	}
	return "No"
}

// FormatProbability renders p as a percentage with two decimals. A missing
// or non-numeric probability renders NaN%.
func FormatProbability(p *float64) string {
	if p == nil || math.IsNaN(*p) {
		return "NaN%"
	}
	pct := *p * 100
	switch {
	case math.IsInf(pct, 1):
		return "Infinity%"
	case math.IsInf(pct, -1):
		return "-Infinity%"
	}
	return strconv.FormatFloat(pct, 'f', 2, 64) + "%"
}
