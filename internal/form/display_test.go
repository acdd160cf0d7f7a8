// internal/form/display_test.go
package form

import (
	"math"
	"testing"

	"claim-dashboard/internal/models"
)

func boolPtr(b bool) *bool { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestFormatFraudulent(t *testing.T) {
	tests := []struct {
		name string
		flag *bool
		want string
	}{
		{name: "True", flag: boolPtr(true), want: "Yes"},
		{name: "False", flag: boolPtr(false), want: "No"},
		{name: "Missing", flag: nil, want: "No"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFraudulent(tt.flag); got != tt.want {
				t.Errorf("FormatFraudulent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		name string
		p    *float64
		want string
	}{
		{name: "Typical", p: floatPtr(0.8734), want: "87.34%"},
		{name: "Zero", p: floatPtr(0), want: "0.00%"},
		{name: "One", p: floatPtr(1), want: "100.00%"},
		{name: "Rounded", p: floatPtr(0.123456), want: "12.35%"},
		{name: "Missing", p: nil, want: "NaN%"},
		{name: "NaN", p: floatPtr(math.NaN()), want: "NaN%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProbability(tt.p); got != tt.want {
				t.Errorf("FormatProbability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewLines(t *testing.T) {
	result := &models.ClaimResult{
		IsFraudulent:     boolPtr(true),
		FraudProbability: floatPtr(0.8734),
	}
	v := newView(models.DefaultClaimForm(), result, "")

	if !v.HasResult() {
		t.Fatal("HasResult() = false, want true")
	}
	if !v.Flagged() {
		t.Error("Flagged() = false, want true")
	}
	if got := v.FraudulentLine(); got != "Fraudulent Claim: Yes" {
		t.Errorf("FraudulentLine() = %q", got)
	}
	if got := v.ProbabilityLine(); got != "Fraud Probability: 87.34%" {
		t.Errorf("ProbabilityLine() = %q", got)
	}
}

func TestViewWithoutResult(t *testing.T) {
	v := newView(models.DefaultClaimForm(), nil, ErrorMessage)

	if v.HasResult() {
		t.Error("HasResult() = true, want false")
	}
	if v.Fraudulent != "" || v.Probability != "" {
		t.Errorf("formatted lines = %q/%q, want empty", v.Fraudulent, v.Probability)
	}
	if v.Error != ErrorMessage {
		t.Errorf("Error = %q, want %q", v.Error, ErrorMessage)
	}
}
