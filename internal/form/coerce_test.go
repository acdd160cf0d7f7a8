// internal/form/coerce_test.go
package form

import (
	"encoding/json"
	"math"
	"testing"

	"claim-dashboard/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		nan   bool
	}{
		{name: "Decimal", input: "15000.50", want: 15000.5},
		{name: "Integer", input: "250", want: 250},
		{name: "Leading whitespace", input: "  12.5", want: 12.5},
		{name: "Trailing garbage", input: "12abc", want: 12},
		{name: "Leading dot", input: ".75", want: 0.75},
		{name: "Trailing dot", input: "3.", want: 3},
		{name: "Exponent", input: "1.5e3", want: 1500},
		{name: "Dangling exponent", input: "2e", want: 2},
		{name: "Negative", input: "-40", want: -40},
		{name: "Infinity", input: "Infinity", want: math.Inf(1)},
		{name: "Empty", input: "", nan: true},
		{name: "Letters", input: "abc", nan: true},
		{name: "Lone sign", input: "-", nan: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if tt.nan {
				if !got.IsNaN() {
					t.Errorf("ParseAmount(%q) = %v, want NaN", tt.input, got)
				}
				return
			}
			if float64(got) != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		nan   bool
	}{
		{name: "Integer", input: "34", want: 34},
		{name: "Fraction truncated", input: "34.9", want: 34},
		{name: "Leading whitespace", input: "\t42", want: 42},
		{name: "Signed", input: "+18", want: 18},
		{name: "Trailing garbage", input: "70years", want: 70},
		{name: "Leading zeros", input: "007", want: 7},
		{name: "Empty", input: "", nan: true},
		{name: "Decimal point first", input: ".5", nan: true},
		{name: "Words", input: "thirty", nan: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAge(tt.input)
			if tt.nan {
				if !got.IsNaN() {
					t.Errorf("ParseAge(%q) = %v, want NaN", tt.input, got)
				}
				return
			}
			if float64(got) != tt.want {
				t.Errorf("ParseAge(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildRequestEncoding(t *testing.T) {
	state := models.DefaultClaimForm()
	state.ClaimAmount = "15000.50"
	state.Age = "34"

	data, err := json.Marshal(BuildRequest(state))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"claim_amount":15000.5,"age":34,"gender":"Male","location_policyholder":"Mumbai","location_hospital":"Mumbai","procedure_code":"P101"}`
	if string(data) != want {
		t.Errorf("request body = %s, want %s", data, want)
	}
}

func TestBuildRequestNaNBecomesNull(t *testing.T) {
	state := models.DefaultClaimForm()
	state.ClaimAmount = "lots"
	state.Age = ""

	data, err := json.Marshal(BuildRequest(state))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{models.FieldClaimAmount, models.FieldAge} {
		v, ok := body[key]
		if !ok {
			t.Errorf("key %s missing from request body", key)
			continue
		}
		if v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
}
