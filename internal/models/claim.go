// internal/models/claim.go
package models

import (
	"encoding/json"
	"math"
)

type Gender string
type ProcedureCode string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"

	ProcedureP101 ProcedureCode = "P101"
	ProcedureP102 ProcedureCode = "P102"
	ProcedureP201 ProcedureCode = "P201"
	ProcedureP202 ProcedureCode = "P202"
	ProcedureP301 ProcedureCode = "P301"
	ProcedureP302 ProcedureCode = "P302"
)

// Form field names, identical to the JSON keys sent to the prediction service.
const (
	FieldClaimAmount          = "claim_amount"
	FieldAge                  = "age"
	FieldGender               = "gender"
	FieldLocationPolicyholder = "location_policyholder"
	FieldLocationHospital     = "location_hospital"
	FieldProcedureCode        = "procedure_code"
)

// FieldNames lists the form fields in display order.
var FieldNames = []string{
	FieldClaimAmount,
	FieldAge,
	FieldGender,
	FieldLocationPolicyholder,
	FieldLocationHospital,
	FieldProcedureCode,
}

var Genders = []Gender{GenderMale, GenderFemale}

var ProcedureCodes = []ProcedureCode{
	ProcedureP101,
	ProcedureP102,
	ProcedureP201,
	ProcedureP202,
	ProcedureP301,
	ProcedureP302,
}

// HighRisk reports whether the procedure is flagged as high risk in the selector.
func (p ProcedureCode) HighRisk() bool {
	return p == ProcedureP301 || p == ProcedureP302
}

// Label is the text shown for the procedure in the selector.
func (p ProcedureCode) Label() string {
	if p.HighRisk() {
		return string(p) + " (High Risk)"
	}
	return string(p)
}

// IsField reports whether name is one of the six form fields.
func IsField(name string) bool {
	for _, f := range FieldNames {
		if f == name {
			return true
		}
	}
	return false
}

// ClaimFormState is the raw, unvalidated user input. Every field is kept as
// the text the input control produced.
type ClaimFormState struct {
	ClaimAmount          string `json:"claim_amount"`
	Age                  string `json:"age"`
	Gender               string `json:"gender"`
	LocationPolicyholder string `json:"location_policyholder"`
	LocationHospital     string `json:"location_hospital"`
	ProcedureCode        string `json:"procedure_code"`
}

// DefaultClaimForm returns the state a freshly mounted form starts with.
func DefaultClaimForm() ClaimFormState {
	return ClaimFormState{
		ClaimAmount:          "",
		Age:                  "",
		Gender:               string(GenderMale),
		LocationPolicyholder: "Mumbai",
		LocationHospital:     "Mumbai",
		ProcedureCode:        string(ProcedureP101),
	}
}

// Get returns the value of the named field.
func (s ClaimFormState) Get(name string) (string, bool) {
	switch name {
	case FieldClaimAmount:
		return s.ClaimAmount, true
	case FieldAge:
		return s.Age, true
	case FieldGender:
		return s.Gender, true
	case FieldLocationPolicyholder:
		return s.LocationPolicyholder, true
	case FieldLocationHospital:
		return s.LocationHospital, true
	case FieldProcedureCode:
		return s.ProcedureCode, true
	}
	return "", false
}

// With returns a copy of s with exactly the named field replaced.
func (s ClaimFormState) With(name, value string) (ClaimFormState, bool) {
	switch name {
	case FieldClaimAmount:
		s.ClaimAmount = value
	case FieldAge:
		s.Age = value
	case FieldGender:
		s.Gender = value
	case FieldLocationPolicyholder:
		s.LocationPolicyholder = value
	case FieldLocationHospital:
		s.LocationHospital = value
	case FieldProcedureCode:
		s.ProcedureCode = value
	default:
		return s, false
	}
	return s, true
}

// Number is a coerced numeric input. NaN and the infinities have no JSON
// representation and are encoded as null, as a browser would.
type Number float64

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	if f == 0 {
		// negative zero
		return []byte("0"), nil
	}
	return json.Marshal(f)
}

// ClaimRequest is the payload posted to the prediction service.
type ClaimRequest struct {
	ClaimAmount          Number `json:"claim_amount"`
	Age                  Number `json:"age"`
	Gender               string `json:"gender"`
	LocationPolicyholder string `json:"location_policyholder"`
	LocationHospital     string `json:"location_hospital"`
	ProcedureCode        string `json:"procedure_code"`
}

// ClaimResult is the prediction service's answer, stored as received. A key
// missing from the response body stays nil.
type ClaimResult struct {
	IsFraudulent     *bool    `json:"is_fraudulent"`
	FraudProbability *float64 `json:"fraud_probability"`
}
