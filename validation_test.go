package vss

import (
	"math/big"
	"testing"
)

func TestThresholdValidatorBasicRules(t *testing.T) {
	validator := NewDefaultThresholdValidator()

	invalid := []struct {
		name             string
		threshold, total int
	}{
		{"zero threshold", 0, 5},
		{"negative threshold", -2, 5},
		{"zero total", 2, 0},
		{"threshold above total", 6, 5},
	}
	for _, tc := range invalid {
		result := validator.ValidateThresholdParameters(tc.threshold, tc.total)
		if result.Valid {
			t.Errorf("%s: expected invalid result", tc.name)
		}
		if len(result.Errors) == 0 {
			t.Errorf("%s: expected error messages", tc.name)
		}
	}

	if result := validator.ValidateThresholdParameters(3, 5); !result.Valid {
		t.Errorf("3-of-5 should be valid, errors: %v", result.Errors)
	}
}

func TestThresholdValidatorSecurityGrading(t *testing.T) {
	validator := NewDefaultThresholdValidator()

	degenerate := validator.ValidateThresholdParameters(1, 5)
	if !degenerate.Valid {
		t.Fatal("1-of-5 is degenerate but not invalid")
	}
	if degenerate.SecurityLevel != SecurityLevelLow || len(degenerate.Warnings) == 0 {
		t.Error("1-of-5 should carry a low grade and a warning")
	}

	lowRatio := validator.ValidateThresholdParameters(2, 10)
	if !lowRatio.Valid || len(lowRatio.Warnings) == 0 {
		t.Error("2-of-10 should be valid with a low-ratio warning")
	}
	if len(lowRatio.Recommendations) == 0 {
		t.Error("2-of-10 should recommend a higher threshold")
	}

	balanced := validator.ValidateThresholdParameters(3, 5)
	if balanced.SecurityLevel != SecurityLevelHigh {
		t.Errorf("3-of-5 graded %s, expected high", balanced.SecurityLevel)
	}

	brittle := validator.ValidateThresholdParameters(10, 10)
	if !brittle.Valid || len(brittle.Warnings) == 0 {
		t.Error("10-of-10 should be valid with an availability warning")
	}
}

func TestGroupValidatorSoundParameters(t *testing.T) {
	validator := NewDefaultGroupValidator()

	result := validator.ValidateSchnorrGroup(big.NewInt(23), big.NewInt(11), big.NewInt(2))
	if !result.Valid {
		t.Fatalf("Sound toy group rejected: %v", result.Errors)
	}
	// Sound but far below the recommended sizes
	if result.SecurityLevel != SecurityLevelLow || len(result.Warnings) == 0 {
		t.Error("Toy group should be graded low with size warnings")
	}
}

func TestGroupValidatorRejectsUnsoundParameters(t *testing.T) {
	validator := NewDefaultGroupValidator()

	cases := []struct {
		name    string
		p, q, g int64
	}{
		{"composite p", 22, 11, 2},
		{"composite q", 23, 10, 2},
		{"q does not divide p-1", 23, 7, 2},
		{"generator of wrong order", 23, 11, 5},
		{"generator one", 23, 11, 1},
	}
	for _, tc := range cases {
		result := validator.ValidateSchnorrGroup(big.NewInt(tc.p), big.NewInt(tc.q), big.NewInt(tc.g))
		if result.Valid {
			t.Errorf("%s: expected invalid result", tc.name)
		}
	}

	if result := validator.ValidateSchnorrGroup(nil, big.NewInt(11), big.NewInt(2)); result.Valid {
		t.Error("nil p: expected invalid result")
	}
}

func TestGroupValidatorRFC5114(t *testing.T) {
	p, q, g := testRFC5114Group(t)

	result := NewDefaultGroupValidator().ValidateSchnorrGroup(p, q, g)
	if !result.Valid {
		t.Fatalf("RFC 5114 group rejected: %v", result.Errors)
	}
	// 1024-bit modulus and 160-bit order are below current recommendations
	if len(result.Warnings) == 0 {
		t.Error("Expected size warnings for the 1024-bit group")
	}
}
