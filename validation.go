package vss

import (
	"fmt"
	"math/big"
)

// SecurityLevel represents the security level of threshold parameters
type SecurityLevel string

const (
	SecurityLevelLow    SecurityLevel = "low"
	SecurityLevelMedium SecurityLevel = "medium"
	SecurityLevelHigh   SecurityLevel = "high"
)

// primalityRounds is the Miller-Rabin iteration count for parameter checks
const primalityRounds = 64

// ValidationResult contains the result of parameter validation
type ValidationResult struct {
	Valid           bool          `json:"valid"`
	SecurityLevel   SecurityLevel `json:"security_level"`
	Warnings        []string      `json:"warnings,omitempty"`
	Errors          []string      `json:"errors,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:           true,
		SecurityLevel:   SecurityLevelMedium,
		Warnings:        []string{},
		Errors:          []string{},
		Recommendations: []string{},
	}
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.SecurityLevel = SecurityLevelLow
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ThresholdValidator grades (threshold, total) parameter pairs. The sharing
// constructors enforce only the hard rules (1 <= t <= n); this validator is
// an advisory layer for callers choosing deployment parameters.
type ThresholdValidator struct {
	MinThreshold        int     `json:"min_threshold"`
	MaxThreshold        int     `json:"max_threshold"`
	RecommendedMinRatio float64 `json:"recommended_min_ratio"`
	RecommendedMaxRatio float64 `json:"recommended_max_ratio"`
}

// NewDefaultThresholdValidator creates a validator with conservative defaults
func NewDefaultThresholdValidator() *ThresholdValidator {
	return &ThresholdValidator{
		MinThreshold:        2,
		MaxThreshold:        1000,
		RecommendedMinRatio: 0.51, // Just over half
		RecommendedMaxRatio: 0.80, // Leave room for availability
	}
}

// ValidateThresholdParameters validates threshold and share-count parameters
func (tv *ThresholdValidator) ValidateThresholdParameters(threshold, total int) *ValidationResult {
	result := newValidationResult()

	if threshold < 1 {
		result.fail("threshold must be at least 1")
	}
	if total < 1 {
		result.fail("total share count must be positive")
	}
	if threshold > total {
		result.fail("threshold cannot exceed total share count")
	}
	if !result.Valid {
		return result
	}

	if threshold == 1 {
		result.Warnings = append(result.Warnings,
			"threshold 1 shares the secret identically with every participant")
		result.SecurityLevel = SecurityLevelLow
		return result
	}

	if threshold < tv.MinThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("threshold below recommended minimum of %d", tv.MinThreshold))
		result.SecurityLevel = SecurityLevelLow
	}
	if threshold > tv.MaxThreshold {
		result.fail("threshold exceeds maximum of %d", tv.MaxThreshold)
		return result
	}

	ratio := float64(threshold) / float64(total)
	switch {
	case ratio < tv.RecommendedMinRatio:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("threshold ratio %.2f is low; a minority of shareholders can reconstruct", ratio))
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("use a threshold of at least %d for this share count",
				int(float64(total)*tv.RecommendedMinRatio)+1))
	case ratio > tv.RecommendedMaxRatio:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("threshold ratio %.2f is high; losing few shares makes the secret unrecoverable", ratio))
	default:
		result.SecurityLevel = SecurityLevelHigh
	}

	return result
}

// GroupValidator checks Schnorr group parameters. The scheme constructors
// only enforce structural bounds; the number-theoretic properties checked
// here are expensive and left to setup-time validation.
type GroupValidator struct {
	MinModulusBits int `json:"min_modulus_bits"`
	MinOrderBits   int `json:"min_order_bits"`
}

// NewDefaultGroupValidator creates a validator with conservative defaults
func NewDefaultGroupValidator() *GroupValidator {
	return &GroupValidator{
		MinModulusBits: 2048,
		MinOrderBits:   224,
	}
}

// ValidateSchnorrGroup checks that p and q are (probable) primes, that q
// divides p-1, and that g generates the order-q subgroup.
func (gv *GroupValidator) ValidateSchnorrGroup(p, q, g *big.Int) *ValidationResult {
	result := newValidationResult()

	if p == nil || q == nil || g == nil {
		result.fail("p, q and g must all be set")
		return result
	}

	if !p.ProbablyPrime(primalityRounds) {
		result.fail("modulus p is not prime")
	}
	if !q.ProbablyPrime(primalityRounds) {
		result.fail("subgroup order q is not prime")
	}
	if !result.Valid {
		return result
	}

	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	if new(big.Int).Mod(pMinusOne, q).Sign() != 0 {
		result.fail("q does not divide p-1")
	}

	one := big.NewInt(1)
	if g.Cmp(one) <= 0 || g.Cmp(pMinusOne) >= 0 {
		result.fail("generator must lie in (1, p-1)")
	}
	if result.Valid && new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
		result.fail("generator does not have order q")
	}
	if !result.Valid {
		return result
	}

	if p.BitLen() < gv.MinModulusBits {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("modulus is %d bits, below the recommended %d", p.BitLen(), gv.MinModulusBits))
		result.SecurityLevel = SecurityLevelLow
	}
	if q.BitLen() < gv.MinOrderBits {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("subgroup order is %d bits, below the recommended %d", q.BitLen(), gv.MinOrderBits))
		result.SecurityLevel = SecurityLevelLow
	}
	if p.BitLen() >= gv.MinModulusBits && q.BitLen() >= gv.MinOrderBits {
		result.SecurityLevel = SecurityLevelHigh
	}

	return result
}
