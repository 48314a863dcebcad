package vss

import (
	"io"
	"math/big"
)

// defaultPrime is the 521-bit Mersenne prime 2^521 - 1, the default field
// for plain Shamir sharing.
var defaultPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))

// DefaultPrime returns a copy of the default Shamir field prime
func DefaultPrime() *big.Int {
	return new(big.Int).Set(defaultPrime)
}

// ShamirSecretSharing implements Shamir's (t, n) threshold secret sharing
// over a prime field
type ShamirSecretSharing struct {
	field     *Field
	threshold int
	total     int
	random    io.Reader
	audit     AuditEventHandler
}

// NewShamirSecretSharing creates a sharing scheme that splits secrets into
// total shares, any threshold of which reconstruct the secret. The field
// defaults to the 521-bit Mersenne prime; override it with WithPrime.
func NewShamirSecretSharing(threshold, total int, opts ...Option) (*ShamirSecretSharing, error) {
	cfg := newConfig(opts)

	if err := checkThreshold(threshold, total); err != nil {
		cfg.audit.OnValidationFailure(NewAuditEventBuilder(AuditEventValidationFailure, SchemeShamir).
			WithThreshold(threshold, total).
			WithError(err).
			Build())
		return nil, err
	}

	prime := cfg.prime
	if prime == nil {
		prime = defaultPrime
	}
	field, err := NewField(prime)
	if err != nil {
		return nil, err
	}

	return &ShamirSecretSharing{
		field:     field,
		threshold: threshold,
		total:     total,
		random:    cfg.random,
		audit:     cfg.audit,
	}, nil
}

// Threshold returns the reconstruction threshold t
func (sss *ShamirSecretSharing) Threshold() int { return sss.threshold }

// TotalShares returns the number of shares produced by a split
func (sss *ShamirSecretSharing) TotalShares() int { return sss.total }

// Field returns the working field
func (sss *ShamirSecretSharing) Field() *Field { return sss.field }

// SplitSecret splits the secret into TotalShares shares by sampling a fresh
// degree-(t-1) polynomial with the secret as constant term and evaluating it
// at x = 1..n. The secret must be a canonical field element; the bound is
// checked before any randomness is consumed.
func (sss *ShamirSecretSharing) SplitSecret(secret *big.Int) ([]*Share, error) {
	if !sss.field.Contains(secret) {
		err := ErrSecretOutOfRange.WithDetails("secret must lie in [0, modulus)")
		sss.audit.OnValidationFailure(NewAuditEventBuilder(AuditEventValidationFailure, SchemeShamir).
			WithThreshold(sss.threshold, sss.total).
			WithError(err).
			Build())
		return nil, err
	}

	polynomial, err := NewRandomPolynomial(sss.field, sss.threshold-1, secret, sss.random)
	if err != nil {
		return nil, err
	}
	defer polynomial.Zeroize()

	shares := make([]*Share, sss.total)
	for i := 0; i < sss.total; i++ {
		// 1-based indexing; x=0 would evaluate to the secret itself
		x := big.NewInt(int64(i + 1))
		shares[i] = &Share{Index: x, Value: polynomial.Evaluate(x)}
	}

	sss.audit.OnSplit(NewAuditEventBuilder(AuditEventSplit, SchemeShamir).
		WithThreshold(sss.threshold, sss.total).
		WithMetadata("shares_generated", sss.total).
		Build())

	return shares, nil
}

// ReconstructSecret recovers the secret from at least Threshold shares with
// pairwise-distinct indices via Lagrange interpolation at x = 0. Any valid
// superset of threshold correct shares yields the same secret; exactly
// threshold shares are consumed after the duplicate check has covered the
// whole input.
func (sss *ShamirSecretSharing) ReconstructSecret(shares []*Share) (*big.Int, error) {
	secret, err := interpolateAtZero(sss.field, shares, sss.threshold)

	event := NewAuditEventBuilder(AuditEventReconstruction, SchemeShamir).
		WithThreshold(sss.threshold, sss.total).
		WithMetadata("shares_supplied", len(shares))
	if err != nil {
		sss.audit.OnReconstruction(event.WithError(err).Build())
		return nil, err
	}
	sss.audit.OnReconstruction(event.Build())

	return secret, nil
}

// VerifyShares cross-checks share consistency by reconstructing with two
// different subsets and comparing the results. With exactly threshold shares
// there is only one subset and nothing to compare. This is a plausibility
// check, not a cryptographic proof; Feldman commitments give the latter.
func (sss *ShamirSecretSharing) VerifyShares(shares []*Share) error {
	if len(shares) < sss.threshold {
		return ErrInsufficientShares.
			WithContext("needed", sss.threshold).
			WithContext("got", len(shares))
	}
	if len(shares) == sss.threshold {
		return nil
	}

	first, err := sss.ReconstructSecret(shares[:sss.threshold])
	if err != nil {
		return err
	}

	alternate := make([]*Share, sss.threshold)
	copy(alternate[:sss.threshold-1], shares[:sss.threshold-1])
	alternate[sss.threshold-1] = shares[sss.threshold]

	second, err := sss.ReconstructSecret(alternate)
	if err != nil {
		return err
	}

	if first.Cmp(second) != 0 {
		return ErrInconsistentShares
	}
	return nil
}

// checkThreshold enforces 1 <= threshold <= total
func checkThreshold(threshold, total int) error {
	if threshold < 1 {
		return ErrInvalidThreshold.WithContext("threshold", threshold)
	}
	if total < threshold {
		return ErrThresholdTooHigh.
			WithContext("threshold", threshold).
			WithContext("total", total)
	}
	return nil
}

// interpolateAtZero evaluates the interpolation polynomial of the shares at
// x = 0:
//
//	secret = sum_i value_i * prod_{j!=i} (0 - x_j) * (x_i - x_j)^-1  (mod m)
//
// The duplicate-index check runs over every supplied share before any field
// work so an equal pair is reported as such instead of surfacing as a zero
// interpolation denominator.
func interpolateAtZero(field *Field, shares []*Share, threshold int) (*big.Int, error) {
	if len(shares) < threshold {
		return nil, ErrInsufficientShares.
			WithContext("needed", threshold).
			WithContext("got", len(shares))
	}

	seen := make(map[string]struct{}, len(shares))
	for _, share := range shares {
		if share == nil || share.Index == nil || share.Value == nil {
			return nil, ErrMalformedShare
		}
		key := field.Normalize(share.Index).String()
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateShare.WithContext("index", key)
		}
		seen[key] = struct{}{}
	}

	selected := shares[:threshold]

	// Batch-invert the pairwise denominators, one inversion for all terms
	denominators := make([]*big.Int, threshold)
	for i, share := range selected {
		denominator := big.NewInt(1)
		for j, other := range selected {
			if i != j {
				denominator = field.Mul(denominator, field.Sub(share.Index, other.Index))
			}
		}
		denominators[i] = denominator
	}

	inverses, err := BatchInvert(field, denominators)
	if err != nil {
		return nil, err
	}

	secret := big.NewInt(0)
	for i, share := range selected {
		numerator := big.NewInt(1)
		for j, other := range selected {
			if i != j {
				// (0 - x_j) = -x_j
				numerator = field.Mul(numerator, field.Neg(other.Index))
			}
		}

		coefficient := field.Mul(numerator, inverses[i])
		secret = field.Add(secret, field.Mul(share.Value, coefficient))
	}

	return secret, nil
}
