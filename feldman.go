package vss

import (
	"io"
	"math/big"
)

// FeldmanVSS implements Feldman's verifiable secret sharing: Shamir sharing
// over the exponent field of a commitment group, plus one public commitment
// per polynomial coefficient so that any party can check any share against
// the committed polynomial without learning it.
type FeldmanVSS struct {
	group     Group
	field     *Field // exponent field of order group.Order()
	threshold int
	total     int
	random    io.Reader
	audit     AuditEventHandler
}

// NewFeldmanVSS creates a Feldman scheme over the order-q subgroup of Z_p^*
// generated by g. Shares and coefficients live mod q; commitments are
// g^coefficient mod p.
func NewFeldmanVSS(p, q, g *big.Int, threshold, total int, opts ...Option) (*FeldmanVSS, error) {
	group, err := NewSchnorrGroup(p, q, g)
	if err != nil {
		return nil, err
	}
	return NewFeldmanVSSWithGroup(group, threshold, total, opts...)
}

// NewFeldmanVSSWithGroup creates a Feldman scheme over an arbitrary
// commitment group. Over an elliptic curve group the commitment to a
// coefficient is the scalar multiple of the base point instead of a modular
// exponentiation; verification and reconstruction are unchanged.
func NewFeldmanVSSWithGroup(group Group, threshold, total int, opts ...Option) (*FeldmanVSS, error) {
	cfg := newConfig(opts)

	if group == nil {
		return nil, ErrInvalidGroupParameters.WithDetails("commitment group cannot be nil")
	}
	if err := checkThreshold(threshold, total); err != nil {
		cfg.audit.OnValidationFailure(NewAuditEventBuilder(AuditEventValidationFailure, SchemeFeldman).
			WithGroup(group.Name()).
			WithThreshold(threshold, total).
			WithError(err).
			Build())
		return nil, err
	}

	field, err := NewField(group.Order())
	if err != nil {
		return nil, err
	}

	return &FeldmanVSS{
		group:     group,
		field:     field,
		threshold: threshold,
		total:     total,
		random:    cfg.random,
		audit:     cfg.audit,
	}, nil
}

// Threshold returns the reconstruction threshold t
func (vss *FeldmanVSS) Threshold() int { return vss.threshold }

// TotalShares returns the number of shares produced by a split
func (vss *FeldmanVSS) TotalShares() int { return vss.total }

// Group returns the commitment group
func (vss *FeldmanVSS) Group() Group { return vss.group }

// SplitSecret splits the secret into TotalShares shares and commits to each
// polynomial coefficient. The secret is a discrete-log exponent and must lie
// in [0, q); share values are polynomial evaluations mod q so they stay
// consistent with the commitment exponents.
func (vss *FeldmanVSS) SplitSecret(secret *big.Int) ([]*Share, []*Commitment, error) {
	if !vss.field.Contains(secret) {
		err := ErrSecretOutOfRange.WithDetails("secret must lie in [0, group order)")
		vss.audit.OnValidationFailure(NewAuditEventBuilder(AuditEventValidationFailure, SchemeFeldman).
			WithGroup(vss.group.Name()).
			WithThreshold(vss.threshold, vss.total).
			WithError(err).
			Build())
		return nil, nil, err
	}

	polynomial, err := NewRandomPolynomial(vss.field, vss.threshold-1, secret, vss.random)
	if err != nil {
		return nil, nil, err
	}
	defer polynomial.Zeroize()

	commitments := make([]*Commitment, vss.threshold)
	for i, coefficient := range polynomial.coefficients {
		commitment, err := NewCommitment(vss.group.Commit(coefficient))
		if err != nil {
			return nil, nil, err
		}
		commitments[i] = commitment
	}

	shares := make([]*Share, vss.total)
	for i := 0; i < vss.total; i++ {
		x := big.NewInt(int64(i + 1))
		shares[i] = &Share{Index: x, Value: polynomial.Evaluate(x)}
	}

	vss.audit.OnSplit(NewAuditEventBuilder(AuditEventSplit, SchemeFeldman).
		WithGroup(vss.group.Name()).
		WithThreshold(vss.threshold, vss.total).
		WithMetadata("shares_generated", vss.total).
		Build())

	return shares, commitments, nil
}

// VerifyShare checks a share against a commitment set:
//
//	g^value  ==  prod_k commitment_k ^ (index^k)
//
// with index powers taken mod the group order. A mismatched share yields
// (false, nil) so callers can simply discard it; the only error condition is
// a commitment set whose length does not match the threshold, which is a
// structurally invalid input rather than a cryptographic mismatch.
func (vss *FeldmanVSS) VerifyShare(share *Share, commitments []*Commitment) (bool, error) {
	if len(commitments) != vss.threshold {
		return false, ErrMalformedCommitmentSet.
			WithContext("expected", vss.threshold).
			WithContext("got", len(commitments))
	}
	if share == nil || share.Index == nil || share.Value == nil {
		return false, ErrMalformedShare
	}
	for _, commitment := range commitments {
		if commitment == nil || commitment.Element() == nil {
			return false, ErrMalformedCommitmentSet.WithDetails("commitment set contains a nil entry")
		}
	}

	expected := vss.group.Identity()
	xPower := big.NewInt(1) // index^0
	for _, commitment := range commitments {
		expected = expected.Mul(commitment.Element().Exp(xPower))
		xPower = vss.field.Mul(xPower, share.Index)
	}

	actual := vss.group.Commit(share.Value)
	valid := actual.Equal(expected)

	if !valid {
		vss.audit.OnShareVerification(NewAuditEventBuilder(AuditEventShareVerification, SchemeFeldman).
			WithGroup(vss.group.Name()).
			WithThreshold(vss.threshold, vss.total).
			WithShareIndex(share.Index.String()).
			WithMetadata("valid", false).
			Build())
	}

	return valid, nil
}

// ReconstructSecret recovers the secret from at least Threshold shares with
// pairwise-distinct indices, interpolating at x = 0 mod the group order.
//
// Shares are NOT re-verified here. Callers must filter untrusted shares
// through VerifyShare first; reconstruction from tampered shares yields an
// incorrect secret without any error signal.
func (vss *FeldmanVSS) ReconstructSecret(shares []*Share) (*big.Int, error) {
	secret, err := interpolateAtZero(vss.field, shares, vss.threshold)

	event := NewAuditEventBuilder(AuditEventReconstruction, SchemeFeldman).
		WithGroup(vss.group.Name()).
		WithThreshold(vss.threshold, vss.total).
		WithMetadata("shares_supplied", len(shares))
	if err != nil {
		vss.audit.OnReconstruction(event.WithError(err).Build())
		return nil, err
	}
	vss.audit.OnReconstruction(event.Build())

	return secret, nil
}
