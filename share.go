package vss

import (
	"math/big"
)

// Share is one participant's piece of a split secret: the participant index
// (the x-coordinate the polynomial was evaluated at) and the evaluation
// value. Shares are independent and immutable once produced.
type Share struct {
	Index *big.Int // x-coordinate (participant index, 1-based)
	Value *big.Int // y-coordinate (polynomial evaluation)
}

// NewShare creates a new share
func NewShare(index, value *big.Int) *Share {
	return &Share{
		Index: new(big.Int).Set(index),
		Value: new(big.Int).Set(value),
	}
}

// Zeroize clears the share value. The index is public and left intact.
func (s *Share) Zeroize() {
	if s.Value != nil {
		zeroizeBig(s.Value)
	}
}

// Commitment is a public commitment to one polynomial coefficient, a
// fixed-generator exponentiation in the commitment group. Commitments carry
// no secrecy requirement and let any party check a share without learning
// the polynomial.
type Commitment struct {
	element Element
}

// NewCommitment creates a commitment wrapping a group element
func NewCommitment(element Element) (*Commitment, error) {
	if element == nil {
		return nil, ErrMalformedCommitmentSet.WithDetails("commitment element cannot be nil")
	}
	return &Commitment{element: element}, nil
}

// Element returns the underlying group element
func (c *Commitment) Element() Element {
	return c.element
}

// Bytes returns the serialized commitment
func (c *Commitment) Bytes() []byte {
	if c == nil || c.element == nil {
		return nil
	}
	return c.element.Bytes()
}

// Equal checks if two commitments are equal
func (c *Commitment) Equal(other *Commitment) bool {
	if c == nil || other == nil {
		return false
	}
	if c.element == nil || other.element == nil {
		return false
	}
	return c.element.Equal(other.element)
}
