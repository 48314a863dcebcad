package vss

import (
	"fmt"
	"math/big"
)

// Group defines the interface for the commitment group: a cyclic group of
// prime order with a fixed generator. A multiplicative subgroup of Z_p^* and
// an elliptic curve group both satisfy it; committing is exponentiation of
// the generator in the former and scalar multiplication of the base point in
// the latter.
type Group interface {
	// Metadata
	Name() string
	// Order returns the prime order of the group, the exponent domain for
	// commitments and share values.
	Order() *big.Int

	// Commit raises the fixed generator to the given scalar
	Commit(scalar *big.Int) Element
	// Identity returns the neutral element of the group
	Identity() Element
}

// Element represents a commitment group element
type Element interface {
	// Serialization
	Bytes() []byte
	String() string

	// Mul applies the group operation to two elements
	Mul(Element) Element
	// Exp raises the element to a non-negative integer power
	Exp(exponent *big.Int) Element

	// Comparison
	Equal(Element) bool
	IsIdentity() bool
}

// GroupType represents supported commitment group types
type GroupType string

const (
	GroupModP      GroupType = "modp"
	GroupSecp256k1 GroupType = "secp256k1"
	GroupEd25519   GroupType = "ed25519"
)

// NewGroup creates a curve-backed commitment group by type. Mod-p groups
// carry explicit parameters and are constructed with NewSchnorrGroup instead.
func NewGroup(groupType GroupType) (Group, error) {
	switch groupType {
	case GroupSecp256k1:
		return NewSecp256k1Group(), nil
	case GroupEd25519:
		return NewEd25519Group(), nil
	default:
		return nil, fmt.Errorf("unsupported group type: %s", groupType)
	}
}
