package vss

import (
	"encoding/hex"
	"math/big"

	"filippo.io/edwards25519"
)

// ed25519GroupOrder is the prime order l of the ed25519 base point group,
// 2^252 + 27742317777372353535851937790883648493.
var ed25519GroupOrder, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// Ed25519Group implements the Group interface over the ed25519 prime-order
// subgroup. Commit(k) is k*B for the standard base point B.
type Ed25519Group struct{}

// NewEd25519Group creates a new ed25519 commitment group
func NewEd25519Group() *Ed25519Group {
	return &Ed25519Group{}
}

func (g *Ed25519Group) Name() string { return string(GroupEd25519) }

func (g *Ed25519Group) Order() *big.Int {
	return new(big.Int).Set(ed25519GroupOrder)
}

func (g *Ed25519Group) Commit(scalar *big.Int) Element {
	s := ed25519ScalarFromBig(scalar)
	point := new(edwards25519.Point).ScalarBaseMult(s)
	return &ed25519Element{inner: point}
}

func (g *Ed25519Group) Identity() Element {
	return &ed25519Element{inner: edwards25519.NewIdentityPoint()}
}

// ed25519ScalarFromBig reduces v modulo the group order and loads it as a
// canonical little-endian scalar. Nil and negative input collapse to zero.
func ed25519ScalarFromBig(v *big.Int) *edwards25519.Scalar {
	if v == nil || v.Sign() < 0 {
		return edwards25519.NewScalar()
	}

	reduced := new(big.Int).Mod(v, ed25519GroupOrder)

	var buf [32]byte
	reduced.FillBytes(buf[:])
	// big.Int serializes big-endian, edwards25519 wants little-endian
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	scalar, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		// Unreachable: the value was reduced below the order above
		return edwards25519.NewScalar()
	}
	return scalar
}

// ed25519Element is a point in the prime-order subgroup
type ed25519Element struct {
	inner *edwards25519.Point
}

func (e *ed25519Element) Bytes() []byte {
	return e.inner.Bytes()
}

func (e *ed25519Element) String() string {
	return hex.EncodeToString(e.Bytes())
}

func (e *ed25519Element) Mul(other Element) Element {
	result := new(edwards25519.Point).Add(e.inner, other.(*ed25519Element).inner)
	return &ed25519Element{inner: result}
}

func (e *ed25519Element) Exp(exponent *big.Int) Element {
	s := ed25519ScalarFromBig(exponent)
	result := new(edwards25519.Point).ScalarMult(s, e.inner)
	return &ed25519Element{inner: result}
}

func (e *ed25519Element) Equal(other Element) bool {
	o, ok := other.(*ed25519Element)
	if !ok {
		return false
	}
	return e.inner.Equal(o.inner) == 1
}

func (e *ed25519Element) IsIdentity() bool {
	return e.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}
