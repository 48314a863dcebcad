package vss

import (
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Secp256k1Group implements the Group interface over the secp256k1 curve.
// The generator is the curve base point and the order is the curve order n;
// Commit(k) is k*G in additive notation.
type Secp256k1Group struct{}

// NewSecp256k1Group creates a new secp256k1 commitment group
func NewSecp256k1Group() *Secp256k1Group {
	return &Secp256k1Group{}
}

func (g *Secp256k1Group) Name() string { return string(GroupSecp256k1) }

func (g *Secp256k1Group) Order() *big.Int {
	return new(big.Int).Set(btcec.S256().N)
}

func (g *Secp256k1Group) Commit(scalar *big.Int) Element {
	s := secp256k1ScalarFromBig(scalar)
	if s.IsZero() {
		// ScalarBaseMultNonConst(0) does not produce a Z=0 Jacobian point,
		// so the zero scalar must be handled before the multiplication
		return &secp256k1Element{inner: nil}
	}

	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(s, &result)
	if result.Z.IsZero() {
		return &secp256k1Element{inner: nil}
	}

	result.ToAffine()
	return &secp256k1Element{inner: btcec.NewPublicKey(&result.X, &result.Y)}
}

func (g *Secp256k1Group) Identity() Element {
	return &secp256k1Element{inner: nil}
}

// secp256k1ScalarFromBig reduces v modulo the curve order and loads it into a
// ModNScalar. Nil and negative input collapse to zero.
func secp256k1ScalarFromBig(v *big.Int) *btcec.ModNScalar {
	scalar := new(btcec.ModNScalar)
	if v == nil || v.Sign() < 0 {
		return scalar
	}

	reduced := new(big.Int).Mod(v, btcec.S256().N)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	scalar.SetBytes(&buf)
	return scalar
}

// secp256k1Element is a curve point; nil inner means the point at infinity
type secp256k1Element struct {
	inner *btcec.PublicKey
}

func (e *secp256k1Element) Bytes() []byte {
	if e.inner == nil {
		return make([]byte, 33) // Point at infinity
	}
	return e.inner.SerializeCompressed()
}

func (e *secp256k1Element) String() string {
	return hex.EncodeToString(e.Bytes())
}

func (e *secp256k1Element) Mul(other Element) Element {
	o := other.(*secp256k1Element)
	if e.inner == nil {
		return o
	}
	if o.inner == nil {
		return e
	}

	var result, otherJac btcec.JacobianPoint
	e.inner.AsJacobian(&result)
	o.inner.AsJacobian(&otherJac)

	btcec.AddNonConst(&result, &otherJac, &result)
	if result.Z.IsZero() {
		return &secp256k1Element{inner: nil} // P + (-P)
	}

	result.ToAffine()
	return &secp256k1Element{inner: btcec.NewPublicKey(&result.X, &result.Y)}
}

func (e *secp256k1Element) Exp(exponent *big.Int) Element {
	if e.inner == nil {
		return e // Point at infinity
	}

	s := secp256k1ScalarFromBig(exponent)
	if s.IsZero() {
		return &secp256k1Element{inner: nil}
	}

	var pointJac, result btcec.JacobianPoint
	e.inner.AsJacobian(&pointJac)
	btcec.ScalarMultNonConst(s, &pointJac, &result)
	if result.Z.IsZero() {
		return &secp256k1Element{inner: nil}
	}

	result.ToAffine()
	return &secp256k1Element{inner: btcec.NewPublicKey(&result.X, &result.Y)}
}

func (e *secp256k1Element) Equal(other Element) bool {
	o, ok := other.(*secp256k1Element)
	if !ok {
		return false
	}
	if e.inner == nil && o.inner == nil {
		return true
	}
	if e.inner == nil || o.inner == nil {
		return false
	}
	return e.inner.IsEqual(o.inner)
}

func (e *secp256k1Element) IsIdentity() bool {
	return e.inner == nil
}
