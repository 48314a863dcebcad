package vss

import (
	"math/big"
)

// SchnorrGroup is the order-q multiplicative subgroup of Z_p^* generated by
// g, with q dividing p-1. Commitments are g^scalar mod p.
type SchnorrGroup struct {
	p *big.Int // field modulus
	q *big.Int // subgroup order
	g *big.Int // generator of the order-q subgroup
}

// NewSchnorrGroup creates a mod-p commitment group from explicit parameters.
// Structural requirements are checked here; primality and generator order are
// the caller's responsibility and can be audited with ValidateSchnorrGroup.
func NewSchnorrGroup(p, q, g *big.Int) (*SchnorrGroup, error) {
	if p == nil || q == nil || g == nil {
		return nil, ErrInvalidGroupParameters.WithDetails("p, q and g must all be set")
	}
	if p.Cmp(big.NewInt(2)) < 0 || q.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidGroupParameters.WithDetails("p and q must be >= 2")
	}
	if g.Cmp(big.NewInt(2)) < 0 || g.Cmp(p) >= 0 {
		return nil, ErrInvalidGroupParameters.WithDetails("generator must lie in [2, p)")
	}

	return &SchnorrGroup{
		p: new(big.Int).Set(p),
		q: new(big.Int).Set(q),
		g: new(big.Int).Set(g),
	}, nil
}

func (sg *SchnorrGroup) Name() string { return string(GroupModP) }

func (sg *SchnorrGroup) Order() *big.Int {
	return new(big.Int).Set(sg.q)
}

// Modulus returns a copy of the field modulus p
func (sg *SchnorrGroup) Modulus() *big.Int {
	return new(big.Int).Set(sg.p)
}

// Generator returns a copy of the generator g
func (sg *SchnorrGroup) Generator() *big.Int {
	return new(big.Int).Set(sg.g)
}

func (sg *SchnorrGroup) Commit(scalar *big.Int) Element {
	value := new(big.Int).Exp(sg.g, normalizeExponent(scalar), sg.p)
	return &modElement{p: sg.p, value: value}
}

func (sg *SchnorrGroup) Identity() Element {
	return &modElement{p: sg.p, value: big.NewInt(1)}
}

// modElement is a SchnorrGroup element, an integer in [1, p)
type modElement struct {
	p     *big.Int
	value *big.Int
}

func (e *modElement) Bytes() []byte {
	return e.value.Bytes()
}

func (e *modElement) String() string {
	return e.value.String()
}

func (e *modElement) Mul(other Element) Element {
	o := other.(*modElement)
	result := new(big.Int).Mul(e.value, o.value)
	return &modElement{p: e.p, value: result.Mod(result, e.p)}
}

func (e *modElement) Exp(exponent *big.Int) Element {
	value := new(big.Int).Exp(e.value, normalizeExponent(exponent), e.p)
	return &modElement{p: e.p, value: value}
}

func (e *modElement) Equal(other Element) bool {
	o, ok := other.(*modElement)
	if !ok {
		return false
	}
	return e.p.Cmp(o.p) == 0 && e.value.Cmp(o.value) == 0
}

func (e *modElement) IsIdentity() bool {
	return e.value.Cmp(big.NewInt(1)) == 0
}

// normalizeExponent guards big.Int.Exp against nil and negative input
func normalizeExponent(exponent *big.Int) *big.Int {
	if exponent == nil || exponent.Sign() < 0 {
		return big.NewInt(0)
	}
	return exponent
}
