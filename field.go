package vss

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Field performs modular arithmetic over a prime modulus. All results are
// normalized into [0, modulus); negative intermediates never escape.
type Field struct {
	modulus *big.Int
}

// NewField creates a field with the given prime modulus
func NewField(modulus *big.Int) (*Field, error) {
	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidModulus.WithDetails("modulus must be an integer >= 2")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// Modulus returns a copy of the field modulus
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Contains reports whether v is a canonical field element, 0 <= v < modulus
func (f *Field) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.modulus) < 0
}

// Normalize reduces v into [0, modulus)
func (f *Field) Normalize(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.modulus)
}

// Add computes (a + b) mod modulus
func (f *Field) Add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.modulus)
}

// Sub computes (a - b) mod modulus
func (f *Field) Sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.modulus)
}

// Mul computes (a * b) mod modulus
func (f *Field) Mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.modulus)
}

// Neg computes (-a) mod modulus
func (f *Field) Neg(a *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, f.modulus)
}

// Exp computes (base ^ exponent) mod modulus for a non-negative exponent
func (f *Field) Exp(base, exponent *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, f.modulus)
}

// Inv computes the multiplicative inverse of a modulo the modulus. An
// element sharing a factor with the modulus has no inverse; for a prime
// modulus that only happens for zero, which indicates caller misuse.
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(f.Normalize(a), f.modulus)
	if inv == nil {
		return nil, ErrNonInvertibleElement.WithContext("element", a.String())
	}
	return inv, nil
}

// RandomElement draws a uniform element of [0, modulus) from random
func (f *Field) RandomElement(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	n, err := rand.Int(random, f.modulus)
	if err != nil {
		return nil, ErrRandomnessGeneration.WithCause(err)
	}
	return n, nil
}
