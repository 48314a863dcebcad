package vss

import (
	"io"
	"math/big"
)

// Polynomial represents a polynomial over a prime field.
// coefficients[0] is the constant term.
type Polynomial struct {
	field        *Field
	coefficients []*big.Int
}

// NewRandomPolynomial creates a polynomial of the given degree with the
// given constant term and independently uniform higher coefficients drawn
// from random. Degree 0 yields the constant polynomial.
func NewRandomPolynomial(field *Field, degree int, constantTerm *big.Int, random io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return nil, ErrInvalidThreshold.WithDetails("polynomial degree must be non-negative, got %d", degree)
	}

	coefficients := make([]*big.Int, degree+1)
	coefficients[0] = new(big.Int).Set(constantTerm)

	for i := 1; i <= degree; i++ {
		coeff, err := field.RandomElement(random)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coeff
	}

	return &Polynomial{field: field, coefficients: coefficients}, nil
}

// Evaluate evaluates the polynomial at x using Horner's method,
// one field multiplication and addition per coefficient.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.field.Mul(result, x)
		result = p.field.Add(result, p.coefficients[i])
	}

	return p.field.Normalize(result)
}

// Degree returns the degree of the polynomial
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Zeroize clears the polynomial coefficients
func (p *Polynomial) Zeroize() {
	for _, coeff := range p.coefficients {
		if coeff != nil {
			zeroizeBig(coeff)
		}
	}
	for i := range p.coefficients {
		p.coefficients[i] = nil
	}
	p.coefficients = nil
}
