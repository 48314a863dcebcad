package vss

import (
	"io"
	"math/big"
)

// config carries the optional capabilities shared by both sharing schemes
type config struct {
	prime  *big.Int
	random io.Reader
	audit  AuditEventHandler
}

// Option configures a sharing scheme at construction time
type Option func(*config)

// WithPrime overrides the default field prime of plain Shamir sharing.
// Feldman VSS takes its exponent field from the commitment group and
// ignores this option.
func WithPrime(prime *big.Int) Option {
	return func(c *config) {
		c.prime = prime
	}
}

// WithRandom injects the randomness source used to draw polynomial
// coefficients. The default is crypto/rand. The source must be
// cryptographically secure; a low-entropy source silently weakens the
// scheme without producing a detectable fault.
func WithRandom(random io.Reader) Option {
	return func(c *config) {
		c.random = random
	}
}

// WithAuditHandler installs an audit event handler. The default discards
// all events.
func WithAuditHandler(handler AuditEventHandler) Option {
	return func(c *config) {
		c.audit = handler
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		audit: &NullAuditHandler{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.audit == nil {
		c.audit = &NullAuditHandler{}
	}
	return c
}
