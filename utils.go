package vss

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// HashToField hashes arbitrary byte material to a field element with domain
// separation, for callers that derive secrets or indices from identifiers.
// Each input is length-prefixed to keep the transcript unambiguous.
func HashToField(field *Field, data ...[]byte) (*big.Int, error) {
	hasher, err := blake2b.New512(nil)
	if err != nil {
		return nil, WrapError(err, ErrorCategoryCryptographic, ErrorSeverityHigh,
			"HASH_INIT_FAILED", "failed to initialize hash")
	}

	hasher.Write([]byte("VSS_HASH_TO_FIELD"))
	hasher.Write(field.Modulus().Bytes())

	for _, d := range data {
		lengthBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(lengthBytes, uint32(len(d)))
		hasher.Write(lengthBytes)
		hasher.Write(d)
	}

	// 64 hash bytes against a <= 521-bit modulus keeps the mod bias negligible
	digest := hasher.Sum(nil)
	return field.Normalize(new(big.Int).SetBytes(digest)), nil
}

// BatchInvert inverts multiple field elements with Montgomery's trick,
// trading n inversions for one inversion and 3(n-1) multiplications
func BatchInvert(field *Field, values []*big.Int) ([]*big.Int, error) {
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	for i, value := range values {
		if value == nil || field.Normalize(value).Sign() == 0 {
			return nil, ErrNonInvertibleElement.WithContext("index", i)
		}
	}

	if n == 1 {
		inv, err := field.Inv(values[0])
		if err != nil {
			return nil, err
		}
		return []*big.Int{inv}, nil
	}

	// Partial products p_i = v_0 * ... * v_i
	partials := make([]*big.Int, n)
	partials[0] = field.Normalize(values[0])
	for i := 1; i < n; i++ {
		partials[i] = field.Mul(partials[i-1], values[i])
	}

	allInv, err := field.Inv(partials[n-1])
	if err != nil {
		return nil, err
	}

	// Peel off one element at a time working backwards
	inverses := make([]*big.Int, n)
	inverses[n-1] = field.Mul(allInv, partials[n-2])

	for i := n - 2; i > 0; i-- {
		allInv = field.Mul(allInv, values[i+1])
		inverses[i] = field.Mul(allInv, partials[i-1])
	}

	inverses[0] = field.Mul(allInv, values[1])

	return inverses, nil
}

// ZeroizeBytes clears a byte slice
func ZeroizeBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// ZeroizeShares clears the values of a slice of shares
func ZeroizeShares(shares []*Share) {
	for _, share := range shares {
		if share != nil {
			share.Zeroize()
		}
	}
}

// zeroizeBig overwrites the limbs of v and resets it to zero
func zeroizeBig(v *big.Int) {
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
}
