package vss

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfBlockSize is the maximum output of a single HKDF-SHA256 expansion
const hkdfBlockSize = 255 * sha256.Size

// NewDeterministicRandom returns a reader producing an unbounded
// pseudorandom byte stream derived from seed via HKDF-SHA256, rekeyed with a
// block counter as each expansion is exhausted. The context string
// domain-separates independent streams from the same seed.
//
// Injecting it with WithRandom makes splits reproducible: the same seed,
// context, secret and parameters always yield the same shares. That is a
// tool for tests and deterministic re-derivation, not a substitute for
// crypto/rand when the seed is guessable.
func NewDeterministicRandom(seed []byte, context string) io.Reader {
	return &deterministicRandom{
		seed:    append([]byte(nil), seed...),
		context: context,
	}
}

type deterministicRandom struct {
	seed    []byte
	context string
	block   uint32
	reader  io.Reader
	served  int
}

func (r *deterministicRandom) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if r.reader == nil || r.served >= hkdfBlockSize {
			r.rekey()
		}

		want := len(p) - total
		if remaining := hkdfBlockSize - r.served; want > remaining {
			want = remaining
		}

		n, err := io.ReadFull(r.reader, p[total:total+want])
		total += n
		r.served += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// rekey starts the next HKDF expansion block
func (r *deterministicRandom) rekey() {
	info := make([]byte, 0, len(r.context)+10)
	info = append(info, "block:"...)
	info = binary.BigEndian.AppendUint32(info, r.block)
	info = append(info, r.context...)

	r.reader = hkdf.New(sha256.New, r.seed, []byte("VSS_DETERMINISTIC_v1"), info)
	r.served = 0
	r.block++
}
