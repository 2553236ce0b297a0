// Package commitment turns a ScalarPolynomial and a setup basis into a KZG
// commitment: the single G1 element Σ coeff_i·basis_i.
package commitment

import (
	"fmt"

	"github.com/eth2030/kzgcore/curve"
)

// Size is the length of a serialised commitment.
const Size = curve.G1CompressedSize

// Commitment is a binding commitment to a polynomial. Two commitments are
// equal exactly when they hold the same group element.
type Commitment struct {
	point curve.G1
}

// Parse decodes a compressed commitment and checks that it is a G1 point.
func Parse(b []byte) (*Commitment, error) {
	p, err := curve.G1FromCompressed(b)
	if err != nil {
		return nil, fmt.Errorf("commitment: %w", err)
	}
	return &Commitment{point: p}, nil
}

// Point returns the underlying group element.
func (c *Commitment) Point() curve.G1 { return c.point }

// Equal reports whether c and o commit to the same element.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.point.Equal(o.point)
}

// Bytes returns the compressed encoding.
func (c *Commitment) Bytes() [Size]byte { return c.point.Compress() }

// String returns the 0x-prefixed hex of Bytes.
func (c *Commitment) String() string { return c.point.String() }
