package curve

import (
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	blst "github.com/supranational/blst/bindings/go"
)

// G1CompressedSize is the size of a compressed G1 point (ZCash format).
const G1CompressedSize = 48

// ErrInvalidPoint is returned when a G1 encoding does not decode to a point
// of the prime-order subgroup.
var ErrInvalidPoint = errors.New("curve: invalid G1 point")

// G1 is a point of the BLS12-381 G1 group in projective form. The zero
// value is the group identity (point at infinity).
type G1 struct {
	p blst.P1
}

// G1Identity returns the point at infinity.
func G1Identity() G1 { return G1{} }

// G1Generator returns the standard G1 generator.
func G1Generator() G1 { return G1{p: *blst.P1Generator()} }

// G1FromCompressed decodes a 48-byte compressed point and checks subgroup
// membership.
func G1FromCompressed(b []byte) (G1, error) {
	if len(b) != G1CompressedSize {
		return G1{}, ErrInvalidPoint
	}
	aff := new(blst.P1Affine).Uncompress(b)
	if aff == nil {
		return G1{}, ErrInvalidPoint
	}
	// Infinity flag: skip the subgroup check, the identity is trivially in G1.
	if b[0]&0x40 == 0 && !aff.InG1() {
		return G1{}, ErrInvalidPoint
	}
	var g G1
	g.p.FromAffine(aff)
	return g, nil
}

// Equal reports whether g and o are the same group element.
func (g G1) Equal(o G1) bool { return g.p.Equals(&o.p) }

// IsIdentity reports whether g is the point at infinity.
func (g G1) IsIdentity() bool {
	var inf blst.P1
	return g.p.Equals(&inf)
}

// Compress returns the 48-byte compressed encoding of g.
func (g G1) Compress() [G1CompressedSize]byte {
	var out [G1CompressedSize]byte
	copy(out[:], g.p.Compress())
	return out
}

// String returns the 0x-prefixed compressed encoding.
func (g G1) String() string {
	b := g.Compress()
	return hexutil.Encode(b[:])
}
