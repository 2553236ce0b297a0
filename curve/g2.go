package curve

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	blst "github.com/supranational/blst/bindings/go"
)

// G2CompressedSize is the size of a compressed G2 point.
const G2CompressedSize = 96

// G2 is a point of the BLS12-381 G2 group. Only the setup needs G2, to
// publish [1]G2 and [s]G2 alongside the G1 basis.
type G2 struct {
	p blst.P2
}

// G2Generator returns the standard G2 generator.
func G2Generator() G2 { return G2{p: *blst.P2Generator()} }

// Mul returns [k]g using the full Fr width.
func (g G2) Mul(k Scalar) G2 {
	return G2{p: *g.p.Mult(k.window(ModulusBits), ModulusBits)}
}

// Equal reports whether g and o are the same group element.
func (g G2) Equal(o G2) bool { return g.p.Equals(&o.p) }

// Compress returns the 96-byte compressed encoding of g.
func (g G2) Compress() [G2CompressedSize]byte {
	var out [G2CompressedSize]byte
	copy(out[:], g.p.Compress())
	return out
}

// String returns the 0x-prefixed compressed encoding.
func (g G2) String() string {
	b := g.Compress()
	return hexutil.Encode(b[:])
}
