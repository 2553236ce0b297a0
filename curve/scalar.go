// Package curve is the narrow BLS12-381 arithmetic surface used by the
// commitment and evaluation code. Scalar field arithmetic is delegated to
// gnark-crypto's fr package; G1 and G2 group arithmetic is delegated to the
// supranational/blst library, with a pure-Go gnark-crypto provider available
// for cross-checking.
//
// Nothing outside this package touches raw curve representations.
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ModulusBits is the exponent width used for G1 scalar multiplication.
// It is fixed at the BLS12-381 base field modulus length and is not derived
// from the scalar field.
const ModulusBits = 381

// ScalarBytes is the canonical big-endian encoding size of a Scalar.
const ScalarBytes = fr.Bytes

// Scalar errors.
var (
	ErrInvalidFieldElement = errors.New("curve: invalid field element")
	ErrScalarOverflow      = errors.New("curve: scalar does not fit in uint64")
)

// Scalar is an element of the BLS12-381 scalar field Fr. The zero value is
// the field element 0. Scalars are immutable values: every operation
// returns a new Scalar.
type Scalar struct {
	fe fr.Element
}

// ScalarFromUint64 converts v to its field representation. Every uint64 is
// below the modulus so the conversion cannot fail.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.fe.SetUint64(v)
	return s
}

// ScalarFromBytes decodes a 32-byte big-endian canonical encoding. Values
// greater than or equal to the modulus are rejected rather than reduced.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarBytes {
		return Scalar{}, fmt.Errorf("%w: encoding is %d bytes, want %d", ErrInvalidFieldElement, len(b), ScalarBytes)
	}
	var s Scalar
	if err := s.fe.SetBytesCanonical(b); err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrInvalidFieldElement, err)
	}
	return s, nil
}

// ScalarFromUint256 converts a 256-bit integer, rejecting values that are
// not canonical field elements.
func ScalarFromUint256(v *uint256.Int) (Scalar, error) {
	if v == nil {
		return Scalar{}, fmt.Errorf("%w: nil integer", ErrInvalidFieldElement)
	}
	b := v.Bytes32()
	return ScalarFromBytes(b[:])
}

// ScalarFromBig converts a non-negative big integer below the modulus.
func ScalarFromBig(v *big.Int) (Scalar, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return Scalar{}, ErrInvalidFieldElement
	}
	var s Scalar
	s.fe.SetBigInt(v)
	return s, nil
}

// Valid reports whether s holds a canonical field element.
func (s Scalar) Valid() bool {
	b := s.fe.Bytes()
	var check fr.Element
	return check.SetBytesCanonical(b[:]) == nil && check.Equal(&s.fe)
}

// Add returns s + o mod r.
func (s Scalar) Add(o Scalar) Scalar {
	var r Scalar
	r.fe.Add(&s.fe, &o.fe)
	return r
}

// Mul returns s * o mod r.
func (s Scalar) Mul(o Scalar) Scalar {
	var r Scalar
	r.fe.Mul(&s.fe, &o.fe)
	return r
}

// Square returns s * s mod r.
func (s Scalar) Square() Scalar {
	var r Scalar
	r.fe.Square(&s.fe)
	return r
}

// Equal reports whether s and o are the same field element.
func (s Scalar) Equal(o Scalar) bool { return s.fe.Equal(&o.fe) }

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.fe.IsZero() }

// Uint64 converts s back to an integer. It is meant for diagnostics and
// tests; values of 2^64 or more return ErrScalarOverflow.
func (s Scalar) Uint64() (uint64, error) {
	if !s.fe.IsUint64() {
		return 0, ErrScalarOverflow
	}
	return s.fe.Uint64(), nil
}

// BigInt returns the canonical integer value of s.
func (s Scalar) BigInt() *big.Int {
	return s.fe.BigInt(new(big.Int))
}

// Bytes returns the 32-byte big-endian canonical encoding.
func (s Scalar) Bytes() [ScalarBytes]byte { return s.fe.Bytes() }

// Hex returns the 0x-prefixed big-endian encoding.
func (s Scalar) Hex() string {
	b := s.fe.Bytes()
	return hexutil.Encode(b[:])
}

// String returns the canonical decimal value of s.
func (s Scalar) String() string { return s.BigInt().String() }

// window lays s out little-endian in a zero-padded buffer wide enough for
// an nbits-wide multiplication, so the multiplier never reads past the
// value. The buffer is at least ScalarBytes long.
func (s Scalar) window(nbits int) []byte {
	size := (nbits + 7) / 8
	if size < ScalarBytes {
		size = ScalarBytes
	}
	var le [ScalarBytes]byte
	fr.LittleEndian.PutElement(&le, s.fe)
	buf := make([]byte, size)
	copy(buf, le[:])
	return buf
}
