// Package polynomial holds the two coefficient-form polynomial types used by
// the commitment core: ScalarPolynomial, which is committed to, and
// FieldPolynomial, which is evaluated. Both store coefficients lowest degree
// first and are only built through validating constructors, so every
// instance holds canonical field elements.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/eth2030/kzgcore/curve"
	"github.com/holiman/uint256"
)

var (
	// ErrInvalidFieldElement is returned when a coefficient is not a
	// canonical scalar field element. It is the same value as
	// curve.ErrInvalidFieldElement.
	ErrInvalidFieldElement = curve.ErrInvalidFieldElement

	// ErrEmptyPolynomial is returned when evaluating a polynomial with no
	// coefficients.
	ErrEmptyPolynomial = errors.New("polynomial: empty polynomial")
)

// coeffs is the shared coefficient storage behind both polynomial types.
type coeffs []curve.Scalar

func (c coeffs) clone() coeffs {
	return append(coeffs(nil), c...)
}

// ScalarPolynomial is a polynomial in coefficient form destined for
// commitment.
type ScalarPolynomial struct {
	c coeffs
}

// FieldPolynomial is a polynomial in coefficient form destined for
// evaluation. It is a distinct type from ScalarPolynomial so the two cannot
// be mixed up.
type FieldPolynomial struct {
	c coeffs
}

func invalidAt(i int, err error) error {
	if errors.Is(err, ErrInvalidFieldElement) {
		return fmt.Errorf("coefficient %d: %w", i, err)
	}
	return fmt.Errorf("coefficient %d: %w: %v", i, ErrInvalidFieldElement, err)
}

func fromUint64s(ints []uint64) coeffs {
	out := make(coeffs, len(ints))
	for i, v := range ints {
		out[i] = curve.ScalarFromUint64(v)
	}
	return out
}

func validate(scalars []curve.Scalar) (coeffs, error) {
	for i := range scalars {
		if !scalars[i].Valid() {
			return nil, invalidAt(i, ErrInvalidFieldElement)
		}
	}
	return coeffs(scalars).clone(), nil
}

// FromIntegers builds a ScalarPolynomial from unsigned integers. Every
// uint64 is below the field modulus, so this only fails if a conversion
// produces a non-canonical element, which would indicate a broken field
// implementation.
func FromIntegers(ints []uint64) (*ScalarPolynomial, error) {
	c, err := validate(fromUint64s(ints))
	if err != nil {
		return nil, err
	}
	return &ScalarPolynomial{c: c}, nil
}

// FromScalars builds a ScalarPolynomial from existing field elements. The
// slice is copied.
func FromScalars(scalars []curve.Scalar) (*ScalarPolynomial, error) {
	c, err := validate(scalars)
	if err != nil {
		return nil, err
	}
	return &ScalarPolynomial{c: c}, nil
}

// FromUint256 builds a ScalarPolynomial from 256-bit integers. The first
// value that is not below the field modulus is reported with its index.
func FromUint256(ints []*uint256.Int) (*ScalarPolynomial, error) {
	c := make(coeffs, len(ints))
	for i, v := range ints {
		s, err := curve.ScalarFromUint256(v)
		if err != nil {
			return nil, invalidAt(i, err)
		}
		c[i] = s
	}
	return &ScalarPolynomial{c: c}, nil
}

// FromBytes builds a ScalarPolynomial from 32-byte big-endian encodings.
func FromBytes(encoded [][]byte) (*ScalarPolynomial, error) {
	c := make(coeffs, len(encoded))
	for i, b := range encoded {
		s, err := curve.ScalarFromBytes(b)
		if err != nil {
			return nil, invalidAt(i, err)
		}
		c[i] = s
	}
	return &ScalarPolynomial{c: c}, nil
}

// Len returns the number of coefficients.
func (p *ScalarPolynomial) Len() int { return len(p.c) }

// Degree returns Len()-1. The empty polynomial has degree -1.
func (p *ScalarPolynomial) Degree() int { return len(p.c) - 1 }

// Coefficient returns the i-th coefficient, or zero past the end.
func (p *ScalarPolynomial) Coefficient(i int) curve.Scalar {
	if i < 0 || i >= len(p.c) {
		return curve.Scalar{}
	}
	return p.c[i]
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *ScalarPolynomial) Coefficients() []curve.Scalar { return p.c.clone() }

// Add returns p + o. The result has as many coefficients as the longer
// operand.
func (p *ScalarPolynomial) Add(o *ScalarPolynomial) *ScalarPolynomial {
	n := max(len(p.c), len(o.c))
	out := make(coeffs, n)
	for i := range out {
		out[i] = p.Coefficient(i).Add(o.Coefficient(i))
	}
	return &ScalarPolynomial{c: out}
}

// Scale returns k·p.
func (p *ScalarPolynomial) Scale(k curve.Scalar) *ScalarPolynomial {
	out := make(coeffs, len(p.c))
	for i := range p.c {
		out[i] = p.c[i].Mul(k)
	}
	return &ScalarPolynomial{c: out}
}

// Truncate returns the polynomial formed by the first n coefficients. n
// larger than Len() returns a copy of p.
func (p *ScalarPolynomial) Truncate(n int) *ScalarPolynomial {
	if n < 0 {
		n = 0
	}
	if n > len(p.c) {
		n = len(p.c)
	}
	return &ScalarPolynomial{c: p.c[:n].clone()}
}

// Field returns the same coefficients as a FieldPolynomial.
func (p *ScalarPolynomial) Field() *FieldPolynomial {
	return &FieldPolynomial{c: p.c.clone()}
}

// NewFieldPolynomial builds a FieldPolynomial from field elements. An empty
// slice is accepted here; evaluation rejects it.
func NewFieldPolynomial(scalars []curve.Scalar) (*FieldPolynomial, error) {
	c, err := validate(scalars)
	if err != nil {
		return nil, err
	}
	return &FieldPolynomial{c: c}, nil
}

// FieldFromIntegers builds a FieldPolynomial from unsigned integers.
func FieldFromIntegers(ints []uint64) (*FieldPolynomial, error) {
	return NewFieldPolynomial(fromUint64s(ints))
}

// Len returns the number of coefficients.
func (p *FieldPolynomial) Len() int { return len(p.c) }

// Degree returns Len()-1.
func (p *FieldPolynomial) Degree() int { return len(p.c) - 1 }

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *FieldPolynomial) Coefficients() []curve.Scalar { return p.c.clone() }
