package polynomial

import (
	"github.com/eth2030/kzgcore/curve"
	"github.com/eth2030/kzgcore/metrics"
)

// EvaluateAt computes c0 + Σ c_k · point^(2^k) for k = 1..Len()-1.
//
// The term for coefficient k is point squared k times, not point^k. Use
// EvaluateAtStandard for conventional evaluation.
func (p *FieldPolynomial) EvaluateAt(point curve.Scalar) (curve.Scalar, error) {
	if p == nil || len(p.c) == 0 {
		metrics.EvaluationErrors.Inc()
		return curve.Scalar{}, ErrEmptyPolynomial
	}
	sum := p.c[0]
	for order := 1; order < len(p.c); order++ {
		term := point
		for i := 0; i < order; i++ {
			term = term.Square()
		}
		sum = sum.Add(p.c[order].Mul(term))
	}
	metrics.Evaluations.Inc()
	return sum, nil
}

// EvaluateAt is shorthand for p.EvaluateAt(point).
func EvaluateAt(p *FieldPolynomial, point curve.Scalar) (curve.Scalar, error) {
	return p.EvaluateAt(point)
}

// EvaluateAtStandard computes Σ c_k · point^k with Horner's rule.
func (p *FieldPolynomial) EvaluateAtStandard(point curve.Scalar) (curve.Scalar, error) {
	if p == nil || len(p.c) == 0 {
		metrics.EvaluationErrors.Inc()
		return curve.Scalar{}, ErrEmptyPolynomial
	}
	acc := p.c[len(p.c)-1]
	for i := len(p.c) - 2; i >= 0; i-- {
		acc = acc.Mul(point).Add(p.c[i])
	}
	metrics.Evaluations.Inc()
	return acc, nil
}
