// Package setup produces and holds the structured reference string used to
// commit to polynomials: the G1 basis [s^0]G1, [s^1]G1, ..., [s^d]G1 and the
// G2 pair [1]G2, [s]G2, where s is a trapdoor derived from a secret.
//
// The trapdoor is never stored. A Setup is immutable once built and can be
// shared between goroutines.
package setup

import (
	"errors"
	"fmt"

	"github.com/eth2030/kzgcore/curve"
	"github.com/eth2030/kzgcore/log"
	"github.com/eth2030/kzgcore/metrics"
	"github.com/ethereum/go-ethereum/common"
	blst "github.com/supranational/blst/bindings/go"
	"golang.org/x/crypto/sha3"
)

const (
	// MinSecretLength is the minimum secret size accepted by KeyGen.
	MinSecretLength = 32

	// MaxDegreeBound caps the basis size so a bad argument cannot trigger
	// an unbounded allocation.
	MaxDegreeBound = 1 << 20
)

var (
	ErrSecretTooShort = errors.New("setup: secret must be at least 32 bytes")
	ErrDegreeTooLarge = errors.New("setup: degree bound too large")
	ErrEmptyBasis     = errors.New("setup: basis must not be empty")
	ErrKeyGenFailed   = errors.New("setup: trapdoor derivation failed")
)

// Setup is a structured reference string for polynomials of degree at most
// DegreeBound().
type Setup struct {
	inG1        []curve.G1
	inG2        [2]curve.G2
	fingerprint common.Hash
}

// Generate derives the trapdoor s from secret with the IETF BLS KeyGen
// procedure and returns a setup with degreeBound+1 G1 basis elements. The
// same secret and bound always produce the same setup.
func Generate(secret []byte, degreeBound uint32) (*Setup, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: got %d", ErrSecretTooShort, len(secret))
	}
	if degreeBound > MaxDegreeBound {
		return nil, fmt.Errorf("%w: %d > %d", ErrDegreeTooLarge, degreeBound, MaxDegreeBound)
	}

	sk := blst.KeyGen(secret)
	if sk == nil {
		return nil, ErrKeyGenFailed
	}
	trapdoor, err := curve.ScalarFromBytes(sk.Serialize())
	sk.Zeroize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGenFailed, err)
	}

	provider := curve.BlstProvider{}
	g := curve.G1Generator()
	basis := make([]curve.G1, int(degreeBound)+1)
	power := curve.ScalarFromUint64(1)
	for i := range basis {
		basis[i] = provider.Mul(g, power, curve.ModulusBits)
		power = power.Mul(trapdoor)
	}
	h := curve.G2Generator()
	s := newSetup(basis, [2]curve.G2{h, h.Mul(trapdoor)})

	metrics.SetupsGenerated.Inc()
	metrics.BasisSize.Set(int64(len(basis)))
	log.Default().Module("setup").Debug("generated setup",
		"degreeBound", degreeBound,
		"fingerprint", s.FingerprintHex(),
	)
	return s, nil
}

// New wraps a basis produced elsewhere, such as a ceremony transcript. The
// G2 pair is optional for commitment and may be left as zero values. The
// basis is copied.
func New(basis []curve.G1, inG2 [2]curve.G2) (*Setup, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	if len(basis)-1 > MaxDegreeBound {
		return nil, fmt.Errorf("%w: %d > %d", ErrDegreeTooLarge, len(basis)-1, MaxDegreeBound)
	}
	return newSetup(append([]curve.G1(nil), basis...), inG2), nil
}

func newSetup(basis []curve.G1, inG2 [2]curve.G2) *Setup {
	s := &Setup{inG1: basis, inG2: inG2}
	s.fingerprint = s.computeFingerprint()
	return s
}

// Len returns the number of G1 basis elements.
func (s *Setup) Len() int { return len(s.inG1) }

// DegreeBound returns the largest polynomial degree the basis covers.
func (s *Setup) DegreeBound() int { return len(s.inG1) - 1 }

// At returns the i-th G1 basis element, [s^i]G1. It panics if i is out of
// range, like a slice index.
func (s *Setup) At(i int) curve.G1 { return s.inG1[i] }

// Basis returns a copy of the G1 basis.
func (s *Setup) Basis() []curve.G1 {
	return append([]curve.G1(nil), s.inG1...)
}

// G2 returns [1]G2 and [s]G2.
func (s *Setup) G2() [2]curve.G2 { return s.inG2 }

// Prefix returns a setup over the first n basis elements. It is used to
// model a basis that is shorter than a polynomial.
func (s *Setup) Prefix(n int) (*Setup, error) {
	if n <= 0 {
		return nil, ErrEmptyBasis
	}
	if n > len(s.inG1) {
		n = len(s.inG1)
	}
	return New(s.inG1[:n], s.inG2)
}

// Fingerprint returns the Keccak-256 digest of the compressed basis followed
// by the compressed G2 pair. Two setups with the same fingerprint hold the
// same points.
func (s *Setup) Fingerprint() common.Hash { return s.fingerprint }

// FingerprintHex returns the 0x-prefixed fingerprint.
func (s *Setup) FingerprintHex() string { return s.fingerprint.Hex() }

func (s *Setup) computeFingerprint() common.Hash {
	h := sha3.NewLegacyKeccak256()
	for i := range s.inG1 {
		b := s.inG1[i].Compress()
		h.Write(b[:])
	}
	for i := range s.inG2 {
		b := s.inG2[i].Compress()
		h.Write(b[:])
	}
	return common.BytesToHash(h.Sum(nil))
}
