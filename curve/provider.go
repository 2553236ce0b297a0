package curve

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Provider names accepted by ProviderByName.
const (
	ProviderBlst  = "blst"
	ProviderGnark = "gnark"
)

// ErrUnknownProvider is returned by ProviderByName for unrecognised names.
var ErrUnknownProvider = errors.New("curve: unknown provider")

// Provider performs the G1 group operations needed to build commitments.
// Implementations must be safe for concurrent use and must not mutate their
// arguments.
type Provider interface {
	// Name returns a short identifier for the backend.
	Name() string

	// Mul returns [k]p, reading exactly nbits bits of k's little-endian
	// representation. nbits <= 0 yields the identity.
	Mul(p G1, k Scalar, nbits int) G1

	// Add returns a + b.
	Add(a, b G1) G1
}

var (
	providerMu     sync.RWMutex
	activeProvider Provider = BlstProvider{}
)

// DefaultProvider returns the process-wide provider. It is blst unless
// SetProvider has been called.
func DefaultProvider() Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return activeProvider
}

// SetProvider replaces the process-wide provider. Passing nil restores the
// blst provider.
func SetProvider(p Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = BlstProvider{}
	}
	activeProvider = p
}

// ProviderByName resolves a provider name. The empty string resolves to the
// current process-wide provider.
func ProviderByName(name string) (Provider, error) {
	switch name {
	case "":
		return DefaultProvider(), nil
	case ProviderBlst:
		return BlstProvider{}, nil
	case ProviderGnark:
		return GnarkProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

// ---------------------------------------------------------------------------
// blst
// ---------------------------------------------------------------------------

// BlstProvider implements Provider with the supranational/blst library.
type BlstProvider struct{}

var _ Provider = BlstProvider{}

// Name returns the backend identifier.
func (BlstProvider) Name() string { return ProviderBlst }

// Mul multiplies p by k with an explicit exponent width.
func (BlstProvider) Mul(p G1, k Scalar, nbits int) G1 {
	if nbits <= 0 {
		return G1Identity()
	}
	return G1{p: *p.p.Mult(k.window(nbits), nbits)}
}

// Add returns a + b, handling doubling and the identity.
func (BlstProvider) Add(a, b G1) G1 {
	return G1{p: *a.p.Add(&b.p)}
}

// ---------------------------------------------------------------------------
// gnark-crypto
// ---------------------------------------------------------------------------

// GnarkProvider implements Provider with gnark-crypto's pure-Go BLS12-381
// arithmetic. Points cross the boundary in compressed form, which makes it
// considerably slower than blst; it exists to cross-check results.
type GnarkProvider struct{}

var _ Provider = GnarkProvider{}

// Name returns the backend identifier.
func (GnarkProvider) Name() string { return ProviderGnark }

// Mul multiplies p by k, keeping only the low nbits bits of k to match the
// fixed-width semantics of the blst provider.
func (GnarkProvider) Mul(p G1, k Scalar, nbits int) G1 {
	if nbits <= 0 {
		return G1Identity()
	}
	e := k.BigInt()
	if e.BitLen() > nbits {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
		mask.Sub(mask, big.NewInt(1))
		e.And(e, mask)
	}
	base := toGnarkG1(p)
	var res bls12381.G1Affine
	res.ScalarMultiplication(&base, e)
	return fromGnarkG1(&res)
}

// Add returns a + b.
func (GnarkProvider) Add(a, b G1) G1 {
	x, y := toGnarkG1(a), toGnarkG1(b)
	var res bls12381.G1Affine
	res.Add(&x, &y)
	return fromGnarkG1(&res)
}

// toGnarkG1 converts through the shared ZCash compressed encoding. G1 values
// are always valid subgroup points, so a decode failure is a library bug.
func toGnarkG1(p G1) bls12381.G1Affine {
	var aff bls12381.G1Affine
	b := p.Compress()
	if _, err := aff.SetBytes(b[:]); err != nil {
		panic(fmt.Sprintf("curve: gnark rejected blst point %x: %v", b, err))
	}
	return aff
}

func fromGnarkG1(aff *bls12381.G1Affine) G1 {
	b := aff.Bytes()
	g, err := G1FromCompressed(b[:])
	if err != nil {
		panic(fmt.Sprintf("curve: blst rejected gnark point %x: %v", b, err))
	}
	return g
}
