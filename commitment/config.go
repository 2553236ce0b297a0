package commitment

import (
	"errors"
	"fmt"

	"github.com/eth2030/kzgcore/curve"
)

// Scalar multiplication width limits accepted by Config.Validate. Widths
// below MinScalarBits would drop high bits of canonical scalars.
const (
	MinScalarBits = 255
	MaxScalarBits = 384
)

// ErrInvalidConfig is returned by Validate and NewEngine.
var ErrInvalidConfig = errors.New("commitment: invalid config")

// TruncationPolicy decides what happens when a polynomial has more
// coefficients than the setup has basis elements.
type TruncationPolicy uint8

const (
	// TruncateSilently commits to the first len(basis) coefficients and
	// ignores the rest.
	TruncateSilently TruncationPolicy = iota
	// RejectShortBasis fails with ErrBasisTooShort.
	RejectShortBasis
)

func (t TruncationPolicy) String() string {
	switch t {
	case TruncateSilently:
		return "truncate"
	case RejectShortBasis:
		return "reject"
	default:
		return fmt.Sprintf("TruncationPolicy(%d)", uint8(t))
	}
}

// Config controls an Engine.
type Config struct {
	// ScalarBits is the number of scalar bits read by each basis
	// multiplication.
	ScalarBits int

	// Truncation selects the short-basis behaviour.
	Truncation TruncationPolicy

	// Provider names the group backend ("blst" or "gnark"). Empty means
	// the process-wide curve.DefaultProvider, looked up on every commit.
	Provider string
}

// DefaultConfig returns the standard engine configuration: 381-bit scalar
// multiplication, silent truncation and the process-wide provider.
func DefaultConfig() Config {
	return Config{
		ScalarBits: curve.ModulusBits,
		Truncation: TruncateSilently,
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.ScalarBits < MinScalarBits || c.ScalarBits > MaxScalarBits {
		return fmt.Errorf("%w: scalar bits %d outside [%d, %d]", ErrInvalidConfig, c.ScalarBits, MinScalarBits, MaxScalarBits)
	}
	switch c.Truncation {
	case TruncateSilently, RejectShortBasis:
	default:
		return fmt.Errorf("%w: unknown truncation policy %d", ErrInvalidConfig, uint8(c.Truncation))
	}
	if _, err := curve.ProviderByName(c.Provider); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
