package commitment

import (
	"errors"
	"fmt"

	"github.com/eth2030/kzgcore/curve"
	"github.com/eth2030/kzgcore/log"
	"github.com/eth2030/kzgcore/metrics"
	"github.com/eth2030/kzgcore/polynomial"
	"github.com/eth2030/kzgcore/setup"
)

var (
	ErrNilPolynomial = errors.New("commitment: nil polynomial")
	ErrNilSetup      = errors.New("commitment: nil setup")
	ErrBasisTooShort = errors.New("commitment: basis shorter than polynomial")
)

// Engine computes commitments. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	cfg      Config
	provider curve.Provider // nil: curve.DefaultProvider per call
	log      *log.Logger

	commits    *metrics.Counter
	errs       *metrics.Counter
	truncated  *metrics.Counter
	commitTime *metrics.Histogram
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegistry records engine metrics into r instead of
// metrics.DefaultRegistry.
func WithRegistry(r *metrics.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.useRegistry(r)
		}
	}
}

// NewEngine validates cfg and builds an Engine.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg: cfg,
		log: log.Default().Module("commitment"),
	}
	if cfg.Provider != "" {
		p, err := curve.ProviderByName(cfg.Provider)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		e.provider = p
	}
	e.useRegistry(metrics.DefaultRegistry)
	for _, opt := range opts {
		opt(e)
	}
	e.log.Debug("commitment engine ready",
		"scalarBits", cfg.ScalarBits,
		"truncation", cfg.Truncation.String(),
		"provider", e.providerName(),
	)
	return e, nil
}

func (e *Engine) useRegistry(r *metrics.Registry) {
	e.commits = r.Counter("kzg.commitments")
	e.errs = r.Counter("kzg.commit_errors")
	e.truncated = r.Counter("kzg.truncated_coefficients")
	e.commitTime = r.Histogram("kzg.commit_ms")
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) activeProvider() curve.Provider {
	if e.provider != nil {
		return e.provider
	}
	return curve.DefaultProvider()
}

func (e *Engine) providerName() string {
	if e.provider != nil {
		return e.provider.Name()
	}
	return "default"
}

// Commit returns Σ coeff_i·basis_i over the first min(poly.Len(), s.Len())
// terms, starting from the identity. An empty polynomial commits to the
// identity. When the polynomial is longer than the basis the excess
// coefficients are dropped, or ErrBasisTooShort is returned under
// RejectShortBasis. The setup is never modified.
func (e *Engine) Commit(poly *polynomial.ScalarPolynomial, s *setup.Setup) (*Commitment, error) {
	if poly == nil {
		e.errs.Inc()
		return nil, ErrNilPolynomial
	}
	if s == nil {
		e.errs.Inc()
		return nil, ErrNilSetup
	}

	n := poly.Len()
	if n > s.Len() {
		if e.cfg.Truncation == RejectShortBasis {
			e.errs.Inc()
			return nil, fmt.Errorf("%w: %d coefficients, %d basis elements", ErrBasisTooShort, n, s.Len())
		}
		e.truncated.Add(int64(n - s.Len()))
		e.log.Debug("truncating polynomial to basis length",
			"coefficients", n,
			"basis", s.Len(),
			"setup", s.FingerprintHex(),
		)
		n = s.Len()
	}

	timer := metrics.NewTimer(e.commitTime)
	p := e.activeProvider()
	acc := curve.G1Identity()
	for i := 0; i < n; i++ {
		acc = p.Add(acc, p.Mul(s.At(i), poly.Coefficient(i), e.cfg.ScalarBits))
	}
	timer.Stop()
	e.commits.Inc()
	return &Commitment{point: acc}, nil
}

var defaultEngine = func() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
}()

// Commit commits with the default engine.
func Commit(poly *polynomial.ScalarPolynomial, s *setup.Setup) (*Commitment, error) {
	return defaultEngine.Commit(poly, s)
}
