package commitment

import (
	"errors"
	"testing"

	"github.com/eth2030/kzgcore/curve"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScalarBits != curve.ModulusBits {
		t.Fatalf("ScalarBits = %d, want %d", cfg.ScalarBits, curve.ModulusBits)
	}
	if cfg.Truncation != TruncateSilently {
		t.Fatalf("Truncation = %s, want truncate", cfg.Truncation)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"255 bits", func(c *Config) { c.ScalarBits = 255 }, false},
		{"384 bits", func(c *Config) { c.ScalarBits = 384 }, false},
		{"254 bits", func(c *Config) { c.ScalarBits = 254 }, true},
		{"385 bits", func(c *Config) { c.ScalarBits = 385 }, true},
		{"zero bits", func(c *Config) { c.ScalarBits = 0 }, true},
		{"reject policy", func(c *Config) { c.Truncation = RejectShortBasis }, false},
		{"unknown policy", func(c *Config) { c.Truncation = 9 }, true},
		{"blst", func(c *Config) { c.Provider = curve.ProviderBlst }, false},
		{"gnark", func(c *Config) { c.Provider = curve.ProviderGnark }, false},
		{"unknown provider", func(c *Config) { c.Provider = "mcl" }, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", tt.name, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScalarBits = 64
	if _, err := NewEngine(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestTruncationPolicyString(t *testing.T) {
	if TruncateSilently.String() != "truncate" || RejectShortBasis.String() != "reject" {
		t.Fatal("policy names")
	}
	if TruncationPolicy(7).String() != "TruncationPolicy(7)" {
		t.Fatalf("unknown policy = %s", TruncationPolicy(7))
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Truncation = RejectShortBasis
	e := newTestEngine(t, cfg)
	if e.Config() != cfg {
		t.Fatalf("Config() = %+v, want %+v", e.Config(), cfg)
	}
}
