package setup

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/eth2030/kzgcore/curve"
	"github.com/eth2030/kzgcore/metrics"
)

// testTrapdoorG1Hex is [s]G1 for the trapdoor KeyGen derives from 48 zero
// bytes.
const testTrapdoorG1Hex = "88b918b573cfae82647bb6e138528674031b2dd1bee1a602901c2161466e7e8a503683671540c23c4cd27e0084caaa1c"

func compressedHex(g curve.G1) string {
	b := g.Compress()
	return hex.EncodeToString(b[:])
}

func mustGenerate(t *testing.T, bound uint32) *Setup {
	t.Helper()
	s, err := Generate(make([]byte, 48), bound)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return s
}

func TestGenerate(t *testing.T) {
	before := metrics.SetupsGenerated.Value()
	s := mustGenerate(t, 7)

	if s.Len() != 8 || s.DegreeBound() != 7 {
		t.Fatalf("Len = %d, DegreeBound = %d, want 8, 7", s.Len(), s.DegreeBound())
	}
	if !s.At(0).Equal(curve.G1Generator()) {
		t.Fatalf("basis[0] = %s, want the generator", s.At(0))
	}
	if got := compressedHex(s.At(1)); got != testTrapdoorG1Hex {
		t.Fatalf("basis[1] = %s, want %s", got, testTrapdoorG1Hex)
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).IsIdentity() {
			t.Fatalf("basis[%d] is the identity", i)
		}
	}
	g2 := s.G2()
	if !g2[0].Equal(curve.G2Generator()) {
		t.Fatal("G2[0] is not the generator")
	}
	if g2[1].Equal(g2[0]) {
		t.Fatal("G2[1] equals the generator")
	}
	if metrics.SetupsGenerated.Value() != before+1 {
		t.Fatal("setups_generated not incremented")
	}
	if metrics.BasisSize.Value() != 8 {
		t.Fatalf("basis_size = %d, want 8", metrics.BasisSize.Value())
	}
}

func TestGenerateBasisIsPowers(t *testing.T) {
	s := mustGenerate(t, 3)
	trapdoorG1, err := curve.G1FromCompressed(mustHex(t, testTrapdoorG1Hex))
	if err != nil {
		t.Fatal(err)
	}
	if !s.At(1).Equal(trapdoorG1) {
		t.Fatal("basis[1] mismatch")
	}
	// A longer setup from the same secret extends the shorter one.
	long := mustGenerate(t, 6)
	for i := 0; i < s.Len(); i++ {
		if !long.At(i).Equal(s.At(i)) {
			t.Fatalf("basis[%d] differs between bounds 3 and 6", i)
		}
	}
}

func TestGenerateZeroBound(t *testing.T) {
	s := mustGenerate(t, 0)
	if s.Len() != 1 || !s.At(0).Equal(curve.G1Generator()) {
		t.Fatal("degree bound 0 should give the single generator")
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(make([]byte, 31), 4); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("short secret: err = %v, want ErrSecretTooShort", err)
	}
	if _, err := Generate(nil, 4); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("nil secret: err = %v, want ErrSecretTooShort", err)
	}
	if _, err := Generate(make([]byte, 32), MaxDegreeBound+1); !errors.Is(err, ErrDegreeTooLarge) {
		t.Fatalf("large bound: err = %v, want ErrDegreeTooLarge", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := mustGenerate(t, 5), mustGenerate(t, 5)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same secret produced different setups")
	}
	secret := make([]byte, 48)
	secret[0] = 1
	c, err := Generate(secret, 5)
	if err != nil {
		t.Fatal(err)
	}
	if c.Fingerprint() == a.Fingerprint() {
		t.Fatal("different secrets produced the same setup")
	}
	if len(a.FingerprintHex()) != 66 {
		t.Fatalf("fingerprint hex length = %d", len(a.FingerprintHex()))
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil, [2]curve.G2{}); !errors.Is(err, ErrEmptyBasis) {
		t.Fatalf("empty basis: err = %v, want ErrEmptyBasis", err)
	}

	src := mustGenerate(t, 2)
	basis := src.Basis()
	s, err := New(basis, src.G2())
	if err != nil {
		t.Fatal(err)
	}
	if s.Fingerprint() != src.Fingerprint() {
		t.Fatal("rebuilt setup has a different fingerprint")
	}
	// Mutating the caller's slice does not reach the setup.
	basis[0] = curve.G1Identity()
	if !s.At(0).Equal(curve.G1Generator()) {
		t.Fatal("New did not copy the basis")
	}
}

func TestBasisReturnsCopy(t *testing.T) {
	s := mustGenerate(t, 2)
	b := s.Basis()
	b[1] = curve.G1Identity()
	if s.At(1).IsIdentity() {
		t.Fatal("Basis exposed internal storage")
	}
}

func TestPrefix(t *testing.T) {
	s := mustGenerate(t, 6)
	p, err := s.Prefix(3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Fatalf("prefix length = %d, want 3", p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		if !p.At(i).Equal(s.At(i)) {
			t.Fatalf("prefix[%d] differs", i)
		}
	}
	if p.Fingerprint() == s.Fingerprint() {
		t.Fatal("prefix shares the full fingerprint")
	}

	whole, err := s.Prefix(100)
	if err != nil {
		t.Fatal(err)
	}
	if whole.Fingerprint() != s.Fingerprint() {
		t.Fatal("oversized prefix should clamp to the full basis")
	}
	if _, err := s.Prefix(0); !errors.Is(err, ErrEmptyBasis) {
		t.Fatalf("Prefix(0): err = %v", err)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func BenchmarkGenerate64(b *testing.B) {
	secret := make([]byte, 48)
	for i := 0; i < b.N; i++ {
		if _, err := Generate(secret, 63); err != nil {
			b.Fatal(err)
		}
	}
}
