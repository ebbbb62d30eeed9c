package field

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

var (
	p17 = big.NewInt(17)
	// secp256k1 field prime
	pK, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
)

func elem(v int64) Element {
	return NewReduced(big.NewInt(v), p17)
}

func TestFieldBasicOperations(t *testing.T) {
	zero := Zero(p17)
	one := elem(1)

	if !zero.IsZero() {
		t.Error("Zero() should return zero")
	}
	if one.IsZero() {
		t.Error("1 should not be zero")
	}

	if !zero.Add(one).Equal(one) {
		t.Error("0 + 1 should equal 1")
	}
	if !one.Sub(one).IsZero() {
		t.Error("1 - 1 should equal 0")
	}
	if !one.Mul(one).Equal(one) {
		t.Error("1 * 1 should equal 1")
	}
}

func TestFieldArithmetic(t *testing.T) {
	a := elem(5)
	b := elem(15)

	tests := []struct {
		name string
		got  Element
		want int64
	}{
		{"add wraps", a.Add(b), 3},
		{"sub wraps", a.Sub(b), 7},
		{"mul", a.Mul(b), 7},
		{"square", b.Square(), 4},
		{"neg", a.Neg(), 12},
		{"mulint", a.MulInt(3), 15},
	}
	for _, tt := range tests {
		if !tt.got.Equal(elem(tt.want)) {
			t.Errorf("%s: got %s, want %x", tt.name, tt.got, tt.want)
		}
	}
}

func TestFieldNewDoesNotReduce(t *testing.T) {
	raw := New(big.NewInt(20), p17)
	if raw.Value().Int64() != 20 {
		t.Errorf("New should keep the raw value, got %d", raw.Value().Int64())
	}
	if !NewReduced(big.NewInt(-1), p17).Equal(elem(16)) {
		t.Error("NewReduced(-1) should equal p-1")
	}
}

func TestFieldOperandsNotMutated(t *testing.T) {
	a := elem(9)
	b := elem(11)
	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Neg()
	if a.Value().Int64() != 9 || b.Value().Int64() != 11 {
		t.Error("operations must not modify their operands")
	}

	v := a.Value()
	v.SetInt64(3)
	if a.Value().Int64() != 9 {
		t.Error("Value should return a copy")
	}
}

func TestFieldEqualityRequiresSameModulus(t *testing.T) {
	a := FromUint64(3, p17)
	b := FromUint64(3, big.NewInt(19))

	if a.Equal(b) {
		t.Error("elements over different moduli should not be equal")
	}
	if a.SameField(b) {
		t.Error("SameField should compare moduli")
	}
	if !a.SameField(elem(4)) {
		t.Error("elements over 17 share a field")
	}
	if (Element{}).Equal(Element{}) {
		t.Error("absent elements should never be equal")
	}
}

func TestFieldNegation(t *testing.T) {
	if !Zero(p17).Neg().IsZero() {
		t.Error("Negation of zero should be zero")
	}

	one := elem(1)
	if !one.Neg().Neg().Equal(one) {
		t.Error("Double negation should return original value")
	}
	if !one.Add(one.Neg()).IsZero() {
		t.Error("a + (-a) should equal zero")
	}
}

func TestFieldInverse(t *testing.T) {
	for v := int64(1); v < 17; v++ {
		a := elem(v)
		inv, err := a.Inverse()
		if err != nil {
			t.Fatalf("inverse of %d: %v", v, err)
		}
		if !a.Mul(inv).Equal(elem(1)) {
			t.Errorf("%d * %d^(-1) should equal 1", v, v)
		}
	}

	_, err := Zero(p17).Inverse()
	if !errors.Is(err, ecerr.ErrArithmetic) {
		t.Errorf("inverse of zero should fail with ErrArithmetic, got %v", err)
	}

	_, err = Element{}.Inverse()
	if !errors.Is(err, ecerr.ErrInvalidInput) {
		t.Errorf("inverse of absent element should fail with ErrInvalidInput, got %v", err)
	}
}

func TestFieldSqrt(t *testing.T) {
	four := FromUint64(4, pK)
	root, err := four.Sqrt()
	if err != nil {
		t.Fatalf("sqrt(4): %v", err)
	}
	if !root.Square().Equal(four) {
		t.Error("sqrt(4)^2 should equal 4")
	}

	// 3 is a non-residue mod 17.
	if _, err := elem(3).Sqrt(); !errors.Is(err, ecerr.ErrArithmetic) {
		t.Errorf("sqrt(3) mod 17 should fail with ErrArithmetic, got %v", err)
	}
}

func TestFieldFillBytes(t *testing.T) {
	e := FromUint64(0x0102, pK)
	b, err := e.FillBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 32)
	want[30], want[31] = 0x01, 0x02
	if !bytes.Equal(b, want) {
		t.Errorf("FillBytes = %x, want %x", b, want)
	}

	if _, err := e.FillBytes(1); !errors.Is(err, ecerr.ErrEncodingOverflow) {
		t.Errorf("FillBytes(1) should overflow, got %v", err)
	}
}

func TestFieldParity(t *testing.T) {
	if !elem(3).IsOdd() || elem(4).IsOdd() {
		t.Error("IsOdd should follow the low bit")
	}
}

func BenchmarkFieldMul(b *testing.B) {
	x := NewReduced(new(big.Int).Sub(pK, big.NewInt(12345)), pK)
	y := NewReduced(new(big.Int).Sub(pK, big.NewInt(67890)), pK)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	x := NewReduced(new(big.Int).Sub(pK, big.NewInt(12345)), pK)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Inverse()
	}
}
