// Package field implements arithmetic on elements of a prime field Z/pZ.
// An Element carries its own modulus, so two elements are only comparable
// when they belong to the same field.
package field

import (
	"fmt"
	"math/big"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// Element is a value in Z/pZ. Elements are immutable: every operation
// returns a new Element and never writes to its operands.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns an element holding value over modulus. The value is copied
// but not reduced; callers that can pass unreduced input should use
// NewReduced.
func New(value, modulus *big.Int) Element {
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}
}

// NewReduced returns value mod modulus as an element.
func NewReduced(value, modulus *big.Int) Element {
	e := Element{modulus: new(big.Int).Set(modulus)}
	e.value = e.reduce(value)
	return e
}

// FromUint64 returns v mod modulus as an element.
func FromUint64(v uint64, modulus *big.Int) Element {
	return NewReduced(new(big.Int).SetUint64(v), modulus)
}

// Zero returns the additive identity of the field.
func Zero(modulus *big.Int) Element {
	return Element{value: new(big.Int), modulus: new(big.Int).Set(modulus)}
}

// IsValid reports whether the element has a positive modulus. The zero
// Element{} is not valid.
func (e Element) IsValid() bool {
	return e.modulus != nil && e.value != nil && e.modulus.Sign() > 0
}

// Value returns a copy of the element's integer value.
func (e Element) Value() *big.Int {
	if e.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e Element) Modulus() *big.Int {
	if e.modulus == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.modulus)
}

// Equal returns true if both the values and the moduli are equal.
func (e Element) Equal(other Element) bool {
	if !e.IsValid() || !other.IsValid() {
		return false
	}
	return e.value.Cmp(other.value) == 0 && e.modulus.Cmp(other.modulus) == 0
}

// SameField returns true if both elements are defined over the same
// modulus.
func (e Element) SameField(other Element) bool {
	if !e.IsValid() || !other.IsValid() {
		return false
	}
	return e.modulus.Cmp(other.modulus) == 0
}

// IsZero returns true if the element is zero.
func (e Element) IsZero() bool {
	return e.value == nil || e.value.Sign() == 0
}

// IsOdd returns true if the element's value is odd.
func (e Element) IsOdd() bool {
	return e.value != nil && e.value.Bit(0) == 1
}

// Add returns e + o mod p.
func (e Element) Add(o Element) Element {
	return e.with(new(big.Int).Add(e.value, o.value))
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) Element {
	return e.with(new(big.Int).Sub(e.value, o.value))
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) Element {
	return e.with(new(big.Int).Mul(e.value, o.value))
}

// MulInt returns k * e mod p.
func (e Element) MulInt(k int64) Element {
	return e.with(new(big.Int).Mul(e.value, big.NewInt(k)))
}

// Square returns e^2 mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return e.with(new(big.Int).Neg(e.value))
}

// FillBytes returns the value as a big-endian slice of exactly size bytes,
// left-padded with zeros.
func (e Element) FillBytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, ecerr.InvalidInput("negative byte size %d", size)
	}
	v := e.Value()
	if (v.BitLen()+7)/8 > size {
		return nil, ecerr.EncodingOverflow("field element needs %d bytes, buffer has %d",
			(v.BitLen()+7)/8, size)
	}
	return v.FillBytes(make([]byte, size)), nil
}

// String returns the value in hexadecimal.
func (e Element) String() string {
	return fmt.Sprintf("%x", e.Value())
}

func (e Element) with(v *big.Int) Element {
	return Element{value: e.reduce(v), modulus: e.modulus}
}

// reduce returns v mod p in [0, p). big.Int.Mod is Euclidean, so the
// result is never negative.
func (e Element) reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, e.modulus)
}
