package field

import (
	"math/big"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// Inverse returns e^(-1) mod p. It fails with ecerr.ErrArithmetic when e
// shares a factor with the modulus, which for a prime field means e == 0.
func (e Element) Inverse() (Element, error) {
	if !e.IsValid() {
		return Element{}, ecerr.InvalidInput("inverse of an absent element")
	}
	inv := new(big.Int).ModInverse(e.value, e.modulus)
	if inv == nil {
		return Element{}, ecerr.Arithmetic("modular inverse of %x does not exist mod %x", e.value, e.modulus)
	}
	return Element{value: inv, modulus: e.modulus}, nil
}

// Sqrt returns a square root of e mod p. The modulus must be prime.
// It fails with ecerr.ErrArithmetic when e is not a quadratic residue.
func (e Element) Sqrt() (Element, error) {
	if !e.IsValid() {
		return Element{}, ecerr.InvalidInput("square root of an absent element")
	}
	root := new(big.Int).ModSqrt(e.value, e.modulus)
	if root == nil {
		return Element{}, ecerr.Arithmetic("%x is not a square mod %x", e.value, e.modulus)
	}
	return Element{value: root, modulus: e.modulus}, nil
}
