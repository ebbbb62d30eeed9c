package group

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// Fixed-base multiplication of the generator with a 4-bit window. The
// table holds 0G..15G and is built once, in NewCurve.
const (
	windowBits = 4
	windowSize = 1 << windowBits
)

func (c *Curve) buildTable() error {
	c.table[0] = c.Infinity()
	c.table[1] = c.g
	for i := 2; i < windowSize; i++ {
		next, err := c.Add(c.table[i-1], c.g)
		if err != nil {
			return errors.Wrapf(err, "precomputing %dG", i)
		}
		c.table[i] = next
	}
	return nil
}

// ScalarBaseMult returns k·G. It produces the same point as
// ScalarMult(c.G(), k) with roughly a quarter of the additions.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	if c == nil {
		return Point{}, ecerr.InvalidInput("curve is absent")
	}
	if k == nil || k.Sign() <= 0 {
		return Point{}, ecerr.InvalidInput("scalar must be positive")
	}

	r := c.Infinity()
	windows := (k.BitLen() + windowBits - 1) / windowBits
	var err error
	for w := windows - 1; w >= 0; w-- {
		for j := 0; j < windowBits; j++ {
			if r, err = c.Add(r, r); err != nil {
				return Point{}, errors.Wrapf(err, "doubling in window %d", w)
			}
		}
		idx := window(k, w)
		if idx == 0 {
			continue
		}
		if r, err = c.Add(r, c.table[idx]); err != nil {
			return Point{}, errors.Wrapf(err, "adding %dG in window %d", idx, w)
		}
	}
	return r, nil
}

// window returns bits [w*windowBits, (w+1)*windowBits) of k.
func window(k *big.Int, w int) uint {
	var idx uint
	for j := windowBits - 1; j >= 0; j-- {
		idx = idx<<1 | k.Bit(w*windowBits+j)
	}
	return idx
}
