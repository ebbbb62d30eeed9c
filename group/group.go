// Package group implements point arithmetic on short Weierstrass
// elliptic curves y² = x³ + a·x + b over a prime field, in affine
// coordinates.
package group

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/field"
)

// Add returns p1 + p2. The cases are tried in order: both at infinity,
// one at infinity, p2 == -p1, distinct points (chord), equal points
// (tangent).
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if err := c.check(p1, p2); err != nil {
		return Point{}, err
	}

	switch {
	case p1.infinity && p2.infinity:
		return c.Infinity(), nil
	case p1.infinity:
		return p2, nil
	case p2.infinity:
		return p1, nil
	}

	if p1.x.Equal(p2.x) && p1.y.Add(p2.y).IsZero() {
		return c.Infinity(), nil
	}

	if !p1.Equal(p2) {
		return c.chord(p1, p2)
	}
	return c.tangent(p1)
}

// Double returns 2·pt.
func (c *Curve) Double(pt Point) (Point, error) {
	return c.Add(pt, pt)
}

// ScalarMult returns k·q using double-and-add over the bits of k from
// most to least significant. k must be positive; it may exceed the
// curve order.
func (c *Curve) ScalarMult(q Point, k *big.Int) (Point, error) {
	if err := c.check(q); err != nil {
		return Point{}, err
	}
	if k == nil || k.Sign() <= 0 {
		return Point{}, ecerr.InvalidInput("scalar must be positive")
	}

	r := c.Infinity()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		if r, err = c.Add(r, r); err != nil {
			return Point{}, errors.Wrapf(err, "doubling at bit %d", i)
		}
		if k.Bit(i) == 1 {
			if r, err = c.Add(r, q); err != nil {
				return Point{}, errors.Wrapf(err, "adding at bit %d", i)
			}
		}
	}
	return r, nil
}

// chord adds two distinct points:
//
//	λ  = (y2 - y1) / (x2 - x1)
//	x3 = λ² - x1 - x2
//	y3 = λ(x1 - x3) - y1
func (c *Curve) chord(p1, p2 Point) (Point, error) {
	inv, err := p2.x.Sub(p1.x).Inverse()
	if err != nil {
		return Point{}, errors.Wrap(err, "chord slope")
	}
	lambda := p2.y.Sub(p1.y).Mul(inv)
	x3 := lambda.Square().Sub(p1.x).Sub(p2.x)
	return c.finish(lambda, p1, x3), nil
}

// tangent doubles a point:
//
//	λ  = (3x1² + a) / 2y1
//	x3 = λ² - 2x1
//	y3 = λ(x1 - x3) - y1
func (c *Curve) tangent(p1 Point) (Point, error) {
	inv, err := p1.y.MulInt(2).Inverse()
	if err != nil {
		return Point{}, errors.Wrap(err, "tangent slope")
	}
	lambda := p1.x.Square().MulInt(3).Add(c.a).Mul(inv)
	x3 := lambda.Square().Sub(p1.x.MulInt(2))
	return c.finish(lambda, p1, x3), nil
}

func (c *Curve) finish(lambda field.Element, p1 Point, x3 field.Element) Point {
	y3 := lambda.Mul(p1.x.Sub(x3)).Sub(p1.y)
	return Point{x: x3, y: y3}
}
