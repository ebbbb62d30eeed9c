package group

import (
	"math/big"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/field"
)

// Params are the domain parameters of a short Weierstrass curve
// y² = x³ + a·x + b over Z/pZ with generator (Gx, Gy) of order N and
// cofactor H.
type Params struct {
	Name   string
	P      *big.Int
	A, B   *big.Int
	Gx, Gy *big.Int
	N      *big.Int
	H      *big.Int
}

// Curve holds validated, immutable domain parameters. A Curve is safe
// for concurrent use; none of its methods modify it.
type Curve struct {
	name    string
	p, n, h *big.Int
	a, b    field.Element
	g       Point
	table   [windowSize]Point
}

// NewCurve validates params and builds a curve. The generator is reduced
// mod p and must lie on the curve; singular curves are rejected.
func NewCurve(params Params) (*Curve, error) {
	required := []struct {
		name string
		v    *big.Int
	}{
		{"p", params.P}, {"a", params.A}, {"b", params.B},
		{"gx", params.Gx}, {"gy", params.Gy}, {"n", params.N}, {"h", params.H},
	}
	for _, r := range required {
		if r.v == nil {
			return nil, ecerr.InvalidInput("curve parameter %s is missing", r.name)
		}
	}
	if params.P.Cmp(big.NewInt(3)) <= 0 {
		return nil, ecerr.InvalidInput("curve modulus %s is too small", params.P)
	}
	if params.N.Sign() <= 0 || params.H.Sign() <= 0 {
		return nil, ecerr.InvalidInput("curve order and cofactor must be positive")
	}

	p := new(big.Int).Set(params.P)
	c := &Curve{
		name: params.Name,
		p:    p,
		n:    new(big.Int).Set(params.N),
		h:    new(big.Int).Set(params.H),
		a:    field.NewReduced(params.A, p),
		b:    field.NewReduced(params.B, p),
	}

	// 4a³ + 27b² != 0 mod p
	disc := c.a.Square().Mul(c.a).MulInt(4).Add(c.b.Square().MulInt(27))
	if disc.IsZero() {
		return nil, ecerr.InvalidInput("curve %q is singular", params.Name)
	}

	c.g = c.NewPoint(params.Gx, params.Gy)
	onCurve, err := c.IsOnCurve(c.g)
	if err != nil {
		return nil, err
	}
	if !onCurve {
		return nil, ecerr.InvalidInput("generator of curve %q is not on the curve", params.Name)
	}

	if err := c.buildTable(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the curve's name.
func (c *Curve) Name() string { return c.name }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns the curve coefficient a.
func (c *Curve) A() *big.Int { return c.a.Value() }

// B returns the curve coefficient b.
func (c *Curve) B() *big.Int { return c.b.Value() }

// N returns the order of the generator.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// H returns the cofactor.
func (c *Curve) H() *big.Int { return new(big.Int).Set(c.h) }

// G returns the generator point.
func (c *Curve) G() Point { return c.g }

// ByteLen returns the number of bytes needed to hold a coordinate.
func (c *Curve) ByteLen() int { return (c.p.BitLen() + 7) / 8 }

// NewPoint returns the finite point (x mod p, y mod p). It does not check
// curve membership. A nil coordinate yields the absent Point{}.
func (c *Curve) NewPoint(x, y *big.Int) Point {
	if x == nil || y == nil {
		return Point{}
	}
	return Point{x: field.NewReduced(x, c.p), y: field.NewReduced(y, c.p)}
}

// Infinity returns the point at infinity. Its coordinates are zero over
// p so that every point produced by the curve carries a valid modulus.
func (c *Curve) Infinity() Point {
	return Point{x: field.Zero(c.p), y: field.Zero(c.p), infinity: true}
}

// Rhs returns x³ + a·x + b mod p for the point's x coordinate.
func (c *Curve) Rhs(pt Point) (field.Element, error) {
	if err := c.check(pt); err != nil {
		return field.Element{}, err
	}
	x := pt.x
	return x.Square().Mul(x).Add(c.a.Mul(x)).Add(c.b), nil
}

// IsOnCurve reports whether y² == x³ + a·x + b mod p. The point at
// infinity is on every curve.
func (c *Curve) IsOnCurve(pt Point) (bool, error) {
	if err := c.check(pt); err != nil {
		return false, err
	}
	if pt.infinity {
		return true, nil
	}
	rhs, err := c.Rhs(pt)
	if err != nil {
		return false, err
	}
	return pt.y.Square().Equal(rhs), nil
}

// check rejects a nil curve, an absent point, or a point whose
// coordinates are not over this curve's field.
func (c *Curve) check(pts ...Point) error {
	if c == nil {
		return ecerr.InvalidInput("curve is absent")
	}
	for _, pt := range pts {
		if !pt.IsValid() {
			return ecerr.InvalidInput("point is absent")
		}
		if pt.x.Modulus().Cmp(c.p) != 0 || pt.y.Modulus().Cmp(c.p) != 0 {
			return ecerr.InvalidInput("point is not over the field of curve %q", c.name)
		}
	}
	return nil
}
