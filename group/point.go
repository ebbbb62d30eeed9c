package group

import (
	"fmt"

	"github.com/rafaelescrich/go-btcaddr/field"
)

// Point is an affine curve point or the point at infinity. Points are
// values: arithmetic returns new points and never modifies its inputs.
// The zero Point{} stands for an absent point and is rejected by every
// Curve method.
type Point struct {
	x, y     field.Element
	infinity bool
}

// NewPoint returns the finite point (x, y). Coordinates are used as
// given; callers are responsible for reducing them.
func NewPoint(x, y field.Element) Point {
	return Point{x: x, y: y}
}

// IsValid returns true if both coordinates carry a modulus.
func (p Point) IsValid() bool {
	return p.x.IsValid() && p.y.IsValid()
}

// IsInfinity returns true if the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// X returns the x-coordinate. It is meaningless for the point at infinity.
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y-coordinate. It is meaningless for the point at infinity.
func (p Point) Y() field.Element {
	return p.y
}

// IsEven returns true if the y-coordinate is even.
func (p Point) IsEven() bool {
	if p.infinity {
		return true
	}
	return !p.y.IsOdd()
}

// Equal compares the infinity flag first. Two points at infinity are
// equal whatever their coordinates; a finite point never equals the
// point at infinity; two finite points are equal when both coordinates
// are equal field elements.
func (p Point) Equal(other Point) bool {
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

func (p Point) String() string {
	if p.infinity {
		return "(inf)"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
