package group

// Negate returns -pt = (x, -y mod p). The point at infinity is its own
// negation.
func (c *Curve) Negate(pt Point) (Point, error) {
	if err := c.check(pt); err != nil {
		return Point{}, err
	}
	if pt.infinity {
		return c.Infinity(), nil
	}
	return Point{x: pt.x, y: pt.y.Neg()}, nil
}

// Sub returns a - b.
func (c *Curve) Sub(a, b Point) (Point, error) {
	negB, err := c.Negate(b)
	if err != nil {
		return Point{}, err
	}
	return c.Add(a, negB)
}
