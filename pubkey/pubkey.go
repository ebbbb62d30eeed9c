// Package pubkey encodes curve points as SEC 1 public keys.
//
// The compressed form is 33 bytes: a prefix of 0x02 (even y) or 0x03
// (odd y) followed by the x-coordinate, big-endian and left-padded with
// zeros to 32 bytes. The uncompressed form is 0x04 ‖ x ‖ y.
package pubkey

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/field"
	"github.com/rafaelescrich/go-btcaddr/group"
)

const (
	// CoordinateLen is the encoded size of one coordinate.
	CoordinateLen = 32
	// CompressedLen is the size of a compressed public key.
	CompressedLen = 1 + CoordinateLen
	// UncompressedLen is the size of an uncompressed public key.
	UncompressedLen = 1 + 2*CoordinateLen

	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// Compress returns the 33-byte compressed encoding of a finite point.
func Compress(pt group.Point) ([]byte, error) {
	if err := checkFinite(pt); err != nil {
		return nil, err
	}

	out := make([]byte, CompressedLen)
	out[0] = prefixEven
	if pt.Y().IsOdd() {
		out[0] = prefixOdd
	}
	x, err := pt.X().FillBytes(CoordinateLen)
	if err != nil {
		return nil, errors.Wrap(err, "x-coordinate")
	}
	copy(out[1:], x)
	return out, nil
}

// Uncompressed returns the 65-byte uncompressed encoding of a finite
// point.
func Uncompressed(pt group.Point) ([]byte, error) {
	if err := checkFinite(pt); err != nil {
		return nil, err
	}

	out := make([]byte, UncompressedLen)
	out[0] = prefixUncompressed
	x, err := pt.X().FillBytes(CoordinateLen)
	if err != nil {
		return nil, errors.Wrap(err, "x-coordinate")
	}
	y, err := pt.Y().FillBytes(CoordinateLen)
	if err != nil {
		return nil, errors.Wrap(err, "y-coordinate")
	}
	copy(out[1:], x)
	copy(out[1+CoordinateLen:], y)
	return out, nil
}

// Decompress parses a 33-byte compressed key and recovers y from the
// curve equation. The result is guaranteed to be on the curve.
func Decompress(c *group.Curve, b []byte) (group.Point, error) {
	if c == nil {
		return group.Point{}, ecerr.InvalidInput("curve is absent")
	}
	if len(b) != CompressedLen {
		return group.Point{}, ecerr.InvalidInput("compressed key is %d bytes, want %d", len(b), CompressedLen)
	}
	if b[0] != prefixEven && b[0] != prefixOdd {
		return group.Point{}, ecerr.InvalidInput("unknown public key prefix 0x%02x", b[0])
	}

	p := c.P()
	x := field.New(new(big.Int).SetBytes(b[1:]), p)
	if x.Value().Cmp(p) >= 0 {
		return group.Point{}, ecerr.InvalidInput("x-coordinate is not below the field modulus")
	}

	ySquared, err := c.Rhs(group.NewPoint(x, field.Zero(p)))
	if err != nil {
		return group.Point{}, err
	}
	y, err := ySquared.Sqrt()
	if err != nil {
		if errors.Is(err, ecerr.ErrArithmetic) {
			return group.Point{}, ecerr.InvalidInput("x-coordinate is not on curve %s", c.Name())
		}
		return group.Point{}, err
	}
	if y.IsOdd() != (b[0] == prefixOdd) {
		if y.IsZero() {
			return group.Point{}, ecerr.InvalidInput("y is zero, prefix 0x%02x cannot be satisfied", b[0])
		}
		y = y.Neg()
	}
	return group.NewPoint(x, y), nil
}

func checkFinite(pt group.Point) error {
	if !pt.IsValid() {
		return ecerr.InvalidInput("point is absent")
	}
	if pt.IsInfinity() {
		return ecerr.InvalidInput("the point at infinity has no public key encoding")
	}
	return nil
}
