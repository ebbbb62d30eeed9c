// Package btcaddr derives secp256k1 public keys from private scalars and
// encodes them as Base58Check pay-to-pubkey-hash addresses.
package btcaddr

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/go-btcaddr/address"
	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/group"
	"github.com/rafaelescrich/go-btcaddr/pubkey"
)

// PrivateKeyLen is the size of a serialized private key.
const PrivateKeyLen = 32

// Key errors. Both wrap ecerr.ErrInvalidInput.
var (
	ErrInvalidPrivateKey = errors.WithMessage(ecerr.ErrInvalidInput, "invalid private key")
	ErrInvalidPublicKey  = errors.WithMessage(ecerr.ErrInvalidInput, "invalid public key")
)

// PrivateKey is a secp256k1 scalar d with 1 <= d < n.
type PrivateKey struct {
	d *big.Int
}

// PublicKey is a finite point on secp256k1.
type PublicKey struct {
	point      group.Point
	compressed []byte
}

// NewPrivateKey validates d and wraps it as a private key.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d == nil {
		return nil, errors.WithMessage(ErrInvalidPrivateKey, "scalar is absent")
	}
	if d.Sign() <= 0 || d.Cmp(group.S256().N()) >= 0 {
		return nil, errors.WithMessage(ErrInvalidPrivateKey, "scalar is outside [1, n-1]")
	}
	return &PrivateKey{d: new(big.Int).Set(d)}, nil
}

// PrivateKeyFromBytes parses a 32-byte big-endian private key.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, errors.WithMessagef(ErrInvalidPrivateKey, "key is %d bytes, want %d", len(b), PrivateKeyLen)
	}
	return NewPrivateKey(new(big.Int).SetBytes(b))
}

// PrivateKeyFromHex parses a hexadecimal private key, with or without a
// 0x prefix.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" || len(s) > 2*PrivateKeyLen {
		return nil, errors.WithMessagef(ErrInvalidPrivateKey, "hex key has %d digits", len(s))
	}
	d, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errors.WithMessage(ErrInvalidPrivateKey, "malformed hex")
	}
	return NewPrivateKey(d)
}

// GeneratePrivateKey returns a uniformly random private key.
func GeneratePrivateKey() (*PrivateKey, error) {
	limit := new(big.Int).Sub(group.S256().N(), big.NewInt(1))
	d, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, errors.Wrap(err, "reading randomness")
	}
	return NewPrivateKey(d.Add(d, big.NewInt(1)))
}

// D returns a copy of the scalar.
func (k *PrivateKey) D() *big.Int {
	return new(big.Int).Set(k.d)
}

// Bytes returns the private key as 32 big-endian bytes.
func (k *PrivateKey) Bytes() []byte {
	return k.d.FillBytes(make([]byte, PrivateKeyLen))
}

// PublicKey returns d·G.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	pt, err := group.S256().ScalarBaseMult(k.d)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(pt)
}

// NewPublicKey wraps a finite secp256k1 point.
func NewPublicKey(pt group.Point) (*PublicKey, error) {
	on, err := group.S256().IsOnCurve(pt)
	if err != nil {
		return nil, err
	}
	if !on {
		return nil, errors.WithMessage(ErrInvalidPublicKey, "point is not on secp256k1")
	}
	compressed, err := pubkey.Compress(pt)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: pt, compressed: compressed}, nil
}

// ParsePublicKey parses a 33-byte compressed public key.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pt, err := pubkey.Decompress(group.S256(), b)
	if err != nil {
		return nil, errors.WithMessage(err, "parsing public key")
	}
	return NewPublicKey(pt)
}

// Point returns the public key's curve point.
func (p *PublicKey) Point() group.Point {
	return p.point
}

// Bytes returns the 33-byte compressed encoding.
func (p *PublicKey) Bytes() []byte {
	return append([]byte(nil), p.compressed...)
}

// Uncompressed returns the 65-byte uncompressed encoding.
func (p *PublicKey) Uncompressed() []byte {
	b, _ := pubkey.Uncompressed(p.point)
	return b
}

// Address returns the key's address under the given version byte.
func (p *PublicKey) Address(version byte) (string, error) {
	return address.FromPubKey(p.compressed, version)
}

// Equal returns true if both keys hold the same point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && p.point.Equal(other.point)
}
