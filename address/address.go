// Package address turns compressed public keys into Base58Check
// pay-to-pubkey-hash addresses:
//
//	payload  = version ‖ RIPEMD160(SHA256(pubkey))
//	address  = Base58(payload ‖ SHA256(SHA256(payload))[:4])
package address

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"

	"github.com/rafaelescrich/go-btcaddr/base58"
	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/pubkey"
)

const (
	// HashLen is the size of a RIPEMD160(SHA256(x)) digest.
	HashLen = ripemd160.Size
	// PayloadLen is the size of version ‖ hash.
	PayloadLen = 1 + HashLen
	// Len is the size of a decoded address: payload ‖ checksum.
	Len = PayloadLen + base58.ChecksumLen
)

// Address is a decoded address.
type Address struct {
	Version byte
	Hash160 [HashLen]byte
}

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// FromPubKey returns the address of a 33-byte compressed public key under
// the given version byte.
func FromPubKey(pub []byte, version byte) (string, error) {
	if len(pub) != pubkey.CompressedLen {
		return "", ecerr.InvalidInput("public key is %d bytes, want %d", len(pub), pubkey.CompressedLen)
	}
	return FromHash160(Hash160(pub), version)
}

// FromHash160 encodes an existing 20-byte key hash.
func FromHash160(hash []byte, version byte) (string, error) {
	if len(hash) > HashLen {
		return "", ecerr.EncodingOverflow("key hash is %d bytes, address holds %d", len(hash), HashLen)
	}
	if len(hash) != HashLen {
		return "", ecerr.InvalidInput("key hash is %d bytes, want %d", len(hash), HashLen)
	}

	var full [Len]byte
	full[0] = version
	copy(full[1:PayloadLen], hash)
	sum := base58.Checksum(full[:PayloadLen])
	copy(full[PayloadLen:], sum[:])
	return base58.Encode(full[:]), nil
}

// Decode parses an address and verifies its length and checksum.
func Decode(s string) (*Address, error) {
	dec, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(dec) != Len {
		return nil, ecerr.InvalidInput("address decodes to %d bytes, want %d: %s", len(dec), Len, hex.EncodeToString(dec))
	}
	sum := base58.Checksum(dec[:PayloadLen])
	if !bytes.Equal(sum[:], dec[PayloadLen:]) {
		return nil, ecerr.InvalidInput("address checksum error")
	}

	a := &Address{Version: dec[0]}
	copy(a.Hash160[:], dec[1:PayloadLen])
	return a, nil
}

// Validate decodes s and checks that it carries the given version.
func Validate(s string, version byte) error {
	a, err := Decode(s)
	if err != nil {
		return err
	}
	if a.Version != version {
		return ecerr.InvalidInput("address version 0x%02x, want 0x%02x", a.Version, version)
	}
	return nil
}

// String re-encodes the address.
func (a *Address) String() string {
	s, _ := FromHash160(a.Hash160[:], a.Version)
	return s
}
