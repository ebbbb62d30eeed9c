package btcaddr

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/rafaelescrich/go-btcaddr/address"
	"github.com/rafaelescrich/go-btcaddr/ecerr"
	"github.com/rafaelescrich/go-btcaddr/group"
)

func TestKeyGeneration(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("Failed to generate private key: %v", err)
	}

	if len(priv.Bytes()) != PrivateKeyLen {
		t.Errorf("Private key should be %d bytes, got %d", PrivateKeyLen, len(priv.Bytes()))
	}

	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatalf("Failed to derive public key: %v", err)
	}
	if len(pub.Bytes()) != 33 {
		t.Errorf("Public key should be 33 bytes, got %d", len(pub.Bytes()))
	}
	if len(pub.Uncompressed()) != 65 {
		t.Errorf("Uncompressed public key should be 65 bytes, got %d", len(pub.Uncompressed()))
	}
}

func TestPrivateKeyFromBytes(t *testing.T) {
	validKey := make([]byte, 32)
	validKey[31] = 1

	priv, err := PrivateKeyFromBytes(validKey)
	if err != nil {
		t.Fatalf("Failed to create private key from valid bytes: %v", err)
	}
	if !bytes.Equal(validKey, priv.Bytes()) {
		t.Error("Private key bytes should round-trip correctly")
	}

	invalid := map[string][]byte{
		"short": make([]byte, 31),
		"zero":  make([]byte, 32),
		"order": group.S256().N().FillBytes(make([]byte, 32)),
	}
	for name, b := range invalid {
		_, err := PrivateKeyFromBytes(b)
		if !errors.Is(err, ErrInvalidPrivateKey) || !errors.Is(err, ecerr.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidPrivateKey, got %v", name, err)
		}
	}
}

func TestPrivateKeyFromHex(t *testing.T) {
	for _, s := range []string{"7", "0x07", " 0000000000000000000000000000000000000000000000000000000000000007 "} {
		priv, err := PrivateKeyFromHex(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if priv.D().Int64() != 7 {
			t.Errorf("%q: got %s, want 7", s, priv.D())
		}
	}

	for _, s := range []string{"", "0x", "xyz", "0", "1" + hex.EncodeToString(make([]byte, 32))} {
		if _, err := PrivateKeyFromHex(s); !errors.Is(err, ErrInvalidPrivateKey) {
			t.Errorf("%q: expected ErrInvalidPrivateKey, got %v", s, err)
		}
	}
}

func TestPublicKeyMatchesBtcec(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := GeneratePrivateKey()
		if err != nil {
			t.Fatal(err)
		}
		pub, err := priv.PublicKey()
		if err != nil {
			t.Fatal(err)
		}

		_, ref := btcec.PrivKeyFromBytes(priv.Bytes())
		if !bytes.Equal(ref.SerializeCompressed(), pub.Bytes()) {
			t.Errorf("compressed key mismatch for %x", priv.Bytes())
		}
		if !bytes.Equal(ref.SerializeUncompressed(), pub.Uncompressed()) {
			t.Errorf("uncompressed key mismatch for %x", priv.Bytes())
		}
	}
}

func TestParsePublicKey(t *testing.T) {
	priv, err := NewPrivateKey(big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParsePublicKey(pub.Bytes())
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if !parsed.Equal(pub) {
		t.Error("parsed key should equal the original")
	}

	if _, err := ParsePublicKey(make([]byte, 32)); !errors.Is(err, ecerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for a short key, got %v", err)
	}
}

func TestNewPublicKeyRejectsOffCurve(t *testing.T) {
	c := group.S256()
	if _, err := NewPublicKey(c.NewPoint(big.NewInt(1), big.NewInt(1))); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("expected ErrInvalidPublicKey, got %v", err)
	}
	if _, err := NewPublicKey(c.Infinity()); !errors.Is(err, ecerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for infinity, got %v", err)
	}
}

func TestPublicKeyAddress(t *testing.T) {
	priv, err := NewPrivateKey(big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	addr, err := pub.Address(address.Testnet.Version)
	if err != nil {
		t.Fatal(err)
	}
	if addr != "mp5cELDJZ2pUNYrF1i5dCyT34j48UzaKRU" {
		t.Errorf("testnet address of 7·G = %s", addr)
	}
}
