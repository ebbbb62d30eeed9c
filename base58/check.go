package base58

import (
	"bytes"
	"crypto/sha256"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// ChecksumLen is the number of checksum bytes appended by CheckEncode.
const ChecksumLen = 4

// Checksum returns the first four bytes of SHA256(SHA256(b)).
func Checksum(b []byte) [ChecksumLen]byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	var sum [ChecksumLen]byte
	copy(sum[:], second[:ChecksumLen])
	return sum
}

// CheckEncode returns Encode(version ‖ payload ‖ checksum).
func CheckEncode(version byte, payload []byte) string {
	full := make([]byte, 0, 1+len(payload)+ChecksumLen)
	full = append(full, version)
	full = append(full, payload...)
	sum := Checksum(full)
	full = append(full, sum[:]...)
	return Encode(full)
}

// CheckDecode reverses CheckEncode and verifies the checksum.
func CheckDecode(s string) (version byte, payload []byte, err error) {
	full, err := Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(full) < 1+ChecksumLen {
		return 0, nil, ecerr.InvalidInput("base58check string decodes to %d bytes", len(full))
	}
	body, sum := full[:len(full)-ChecksumLen], full[len(full)-ChecksumLen:]
	want := Checksum(body)
	if !bytes.Equal(sum, want[:]) {
		return 0, nil, ecerr.InvalidInput("base58check checksum mismatch")
	}
	return body[0], body[1:], nil
}
