// Package base58 implements the Bitcoin base-58 alphabet and the
// Base58Check envelope (version byte, payload, 4-byte double SHA-256
// checksum).
package base58

import (
	"math/big"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

// Alphabet omits 0, O, I and l to avoid transcription mistakes.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const zeroDigit = '1'

var (
	radix = big.NewInt(58)
	// decodeMap maps an ASCII byte to its digit value, or -1.
	decodeMap [256]int8
)

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = int8(i)
	}
}

// Encode returns the base-58 encoding of b. The input is read as a
// big-endian integer over exactly len(b) bytes; each leading zero byte
// becomes one leading '1'.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// log(256)/log(58) ≈ 1.366, so this never reallocates.
	out := make([]byte, 0, zeros+(len(b)-zeros)*138/100+1)

	x := new(big.Int).SetBytes(b)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, radix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, zeroDigit)
	}

	// Digits were produced least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode returns the bytes encoded by s. Each leading '1' becomes one
// leading zero byte.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == zeroDigit {
		zeros++
	}

	x := new(big.Int)
	digit := new(big.Int)
	for i := zeros; i < len(s); i++ {
		d := decodeMap[s[i]]
		if d < 0 {
			return nil, ecerr.InvalidInput("invalid base58 character %q at offset %d", s[i], i)
		}
		x.Mul(x, radix)
		x.Add(x, digit.SetInt64(int64(d)))
	}

	body := x.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}
