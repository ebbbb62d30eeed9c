package base58

import (
	"bytes"
	"encoding/hex"
	"testing"

	decred "github.com/decred/base58"
	mrtron "github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/require"

	"github.com/rafaelescrich/go-btcaddr/ecerr"
)

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"00", "1"},
		{"0000010203", "11Ldp"},
		{hex.EncodeToString([]byte("hello world")), "StV1DL6CwTryKyV"},
		{"00010966776006953d5567439e5e39f86a0d273beed61967f6", "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"},
	}
	for _, tt := range tests {
		in, err := hex.DecodeString(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, Encode(in), "input %s", tt.in)
	}
}

func TestEncodeLeadingZeros(t *testing.T) {
	in := []byte{0x00, 0x00, 0xff, 0x10, 0x20}
	out := Encode(in)

	leading := 0
	for leading < len(out) && out[leading] == '1' {
		leading++
	}
	require.Equal(t, 2, leading)
}

func TestEncodeUsesExactLength(t *testing.T) {
	// Trailing bytes change the integer value, so a shorter or longer
	// view of the same buffer must encode differently.
	buf := []byte{0x00, 0x6f, 0x01, 0x02, 0x00, 0x00}
	require.NotEqual(t, Encode(buf[:4]), Encode(buf))
	require.Equal(t, mrtron.Encode(buf[:4]), Encode(buf[:4]))
}

func TestEncodeMatchesReferenceLibraries(t *testing.T) {
	inputs := [][]byte{
		{0},
		{0, 0, 0, 1},
		bytes.Repeat([]byte{0xff}, 25),
		bytes.Repeat([]byte{0x00}, 25),
		[]byte("The quick brown fox jumps over the lazy dog"),
	}
	for _, in := range inputs {
		got := Encode(in)
		require.Equal(t, decred.Encode(in), got)
		require.Equal(t, mrtron.Encode(in), got)

		back, err := Decode(got)
		require.NoError(t, err)
		require.Equal(t, in, back)
	}
}

func TestDecodeMatchesReferenceLibraries(t *testing.T) {
	inputs := []string{
		"1",
		"11Ldp",
		"StV1DL6CwTryKyV",
		"1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
		"mp5cELDJZ2pUNYrF1i5dCyT34j48UzaKRU",
	}
	for _, in := range inputs {
		got, err := Decode(in)
		require.NoError(t, err)
		require.Equal(t, decred.Decode(in), got)

		want, err := mrtron.Decode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeRejectsInvalidCharacters(t *testing.T) {
	for _, s := range []string{"0abc", "IOl", "abc!", "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8O"} {
		_, err := Decode(s)
		require.ErrorIs(t, err, ecerr.ErrInvalidInput, s)
	}
}

func TestCheckEncodeRoundTrip(t *testing.T) {
	payload, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	s := CheckEncode(0x00, payload)
	require.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", s)

	version, back, err := CheckDecode(s)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), version)
	require.Equal(t, payload, back)

	s = CheckEncode(0x6f, payload)
	require.Equal(t, "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r", s)
}

func TestCheckDecodeRejectsCorruption(t *testing.T) {
	// Last character changed.
	_, _, err := CheckDecode("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMJ")
	require.ErrorIs(t, err, ecerr.ErrInvalidInput)

	_, _, err = CheckDecode("1111")
	require.ErrorIs(t, err, ecerr.ErrInvalidInput)
}

func BenchmarkEncode25(b *testing.B) {
	in := bytes.Repeat([]byte{0xa7}, 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(in)
	}
}
