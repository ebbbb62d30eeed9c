package group

import "math/big"

// secp256k1 domain parameters, SEC 2 section 2.4.1.
const (
	secp256k1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	secp256k1N  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	secp256k1Gx = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	secp256k1Gy = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
)

var secp256k1 = mustCurve(Params{
	Name: "secp256k1",
	P:    hexInt(secp256k1P),
	A:    big.NewInt(0),
	B:    big.NewInt(7),
	Gx:   hexInt(secp256k1Gx),
	Gy:   hexInt(secp256k1Gy),
	N:    hexInt(secp256k1N),
	H:    big.NewInt(1),
})

// S256 returns the secp256k1 curve. The value is built once at package
// initialisation and shared by all callers.
func S256() *Curve {
	return secp256k1
}

func mustCurve(params Params) *Curve {
	c, err := NewCurve(params)
	if err != nil {
		panic(err)
	}
	return c
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("group: invalid hex constant " + s)
	}
	return v
}
