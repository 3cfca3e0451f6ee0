package noncereuse

import (
	"math/big"
)

// secp256k1N is the order of the secp256k1 base point. It is never mutated.
var secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

var two = big.NewInt(2)

// CurveOrder returns a copy of the secp256k1 curve order n.
func CurveOrder() *big.Int {
	return new(big.Int).Set(secp256k1N)
}

// ModInverse returns a⁻¹ mod n computed as a^(n-2) mod n, which holds because
// n is prime (Fermat's little theorem).
//
// The caller must ensure a is not a multiple of n: for a ≡ 0 the result is 0,
// which is not an inverse. ModDivide performs that check.
func ModInverse(a, n *big.Int) *big.Int {
	base := new(big.Int).Mod(a, n)
	exponent := new(big.Int).Sub(n, two)
	return base.Exp(base, exponent, n)
}

// ModDivide returns numerator / denominator mod n, where n is the secp256k1
// curve order. The numerator may be negative; the result is always in [0, n).
//
// Returns a *PreconditionError wrapping ErrNotInvertible when the
// denominator is a multiple of n.
func ModDivide(numerator, denominator *big.Int) (*big.Int, error) {
	return modDivide(numerator, denominator, "denominator")
}

func modDivide(numerator, denominator *big.Int, operand string) (*big.Int, error) {
	n := secp256k1N

	// Mod is Euclidean, so negative values land in [0, n)
	den := new(big.Int).Mod(denominator, n)
	if den.Sign() == 0 {
		return nil, &PreconditionError{Operand: operand, Err: ErrNotInvertible}
	}

	q := new(big.Int).Mul(numerator, ModInverse(den, n))
	return q.Mod(q, n), nil
}

// DeriveK recovers the reused nonce.
//
//	k = (h1 - h2) / (s1 - s2) mod n
//
// Args:
//   - h1, h2: Message hashes of the two signatures
//   - s1, s2: s components of the two signatures
//
// Returns:
//   - k in [0, n), or a *PreconditionError if s1 ≡ s2 (mod n)
func DeriveK(h1, h2, s1, s2 *big.Int) (*big.Int, error) {
	numerator := new(big.Int).Sub(h1, h2)
	denominator := new(big.Int).Sub(s1, s2)
	return modDivide(numerator, denominator, "s1 - s2")
}

// DeriveD recovers the private key once the nonce is known.
//
//	d = (k*s1 - h1) / r mod n
//
// Args:
//   - k: Nonce returned by DeriveK
//   - s1: s component of the first signature
//   - h1: Hash of the first message
//   - r: r component shared by both signatures
//
// Returns:
//   - d in [0, n), or a *PreconditionError if r ≡ 0 (mod n)
func DeriveD(k, s1, h1, r *big.Int) (*big.Int, error) {
	numerator := new(big.Int).Mul(k, s1)
	numerator.Sub(numerator, h1)
	return modDivide(numerator, r, "r")
}

// Recover runs the full pipeline: k first, then d from k.
//
// The result is only meaningful if both signatures really used the same
// nonce; that cannot be detected here.
func Recover(in *Input) (*RecoveryResult, error) {
	if in == nil {
		return nil, &InputError{Field: fieldNames[0], Err: ErrMissingField}
	}
	for i, f := range in.fields() {
		if *f == nil {
			return nil, &InputError{Field: fieldNames[i], Err: ErrMissingField}
		}
	}

	k, err := DeriveK(in.H1, in.H2, in.S1, in.S2)
	if err != nil {
		return nil, err
	}

	d, err := DeriveD(k, in.S1, in.H1, in.R)
	if err != nil {
		return nil, err
	}

	return &RecoveryResult{Nonce: k, PrivateKey: d}, nil
}
