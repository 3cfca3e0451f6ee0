// Package fixture synthesizes secp256k1 signatures that reuse a chosen nonce.
// It exists to produce known-answer inputs for the recovery tooling.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Vector is a pair of signatures made with private key D and reused nonce K.
type Vector struct {
	D  *big.Int
	K  *big.Int
	H1 *big.Int
	H2 *big.Int
	R  *big.Int
	S1 *big.Int
	S2 *big.Int
}

// Sign signs hash h with private key d using the given nonce k.
// r = x(k*G) mod n, s = k^-1 * (h + r*d) mod n. s is not normalized to low-S.
func Sign(d, k, h *big.Int) (r, s *big.Int, err error) {
	dScalar, err := toScalar(d, "private key", false)
	if err != nil {
		return nil, nil, err
	}
	kScalar, err := toScalar(k, "nonce", false)
	if err != nil {
		return nil, nil, err
	}
	hScalar, err := toScalar(h, "hash", true)
	if err != nil {
		return nil, nil, err
	}

	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(kScalar, &point)
	point.ToAffine()

	var rScalar secp256k1.ModNScalar
	rScalar.SetBytes(point.X.Bytes())
	if rScalar.IsZero() {
		return nil, nil, errors.New("nonce produces r = 0")
	}

	kInv := new(secp256k1.ModNScalar).InverseValNonConst(kScalar)
	var sScalar secp256k1.ModNScalar
	sScalar.Mul2(&rScalar, dScalar).Add(hScalar).Mul(kInv)
	if sScalar.IsZero() {
		return nil, nil, errors.New("signature produces s = 0")
	}

	return scalarToBig(&rScalar), scalarToBig(&sScalar), nil
}

// NewVector signs h1 and h2 with the same private key and nonce.
func NewVector(d, k, h1, h2 *big.Int) (*Vector, error) {
	r, s1, err := Sign(d, k, h1)
	if err != nil {
		return nil, fmt.Errorf("failed to sign h1: %w", err)
	}
	_, s2, err := Sign(d, k, h2)
	if err != nil {
		return nil, fmt.Errorf("failed to sign h2: %w", err)
	}

	return &Vector{
		D:  new(big.Int).Set(d),
		K:  new(big.Int).Set(k),
		H1: reduce(h1),
		H2: reduce(h2),
		R:  r,
		S1: s1,
		S2: s2,
	}, nil
}

// WriteLines writes the vector in the five-line input format: s1, s2, r, h1, h2.
func (v *Vector) WriteLines(w io.Writer) error {
	for _, x := range []*big.Int{v.S1, v.S2, v.R, v.H1, v.H2} {
		if _, err := fmt.Fprintln(w, x.Text(16)); err != nil {
			return err
		}
	}
	return nil
}

// CurveOrder returns the order of the secp256k1 base point as reported by the curve implementation.
func CurveOrder() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

// toScalar converts x to a scalar mod n. Hashes are reduced; keys and
// nonces must already be in [1, n-1].
func toScalar(x *big.Int, name string, reduceMod bool) (*secp256k1.ModNScalar, error) {
	if x == nil || x.Sign() < 0 || x.BitLen() > 256 {
		return nil, fmt.Errorf("%s must be a non-negative 256-bit integer", name)
	}

	var buf [32]byte
	x.FillBytes(buf[:])

	var s secp256k1.ModNScalar
	overflow := s.SetBytes(&buf)
	if !reduceMod && (overflow != 0 || s.IsZero()) {
		return nil, fmt.Errorf("%s must be in [1, n-1]", name)
	}
	return &s, nil
}

func scalarToBig(s *secp256k1.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func reduce(h *big.Int) *big.Int {
	return new(big.Int).Mod(h, secp256k1.S256().N)
}
