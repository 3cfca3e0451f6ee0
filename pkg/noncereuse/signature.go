package noncereuse

import "math/big"

// Input holds the five values needed to recover a key from a reused nonce.
// Field order matches the line format: s1, s2, r, h1, h2.
type Input struct {
	S1 *big.Int // s component of the first signature
	S2 *big.Int // s component of the second signature
	R  *big.Int // r component shared by both signatures
	H1 *big.Int // Hash of the first message
	H2 *big.Int // Hash of the second message
}

// RecoveryResult contains the values derived from a reused-nonce pair.
type RecoveryResult struct {
	Nonce      *big.Int // Reused nonce k, in [0, n)
	PrivateKey *big.Int // Private key d, in [0, n)
}

// fieldNames lists the Input fields in line order.
var fieldNames = [5]string{"s1", "s2", "r", "h1", "h2"}

// fields returns pointers to the Input fields in line order.
func (in *Input) fields() [5]**big.Int {
	return [5]**big.Int{&in.S1, &in.S2, &in.R, &in.H1, &in.H2}
}
