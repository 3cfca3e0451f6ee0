// Package noncereuse recovers an ECDSA private key from two secp256k1
// signatures that were produced with the same per-signature nonce.
//
// When a signer reuses the nonce k for two messages, both signatures share
// the same r and the signing equation s = k⁻¹(h + r·d) mod n can be solved
// for the unknowns:
//
//	k = (h1 - h2) / (s1 - s2) mod n
//	d = (k·s1 - h1) / r       mod n
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/ecdsa-nonce-reuse/pkg/noncereuse"
//
//	// Read s1, s2, r, h1, h2 (one hex value per line) and recover k and d
//	client := noncereuse.NewClient()
//	result, err := client.RecoverKey(ctx, "config.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Recovered key: %s\n", result.PrivateKey.Text(16))
//
// # Input Formats
//
// LineParser reads the five-line format. JSONParser reads an object with
// s1, s2, r, h1 and h2 fields:
//
//	client := noncereuse.NewClient().WithParser(&noncereuse.JSONParser{})
//
// # Errors
//
// Malformed input is reported as *InputError (see IsInputError) and a
// non-invertible denominator as *PreconditionError (see IsPreconditionError).
// A successful result only means the arithmetic completed: if the two
// signatures did not really share a nonce the returned k and d are garbage.
package noncereuse
