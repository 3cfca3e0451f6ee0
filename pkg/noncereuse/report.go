package noncereuse

import (
	"fmt"
	"io"
)

// WriteReport prints k and d as lowercase hex without a 0x prefix or padding.
func WriteReport(w io.Writer, res *RecoveryResult) error {
	_, err := fmt.Fprintf(w,
		"Arithmetic completed for reused k and d (private key); correct only if the nonce was actually reused.\n"+
			"Reused k (hex): %s\n"+
			"Found d (private key) (hex): %s\n",
		res.Nonce.Text(16), res.PrivateKey.Text(16))
	return err
}
