package noncereuse

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

// fixturesDir returns the repository fixtures directory.
func fixturesDir() string {
	return filepath.Join("..", "..", "fixtures")
}

// hexInt parses a hex test constant.
func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex constant %q", s)
	return v
}

// genScalar generates integers in [1, n-1] from four random 64-bit words.
func genScalar() gopter.Gen {
	nMinusOne := new(big.Int).Sub(secp256k1N, big.NewInt(1))
	return gen.SliceOfN(4, gen.UInt64()).Map(func(words []uint64) *big.Int {
		v := new(big.Int)
		for _, w := range words {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(w))
		}
		v.Mod(v, nMinusOne)
		return v.Add(v, big.NewInt(1))
	})
}

func testParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}
