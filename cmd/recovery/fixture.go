package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecdsa-nonce-reuse/internal/fixture"
)

func newFixtureCommand(newLogger func() zerolog.Logger) *cobra.Command {
	var (
		privateKey string
		nonce      string
		h1         string
		h2         string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Sign two hashes with a chosen key and reused nonce and write the recover input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]*big.Int, 4)
			for i, f := range []struct{ name, value string }{
				{"private-key", privateKey},
				{"nonce", nonce},
				{"h1", h1},
				{"h2", h2},
			} {
				v, ok := new(big.Int).SetString(strings.TrimPrefix(f.value, "0x"), 16)
				if !ok || v.Sign() < 0 {
					return fmt.Errorf("--%s: invalid hexadecimal value %q", f.name, f.value)
				}
				values[i] = v
			}

			vector, err := fixture.NewVector(values[0], values[1], values[2], values[3])
			if err != nil {
				return errors.Wrap(err, "failed to build fixture")
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "failed to create output")
				}
				defer file.Close()
				w = file
			}

			if err := vector.WriteLines(w); err != nil {
				return errors.Wrap(err, "failed to write fixture")
			}

			logger := newLogger()
			logger.Debug().Str("r", vector.R.Text(16)).Str("output", output).Msg("wrote reused-nonce fixture")
			return nil
		},
	}

	cmd.Flags().StringVar(&privateKey, "private-key", "", "Private key d in hex")
	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce k reused for both signatures, in hex")
	cmd.Flags().StringVar(&h1, "h1", "", "First message hash in hex")
	cmd.Flags().StringVar(&h2, "h2", "", "Second message hash in hex")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	for _, name := range []string{"private-key", "nonce", "h1", "h2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
