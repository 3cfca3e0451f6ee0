package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "recovery",
		Short:         "Recover an ECDSA private key from two secp256k1 signatures that reuse a nonce",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	newLogger := func() zerolog.Logger {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
			Level(level).
			With().Timestamp().Logger()
	}

	root.AddCommand(
		newRecoverCommand(newLogger),
		newFixtureCommand(newLogger),
	)
	return root
}
