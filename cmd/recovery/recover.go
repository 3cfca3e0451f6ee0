package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecdsa-nonce-reuse/pkg/noncereuse"
)

func newRecoverCommand(newLogger func() zerolog.Logger) *cobra.Command {
	var (
		input  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Derive the reused nonce k and private key d from five hex values",
		Long: `Reads s1, s2, r, h1 and h2 as hexadecimal values without a 0x prefix,
one per line (or as a JSON object with --format json), and prints the
recovered nonce k and private key d.

The output is only the private key if both signatures really reused the
same nonce; otherwise the arithmetic completes but the values are meaningless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var parser noncereuse.InputParser
			switch format {
			case "lines":
				parser = &noncereuse.LineParser{}
			case "json":
				parser = &noncereuse.JSONParser{}
			default:
				return fmt.Errorf("unknown format %q (want lines or json)", format)
			}

			client := noncereuse.NewClient().
				WithParser(parser).
				WithLogger(newLogger())

			result, err := client.RecoverKey(cmd.Context(), input)
			if err != nil {
				return err
			}
			return noncereuse.WriteReport(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "config.txt", "Path to the input file")
	cmd.Flags().StringVarP(&format, "format", "f", "lines", "Input format (lines or json)")
	return cmd
}
