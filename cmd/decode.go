package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:     "decode <file>",
	Aliases: []string{"decodificar"},
	Short:   "Decode a .hamming file, correcting single bit errors",
	Args:    cobra.ExactArgs(1),
	RunE:    decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	out, report, err := codec.DecodeFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[OK] decoded file: %s\n", out)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", report)
	}
	return nil
}
