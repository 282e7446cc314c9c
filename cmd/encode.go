package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:     "encode <file>",
	Aliases: []string{"codificar"},
	Short:   "Encode a file into <file>.hamming",
	Args:    cobra.ExactArgs(1),
	RunE:    encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	out, report, err := codec.EncodeFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[OK] encoded file: %s\n", out)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", report)
	}
	return nil
}
