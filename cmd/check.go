package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify a .hamming file without writing output",
	Long: `check decodes the file in memory and reports how many codewords needed a
correction. A word with two flipped bits is indistinguishable from a word with
one, so a clean report does not prove the payload is intact.`,
	Args: cobra.ExactArgs(1),
	RunE: check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	report, err := codec.Check(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[OK] %s: %s\n", args[0], report)
	if verbose {
		for _, c := range report.Corrections {
			fmt.Fprintf(cmd.OutOrStdout(), "  word %d: bit %d\n", c.Word, c.Position)
		}
	}
	return nil
}
