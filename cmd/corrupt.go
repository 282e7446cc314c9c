package cmd

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/harlequix/hamming3126/noise"
	"github.com/spf13/cobra"
)

var corruptCmd = &cobra.Command{
	Use:   "corrupt <file>",
	Short: "Flip bits in a .hamming file to exercise the decoder",
	Args:  cobra.ExactArgs(1),
	RunE:  corrupt,
}

func init() {
	corruptCmd.Flags().String("strategy", noise.Single, "single, double or pattern")
	corruptCmd.Flags().Float64("rate", 1, "probability that a codeword is corrupted")
	corruptCmd.Flags().Int64("seed", 0, "random seed (0 = time based)")
	corruptCmd.Flags().IntSlice("positions", nil, "1-based bit positions for the pattern strategy")
	rootCmd.AddCommand(corruptCmd)
}

func corrupt(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("strategy")
	rate, _ := cmd.Flags().GetFloat64("rate")
	seed, _ := cmd.Flags().GetInt64("seed")
	positions, _ := cmd.Flags().GetIntSlice("positions")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	strategy, err := noise.NewStrategy(name, positions)
	if err != nil {
		return err
	}
	injector, err := noise.NewInjector(strategy, rate, seed)
	if err != nil {
		return err
	}
	codec, err := newCodec()
	if err != nil {
		return err
	}
	text, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}
	noisy, flips, err := injector.CorruptText(string(text))
	if err != nil {
		return err
	}
	out := args[0] + codec.Config().NoisySuffix
	if err := ioutil.WriteFile(out, []byte(noisy), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[OK] corrupted %d words: %s\n", len(flips), out)
	return nil
}
