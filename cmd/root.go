package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/harlequix/hamming3126/hamming"
	log "github.com/harlequix/hamming3126/log"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	verbose     bool
	profileMode string
	profiler    interface{ Stop() }
	overrides   hamming.Config
)

var rootCmd = &cobra.Command{
	Use:   "hamming3126",
	Short: "Hamming(31,26) file encoder and decoder",
	Long: `hamming3126 encodes any file into 31-bit Hamming codewords written as
text, and decodes them back while correcting one flipped bit per codeword.

  hamming3126 encode report.pdf          -> report.pdf.hamming
  hamming3126 decode report.pdf.hamming  -> report.pdf.dec`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log corrections and progress")
	rootCmd.PersistentFlags().String("trace", "", "mirror trace/debug/warn logs as JSON into <path>.trace and <path>.warn")
	rootCmd.PersistentFlags().Int("workers", 0, "parallel block workers (0 = config default)")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the working directory")

	viper.BindPFlag("TraceFile", rootCmd.PersistentFlags().Lookup("trace"))
}

func setup(cmd *cobra.Command, args []string) error {
	if err := hamming.SetConfig(cfgFile); err != nil {
		return err
	}
	workers, _ := cmd.Flags().GetInt("workers")
	overrides = hamming.Config{Workers: workers}
	config, err := hamming.LoadConfig()
	if err != nil {
		return err
	}
	if config, err = config.Merge(overrides); err != nil {
		return err
	}
	level := config.LogLevel
	if verbose {
		level = "debug"
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	if config.TraceFile != "" {
		console, _ := logrus.ParseLevel(level)
		log.EnableTrace(config.TraceFile, console)
	}
	switch profileMode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}
	return nil
}

// stopProfiler flushes a running profile. Cobra skips post-run hooks when a
// command fails, so Execute calls this itself.
func stopProfiler() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func newCodec() (*hamming.Codec, error) {
	return hamming.New(overrides)
}

func execute(ctx context.Context) error {
	defer stopProfiler()
	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
