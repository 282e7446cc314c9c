package hamming

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/viper"
)

type Config struct {
	Workers       int
	EncodedSuffix string
	DecodedExt    string
	NoisySuffix   string
	LogLevel      string
	TraceFile     string
}

func init() {
	viper.SetDefault("Workers", runtime.NumCPU())
	viper.SetDefault("EncodedSuffix", ".hamming")
	viper.SetDefault("DecodedExt", ".dec")
	viper.SetDefault("NoisySuffix", ".noisy")
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("TraceFile", "")

	viper.SetEnvPrefix("HAMMING")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// SetConfig reads an optional config file on top of the defaults.
func SetConfig(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func DefaultConfig() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		EncodedSuffix: ".hamming",
		DecodedExt:    ".dec",
		NoisySuffix:   ".noisy",
		LogLevel:      "warn",
	}
}

// Merge returns a copy of the config with every non-zero field of override applied.
func (self Config) Merge(override Config) (Config, error) {
	out := self
	if err := copier.CopyWithOption(&out, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return self, err
	}
	return out, out.Validate()
}

func (self Config) Validate() error {
	if self.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", self.Workers)
	}
	if self.EncodedSuffix == "" {
		return fmt.Errorf("encoded suffix must not be empty")
	}
	if !strings.HasPrefix(self.DecodedExt, ".") {
		return fmt.Errorf("decoded extension %q must start with a dot", self.DecodedExt)
	}
	return nil
}
