package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultServerURL = "http://localhost:8080"

	formatText = "text"
	formatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// LoadConfig resolves settings from flags, then RSQUARE_* environment
// variables, then defaults
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RSQUARE")
	v.SetDefault("server", defaultServerURL)
	v.SetDefault("output", formatText)
	if err := v.BindEnv("server"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("output"); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("server", flags.Lookup("server")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("output", flags.Lookup("output")); err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerURL: v.GetString("server"),
		Output:    v.GetString("output"),
	}
	if cfg.Output != formatText && cfg.Output != formatJSON {
		return nil, fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
	}
	return cfg, nil
}
