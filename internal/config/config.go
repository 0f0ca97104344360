// Package config loads optional HCL configuration for the fairplay CLI.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Invalid-input policies for the round controller.
const (
	PolicyReprompt = "reprompt"
	PolicyAbort    = "abort"
)

// Config is the complete fairplay configuration.
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings controls round behaviour.
type GameSettings struct {
	// Moves used when none are supplied on the command line.
	Moves []string `hcl:"moves,optional"`
	// InvalidInput is what happens on a bad selection: "reprompt" (default)
	// or "abort".
	InvalidInput string `hcl:"invalid_input,optional"`
	// TimeoutSeconds bounds the wait for player input. 0 blocks forever.
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`
}

// UISettings controls presentation.
type UISettings struct {
	NoColor  bool   `hcl:"no_color,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			InvalidInput: PolicyReprompt,
		},
		UI: UISettings{
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error: defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if cfg.Game.InvalidInput == "" {
		cfg.Game.InvalidInput = PolicyReprompt
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = "info"
	}

	if cfg.Game.InvalidInput != PolicyReprompt && cfg.Game.InvalidInput != PolicyAbort {
		return nil, fmt.Errorf("invalid_input must be %q or %q, got %q",
			PolicyReprompt, PolicyAbort, cfg.Game.InvalidInput)
	}
	if cfg.Game.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("timeout_seconds must not be negative, got %d", cfg.Game.TimeoutSeconds)
	}

	return &cfg, nil
}
