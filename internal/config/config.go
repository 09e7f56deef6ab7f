// Package config loads the optional fairdice.hcl configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "fairdice.hcl"

// Config is the complete configuration.
type Config struct {
	Dice  []string       `hcl:"dice,optional"`
	Log   *LogSettings   `hcl:"log,block"`
	UI    *UISettings    `hcl:"ui,block"`
	Audit *AuditSettings `hcl:"audit,block"`
}

// LogSettings controls the diagnostic logger. The game transcript is not
// affected by these.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings controls the terminal output.
type UISettings struct {
	Color *bool `hcl:"color,optional"`
}

// AuditSettings controls the verification transcript.
type AuditSettings struct {
	File string `hcl:"file,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	color := true
	return &Config{
		Log:   &LogSettings{Level: "warn"},
		UI:    &UISettings{Color: &color},
		Audit: &AuditSettings{},
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
	if c.Audit == nil {
		c.Audit = defaults.Audit
	}
}

// Validate checks values that the HCL schema cannot express.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// ColorEnabled reports whether styled output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.UI == nil || c.UI.Color == nil || *c.UI.Color
}
