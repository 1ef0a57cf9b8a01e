// Package config loads the TOML configuration for goGoStyleBot
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"awesome-dragon.science/go/goGoStyleBot/pkg/format/styler"
	"awesome-dragon.science/go/goGoStyleBot/pkg/glyph"
	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
)

// Config is the main config struct
type Config struct {
	OriginalPath string `toml:"-"`

	Log     Log     `toml:"log"`
	Styler  Styler  `toml:"styler"`
	Console Console `toml:"console"`

	logLevel    int
	replaceMode styler.ReplaceMode
	disabled    []glyph.Style
}

// Log holds logging settings
type Log struct {
	Level      string `toml:"level" default:"info" comment:"trace, debug, info, warn, error, crit or panic"`
	Timestamps bool   `toml:"timestamps" default:"true"`
	ShowFile   bool   `toml:"show_file"`
}

// Styler holds settings for style command handling
type Styler struct {
	ReplaceMode string   `toml:"replace_mode" default:"first" comment:"first or splice"`
	Disabled    []string `toml:"disabled" comment:"style tokens to leave alone"`
}

// Console holds settings for the interactive console
type Console struct {
	Prompt string `toml:"prompt" default:"> "`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	out := &Config{
		Log:     Log{Level: "info", Timestamps: true},
		Styler:  Styler{ReplaceMode: "first"},
		Console: Console{Prompt: "> "},
	}

	if err := out.validate(); err != nil {
		panic(fmt.Sprintf("default config is invalid: %s", err))
	}

	return out
}

// GetConfig fetches the config located at the given path. If nothing exists at path, Default is returned
func GetConfig(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		out := Default()
		out.OriginalPath = path

		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not read or parse config file: %w", err)
	}

	out, err := makeConfig(tree)
	if err != nil {
		return nil, err
	}

	out.OriginalPath = path

	return out, nil
}

// Parse parses a config from a TOML string
func Parse(data string) (*Config, error) {
	tree, err := toml.Load(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	return makeConfig(tree)
}

func makeConfig(tree *toml.Tree) (*Config, error) {
	out := new(Config)
	if err := tree.Unmarshal(out); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := out.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return out, nil
}

func (c *Config) validate() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}

	mode, err := styler.ParseReplaceMode(c.Styler.ReplaceMode)
	if err != nil {
		return err
	}

	var disabled []glyph.Style

	for _, tok := range c.Styler.Disabled {
		s, ok := glyph.ParseStyle(tok)
		if !ok {
			return fmt.Errorf("cannot disable unknown style %q", tok)
		}

		disabled = append(disabled, s)
	}

	c.logLevel, c.replaceMode, c.disabled = level, mode, disabled

	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() int { return c.logLevel }

// LogFlags returns the log.Logger flags the config asks for
func (c *Config) LogFlags() int {
	flags := 0
	if c.Log.Timestamps {
		flags |= log.FTimestamp
	}

	if c.Log.ShowFile {
		flags |= log.FShowFile
	}

	return flags
}

// ReplaceMode returns the parsed replace mode
func (c *Config) ReplaceMode() styler.ReplaceMode { return c.replaceMode }

// SetReplaceMode overrides the configured replace mode, for use by command line flags
func (c *Config) SetReplaceMode(mode string) error {
	m, err := styler.ParseReplaceMode(mode)
	if err != nil {
		return err
	}

	c.Styler.ReplaceMode, c.replaceMode = m.String(), m

	return nil
}

// DisabledStyles returns the parsed list of disabled styles
func (c *Config) DisabledStyles() []glyph.Style { return c.disabled }
