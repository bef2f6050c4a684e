// Package config provides configuration for chess-rules-go tools and game
// sessions.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Perft *PerftConfig
	Game  *GameConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Perft:      NewPerftConfig(),
		Game:       NewGameConfig(),
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	if c.Game != nil {
		if err := c.Game.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
