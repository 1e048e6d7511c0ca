// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("logging: invalid config")

// Config holds logging configuration.
type Config struct {
	Level  string `koanf:"level" toml:"level" yaml:"level"`
	Format string `koanf:"format" toml:"format" yaml:"format"`
}

// NewDefaultConfig returns info-level console logging.
func NewDefaultConfig() *Config {
	return &Config{Level: "info", Format: FormatConsole}
}

// Validate checks the level name and format.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("level %q: %w", c.Level, ErrInvalidConfig)
	}
	if c.Format != FormatJSON && c.Format != FormatConsole {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	return nil
}

// ZapLevel returns the parsed level, falling back to info.
func (c *Config) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}
