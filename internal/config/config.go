// Package config loads the lagoon configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lagoon/digplan"
)

// ErrInvalidConfig marks a configuration file that parsed but holds bad values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Config is the resolved configuration of one run.
type Config struct {
	Modes   []digplan.Mode
	Compact bool
	Format  string
	Verify  Verify
	Render  Render
	Log     Log
}

// Verify controls the dense cross-check of every computed area.
type Verify struct {
	Enabled  bool
	MaxCells int
}

// Render bounds the size of grids the render command will draw.
type Render struct {
	MaxCells int
}

// Log mirrors logger.Config.
type Log struct {
	Debug bool
	Path  string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Modes:  []digplan.Mode{digplan.ModePlain, digplan.ModeHex},
		Format: FormatPlain,
		Verify: Verify{MaxCells: 1_000_000},
		Render: Render{MaxCells: 10_000},
	}
}

// FieldError names the offending key of a rejected configuration.
type FieldError struct {
	Path  string
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s: %s", e.Path, e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidConfig
}

func invalidField(path, field, msg string) error {
	return &FieldError{Path: path, Field: field, Msg: msg}
}
