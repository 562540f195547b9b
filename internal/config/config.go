// Package config provides configuration for the notation tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-notation-go/internal/errors"
)

// OutputFormat selects how parsed values are written.
type OutputFormat int

const (
	PGN     OutputFormat = iota // Games as PGN, boards as FEN
	Summary                     // One line per game or board
)

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// InputMode selects the grammar applied to input files.
type InputMode int

const (
	GameInput  InputMode = iota // PGN game text
	BoardInput                  // One FEN board per line
)

// Encoding is the character encoding of input files.
type Encoding int

const (
	UTF8 Encoding = iota
	Latin1
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=counts, 2=running commentary

	// Number of parallel parsers; 0 means one per CPU.
	Workers int

	// Stop after this many values have been output (0 = no limit)
	StopAfter int

	Output     OutputConfig
	Input      InputConfig
	Filter     FilterConfig
	Duplicate  DuplicateConfig
	Annotation AnnotationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Input:      *NewInputConfig(),
		Filter:     *NewFilterConfig(),
		Duplicate:  *NewDuplicateConfig(),
		Annotation: *NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity (%d) must be 0, 1 or 2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StopAfter < 0 {
		return fmt.Errorf("stop after (%d) must not be negative: %w", c.StopAfter, errors.ErrInvalidConfig)
	}
	if c.Duplicate.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) must not be negative: %w", c.Duplicate.MaxCapacity, errors.ErrInvalidConfig)
	}
	return c.Filter.Validate()
}
