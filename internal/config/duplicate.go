package config

import "io"

// DuplicateConfig holds settings for duplicate detection.
type DuplicateConfig struct {
	// Suppress drops games and boards already seen
	Suppress bool

	// ExactMatch also compares side to move, castling and en passant for
	// boards, and ply counts for games
	ExactMatch bool

	// DuplicateFile receives the suppressed duplicates, if set
	DuplicateFile io.Writer

	// MaxCapacity limits the number of remembered signatures (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether any duplicate detection is needed.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}
