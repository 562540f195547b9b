package config

import (
	"fmt"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/errors"
)

// FilterConfig holds settings for selecting which games are output.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	MinPlies       uint
	MaxPlies       uint

	// Result keeps only games with this result literal ("" matches all)
	Result string

	// RequireRoster keeps only games carrying the full seven tag roster
	RequireRoster bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values: filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("minimum plies (%d) > maximum plies (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	if f.Result != "" {
		if _, ok := chess.ParseResult(f.Result); !ok {
			return fmt.Errorf("unknown result %q: %w", f.Result, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// Matches reports whether a game passes the filter.
func (f *FilterConfig) Matches(g *chess.Game) bool {
	if f.CheckPlyBounds {
		plies := uint(g.PlyCount())
		if plies < f.MinPlies || plies > f.MaxPlies {
			return false
		}
	}
	if f.Result != "" && g.Result.String() != f.Result {
		return false
	}
	if f.RequireRoster && len(g.MissingRosterTags()) > 0 {
		return false
	}
	return true
}
