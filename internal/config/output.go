package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects PGN/FEN text or one-line summaries
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN move text
	MaxLineLength uint

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONLines writes one JSON object per line as values arrive
	JSONLines bool

	// KeepNAGs controls whether annotation glyphs are written
	KeepNAGs bool

	// KeepComments controls whether comments are kept in output
	KeepComments bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        PGN,
		MaxLineLength: 80,
		KeepNAGs:      true,
		KeepComments:  true,
		TagFormat:     AllTags,
	}
}
