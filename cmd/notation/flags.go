// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-notation-go/internal/config"
)

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	sevenTagOnly  = flag.Bool("7", false, "Output only the seven tag roster")
	noTags        = flag.Bool("notags", false, "Don't output any tags")
	lineLength    = flag.Int("w", 80, "Maximum line length")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	jsonLines     = flag.Bool("jsonl", false, "Output one JSON object per line")
	stopAfter     = flag.Int("stopafter", 0, "Stop after outputting N games or boards")
	summaryOutput = flag.Bool("summary", false, "Output one summary line per game or board")

	// Content options
	noComments = flag.Bool("C", false, "Don't output comments")
	noNAGs     = flag.Bool("N", false, "Don't output NAGs")

	// Input options
	fenInput   = flag.Bool("fen", false, "Input files hold one FEN board per line")
	latin1     = flag.Bool("latin1", false, "Decode input files as ISO 8859-1")
	numWorkers = flag.Int("workers", 0, "Number of parallel parsers (0 = one per CPU)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games and boards")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	exactDuplicates    = flag.Bool("exact", false, "Compare full positions and ply counts when detecting duplicates")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Tag criteria
	tagFile      = flag.String("t", "", "Tag criteria file for filtering")
	playerFilter = flag.String("p", "", "Filter by player name (either color)")
	whiteFilter  = flag.String("Tw", "", "Filter by White player")
	blackFilter  = flag.String("Tb", "", "Filter by Black player")
	useSoundex   = flag.Bool("S", false, "Use Soundex for player name matching")
	matchAny     = flag.Bool("any", false, "Output games matching any tag criterion instead of all")

	// Filtering options
	minPly        = flag.Int("minply", 0, "Minimum ply count")
	maxPly        = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	resultFilter  = flag.String("Tr", "", "Filter by result (1-0, 0-1, 1/2-1/2)")
	requireRoster = flag.Bool("roster", false, "Only output games carrying the seven tag roster")

	// Annotation
	addPlyCount   = flag.Bool("plycount", false, "Add PlyCount tag")
	fixResultTags = flag.Bool("fixresulttags", false, "Fix inconsistent result tags")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Report every input as it is parsed")

	// Help and version
	quiet   = flag.Bool("s", false, "Silent mode (no counts)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyTagOutputFlags(cfg)
	applyContentFlags(cfg)
	applyOutputFormatFlags(cfg)
	applyInputFlags(cfg)
	applyPlyBoundsFlags(cfg)
	applyAnnotationFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	cfg.Workers = *numWorkers
	cfg.StopAfter = *stopAfter
}

// applyTagOutputFlags configures tag output settings.
func applyTagOutputFlags(cfg *config.Config) {
	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepComments = !*noComments
	cfg.Output.KeepNAGs = !*noNAGs
	cfg.Output.JSONFormat = *jsonOutput || *jsonLines
	cfg.Output.JSONLines = *jsonLines
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyOutputFormatFlags configures the output format.
func applyOutputFormatFlags(cfg *config.Config) {
	if *summaryOutput {
		cfg.Output.Format = config.Summary
	} else {
		cfg.Output.Format = config.PGN
	}
}

func applyInputFlags(cfg *config.Config) {
	if *fenInput {
		cfg.Input.Mode = config.BoardInput
	}
	if *latin1 {
		cfg.Input.Encoding = config.Latin1
	}
}

// applyPlyBoundsFlags configures ply bounds. A missing upper bound means
// no limit.
func applyPlyBoundsFlags(cfg *config.Config) {
	if *minPly <= 0 && *maxPly <= 0 {
		return
	}

	cfg.Filter.CheckPlyBounds = true
	if *minPly > 0 {
		cfg.Filter.MinPlies = uint(*minPly)
	}
	if *maxPly > 0 {
		cfg.Filter.MaxPlies = uint(*maxPly)
	} else {
		cfg.Filter.MaxPlies = ^uint(0)
	}
}

// applyAnnotationFlags configures annotation and tag fixing settings.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddPlyCount = *addPlyCount
	cfg.Annotation.FixResultTags = *fixResultTags
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.Result = *resultFilter
	cfg.Filter.RequireRoster = *requireRoster
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
