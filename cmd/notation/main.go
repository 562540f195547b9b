// notation parses chess games in PGN and boards in FEN, reports notation
// errors with their position, and writes the parsed values back out as PGN,
// FEN, JSON or one-line summaries.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-notation-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("notation version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pc := NewProcessingContext(cfg)
	pc.tags = setupTagMatcher(cfg)

	st, err := run(context.Background(), pc, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, st)
	}
	if st.errors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final counts.
func reportStatistics(w io.Writer, st stats) {
	switch {
	case st.boards > 0:
		fmt.Fprintf(w, "%d board(s) output, %d duplicate(s) out of %d.\n", st.output, st.duplicates, st.boards)
	case st.duplicates > 0 || st.filtered > 0:
		fmt.Fprintf(w, "%d game(s) output, %d duplicate(s), %d filtered out of %d.\n", st.output, st.duplicates, st.filtered, st.games)
	default:
		fmt.Fprintf(w, "%d game(s) output out of %d.\n", st.output, st.games)
	}
	if st.errors > 0 {
		fmt.Fprintf(w, "%d input(s) failed to parse.\n", st.errors)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: notation [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Parses chess games (PGN) or boards (FEN, one per line with -fen).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput:\n")
	fmt.Fprintf(os.Stderr, "  default   PGN for games, FEN for boards\n")
	fmt.Fprintf(os.Stderr, "  -J        JSON\n")
	fmt.Fprintf(os.Stderr, "  -jsonl    JSON, one object per line\n")
	fmt.Fprintf(os.Stderr, "  -summary  one line per game or board\n")
}
