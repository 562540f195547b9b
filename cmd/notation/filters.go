// filters.go - Tag criteria setup
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/input"
	"github.com/lgbarn/chess-notation-go/internal/matching"
)

// setupTagMatcher builds the tag matcher from the command line, or returns
// nil when no tag criteria were given.
func setupTagMatcher(cfg *config.Config) *matching.TagMatcher {
	var criteria string
	if *tagFile != "" {
		text, err := input.ReadFile(*tagFile, cfg.Input.Encoding)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading tag file %s: %v\n", *tagFile, err)
			os.Exit(1)
		}
		criteria = text
	}

	tm, err := buildTagMatcher(criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in tag file %s: %v\n", *tagFile, err)
		os.Exit(1)
	}
	if tm.Len() == 0 {
		return nil
	}
	return tm
}

// buildTagMatcher combines criteria file text with the player flags.
func buildTagMatcher(criteria string) (*matching.TagMatcher, error) {
	tm := matching.NewTagMatcher()
	tm.SetMatchAny(*matchAny)

	if err := tm.ParseCriteria(criteria); err != nil {
		return nil, err
	}
	if *playerFilter != "" {
		tm.AddPlayer(*playerFilter, *useSoundex)
	}
	if *whiteFilter != "" {
		tm.AddWhite(*whiteFilter, *useSoundex)
	}
	if *blackFilter != "" {
		tm.AddBlack(*blackFilter, *useSoundex)
	}
	return tm, nil
}
