package main

import (
	"testing"

	"github.com/lgbarn/chess-notation-go/internal/config"
)

// saveRestoreBool sets a bool flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(noTags, false)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyTagOutputFlags(t *testing.T) {
	tests := []struct {
		name     string
		noTags   bool
		sevenTag bool
		want     config.TagOutputForm
	}{
		{"defaults to AllTags", false, false, config.AllTags},
		{"sevenTagOnly sets SevenTagRoster", false, true, config.SevenTagRoster},
		{"noTags sets NoTags", true, false, config.NoTags},
		{"noTags wins", true, true, config.NoTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(noTags, tt.noTags)()
			defer saveRestoreBool(sevenTagOnly, tt.sevenTag)()
			cfg := config.NewConfig()
			applyTagOutputFlags(cfg)
			if cfg.Output.TagFormat != tt.want {
				t.Errorf("TagFormat = %d; want %d", cfg.Output.TagFormat, tt.want)
			}
		})
	}
}

func TestApplyContentFlags(t *testing.T) {
	defer saveRestoreBool(noComments, true)()
	defer saveRestoreBool(noNAGs, true)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreInt(lineLength, 120)()

	cfg := config.NewConfig()
	applyContentFlags(cfg)

	if cfg.Output.KeepComments {
		t.Error("KeepComments should be false with -C")
	}
	if cfg.Output.KeepNAGs {
		t.Error("KeepNAGs should be false with -N")
	}
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be true with -J")
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d; want 120", cfg.Output.MaxLineLength)
	}
}

func TestApplyContentFlags_IgnoresBadLineLength(t *testing.T) {
	defer saveRestoreInt(lineLength, -5)()

	cfg := config.NewConfig()
	applyContentFlags(cfg)
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d; want default 80", cfg.Output.MaxLineLength)
	}
}

func TestApplyOutputFormatFlags(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		defer saveRestoreBool(summaryOutput, true)()
		cfg := config.NewConfig()
		applyOutputFormatFlags(cfg)
		if cfg.Output.Format != config.Summary {
			t.Errorf("Format = %d; want Summary", cfg.Output.Format)
		}
	})

	t.Run("default", func(t *testing.T) {
		defer saveRestoreBool(summaryOutput, false)()
		cfg := config.NewConfig()
		applyOutputFormatFlags(cfg)
		if cfg.Output.Format != config.PGN {
			t.Errorf("Format = %d; want PGN", cfg.Output.Format)
		}
	})
}

func TestApplyInputFlags(t *testing.T) {
	defer saveRestoreBool(fenInput, true)()
	defer saveRestoreBool(latin1, true)()

	cfg := config.NewConfig()
	applyInputFlags(cfg)
	if cfg.Input.Mode != config.BoardInput {
		t.Errorf("Mode = %d; want BoardInput", cfg.Input.Mode)
	}
	if cfg.Input.Encoding != config.Latin1 {
		t.Errorf("Encoding = %d; want Latin1", cfg.Input.Encoding)
	}
}

func TestApplyPlyBoundsFlags(t *testing.T) {
	tests := []struct {
		name      string
		min, max  int
		wantCheck bool
		wantMin   uint
		wantMax   uint
	}{
		{"no bounds", 0, 0, false, 0, 0},
		{"both bounds", 10, 40, true, 10, 40},
		{"upper only", 0, 20, true, 0, 20},
		{"lower only is open ended", 30, 0, true, 30, ^uint(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(minPly, tt.min)()
			defer saveRestoreInt(maxPly, tt.max)()

			cfg := config.NewConfig()
			applyPlyBoundsFlags(cfg)
			if cfg.Filter.CheckPlyBounds != tt.wantCheck {
				t.Fatalf("CheckPlyBounds = %v; want %v", cfg.Filter.CheckPlyBounds, tt.wantCheck)
			}
			if cfg.Filter.MinPlies != tt.wantMin || cfg.Filter.MaxPlies != tt.wantMax {
				t.Errorf("bounds = %d..%d; want %d..%d", cfg.Filter.MinPlies, cfg.Filter.MaxPlies, tt.wantMin, tt.wantMax)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestApplyFilterAndAnnotationFlags(t *testing.T) {
	defer saveRestoreString(resultFilter, "0-1")()
	defer saveRestoreBool(requireRoster, true)()
	defer saveRestoreBool(addPlyCount, true)()
	defer saveRestoreBool(fixResultTags, true)()

	cfg := config.NewConfig()
	applyFilterFlags(cfg)
	applyAnnotationFlags(cfg)

	if cfg.Filter.Result != "0-1" || !cfg.Filter.RequireRoster {
		t.Errorf("Filter = %+v; want result 0-1 with roster", cfg.Filter)
	}
	if !cfg.Annotation.AddPlyCount || !cfg.Annotation.FixResultTags {
		t.Errorf("Annotation = %+v; want both enabled", cfg.Annotation)
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(exactDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch || cfg.Duplicate.MaxCapacity != 500 {
		t.Errorf("Duplicate = %+v; want suppress, exact, capacity 500", cfg.Duplicate)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name           string
		quiet, verbose bool
		want           int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_StopAfterAndJSONLines(t *testing.T) {
	defer saveRestoreInt(stopAfter, 3)()
	defer saveRestoreBool(jsonLines, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.StopAfter != 3 {
		t.Errorf("StopAfter = %d; want 3", cfg.StopAfter)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.JSONLines {
		t.Errorf("Output = %+v; want JSON lines", cfg.Output)
	}
}
