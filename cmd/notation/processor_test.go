package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/output"
	"github.com/lgbarn/chess-notation-go/internal/testutil"
	"github.com/lgbarn/chess-notation-go/internal/worker"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertStats(t *testing.T, got, want stats) {
	t.Helper()
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func testConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		WithWorkers(2).
		Build()
}

func TestRun_GamesKeepFileOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pgn", "[Event \"E\"]\n[White \"A\"]\n[Black \"B\"]\n\n1. e4 e5 1-0\n")
	b := writeFile(t, dir, "b.pgn", "1. d4 d5 2. c4 0-1\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.Summary

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{a, b}, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, out.String(), "A - B (E) 1-0, 2 plies\n? - ? 0-1, 3 plies\n")
	assertStats(t, st, stats{games: 2, output: 2})
	testutil.AssertEqual(t, log.String(), "")
}

func TestRun_ParseErrorDoesNotStopOtherFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.pgn", "1. e4 e5 1-0")
	bad := writeFile(t, dir, "bad.pgn", "1. e4 e5")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.Summary

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{bad, good}, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, st.errors, 1)
	testutil.AssertEqual(t, st.output, 1)
	testutil.AssertContains(t, log.String(), bad)
	testutil.AssertContains(t, log.String(), "incomplete input")
}

func TestRun_Boards(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "boards.fen", "# start positions\n"+
		chess.InitialFEN+"\n"+
		"8/8/8/8/8/8/8/7 w - - 0 1\n"+
		"\n"+
		chess.InitialFEN+"\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Input.Mode = config.BoardInput
	cfg.Duplicate.Suppress = true

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{path}, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, out.String(), chess.InitialFEN+"\n")
	assertStats(t, st, stats{boards: 2, output: 1, duplicates: 1, errors: 1})
	testutil.AssertContains(t, log.String(), path+" #3")
	testutil.AssertContains(t, log.String(), "structural error")
}

func TestRun_AnnotationsAndFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "games.pgn", "[Result \"*\"]\n\n1. e4 e5 2. Nf3 1-0\n\n1. d4 d5 0-1\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Filter.Result = "1-0"
	cfg.Annotation.AddPlyCount = true
	cfg.Annotation.FixResultTags = true

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{path}, nil)
	testutil.AssertNoError(t, err)

	want := `[Result "1-0"]
[PlyCount "3"]

1. e4 e5 2. Nf3 1-0

`
	testutil.AssertEqual(t, out.String(), want)
	assertStats(t, st, stats{games: 2, output: 1, filtered: 1})
}

func TestRun_DuplicateFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pgn", "[White \"X\"]\n1. e4 e5 1-0")
	b := writeFile(t, dir, "b.pgn", "[White \"Y\"]\n1. e4 {same moves} e5 1-0")

	var out, log, dups bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.Summary
	cfg.Duplicate.DuplicateFile = &dups

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{a, b}, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, out.String(), "X - ? 1-0, 2 plies\n")
	testutil.AssertEqual(t, dups.String(), "Y - ? 1-0, 2 plies\n")
	testutil.AssertEqual(t, st.duplicates, 1)
}

func TestRun_StdinJSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.JSONFormat = true

	stdin := strings.NewReader("1. e4 e5 1-0\n1. d4 d5 0-1\n")
	st, err := run(context.Background(), NewProcessingContext(cfg), nil, stdin)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.output, 2)

	var got output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(got.Games))
	}
	testutil.AssertEqual(t, got.Games[1].Result, "0-1")
}

func TestRun_StopAfter(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pgn", "1. e4 e5 1-0\n1. d4 d5 0-1\n")
	b := writeFile(t, dir, "b.pgn", "1. c4 c5 1/2-1/2\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.Summary
	cfg.StopAfter = 1

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{a, b}, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "? - ? 1-0, 2 plies\n")
	assertStats(t, st, stats{games: 1, output: 1})
}

func TestRun_StopAfterBoards(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "boards.fen", strings.Repeat(chess.InitialFEN+"\n", 50))

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Input.Mode = config.BoardInput
	cfg.StopAfter = 3

	st, err := run(context.Background(), NewProcessingContext(cfg), []string{path}, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), strings.Repeat(chess.InitialFEN+"\n", 3))
	assertStats(t, st, stats{boards: 3, output: 3})
}

func TestRun_ResultTagMismatchWarning(t *testing.T) {
	tests := []struct {
		name    string
		fix     bool
		wantLog string
	}{
		{"warns", false, "Result tag \"0-1\" does not match game result 1-0\n"},
		{"silent when fixing", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, log bytes.Buffer
			cfg := testConfig(&out, &log)
			cfg.Output.Format = config.Summary
			cfg.Annotation.FixResultTags = tt.fix

			stdin := strings.NewReader("[Result \"0-1\"]\n1. e4 1-0")
			_, err := run(context.Background(), NewProcessingContext(cfg), nil, stdin)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, log.String(), tt.wantLog)
		})
	}
}

func TestRun_StdinLatin1Fallback(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.Summary

	stdin := bytes.NewReader([]byte("[White \"M\xfcller\"]\n1. e4 1-0"))
	_, err := run(context.Background(), NewProcessingContext(cfg), nil, stdin)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "M\u00fcller - ? 1-0, 1 plies\n")
}

func TestRun_VerboseListsInputs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "two.pgn", "1. e4 e5 1-0 1. c4 c5 1/2-1/2")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Verbosity = 2

	_, err := run(context.Background(), NewProcessingContext(cfg), []string{path}, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, log.String(), path+": 2 game(s)\n")
}

func TestRun_MissingFile(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)

	missing := filepath.Join(t.TempDir(), "missing.pgn")
	if _, err := run(context.Background(), NewProcessingContext(cfg), []string{missing}, nil); err == nil {
		t.Fatal("run succeeded on a missing file")
	}
	testutil.AssertEqual(t, out.Len(), 0)
}

func TestWorkItems(t *testing.T) {
	sources := []source{
		{name: "a", text: "x\n\ny"},
		{name: "b", text: "z"},
	}

	games := workItems(sources, config.GameInput)
	testutil.AssertEqual(t, games, []worker.WorkItem{
		{Index: 0, Name: "a", Text: "x\n\ny"},
		{Index: 1, Name: "b", Text: "z"},
	})

	boards := workItems(sources, config.BoardInput)
	testutil.AssertEqual(t, boards, []worker.WorkItem{
		{Index: 0, Name: "a", Line: 1, Text: "x"},
		{Index: 1, Name: "a", Line: 3, Text: "y"},
		{Index: 2, Name: "b", Line: 1, Text: "z"},
	})
}

func TestAnnotateGame_ReplacesExistingTags(t *testing.T) {
	game := testutil.MustParseGame(t, "[PlyCount \"99\"]\n[Result \"0-1\"]\n1. e4 1-0")
	annotateGame(game, config.AnnotationConfig{AddPlyCount: true, FixResultTags: true})

	testutil.AssertEqual(t, game.Tags, []chess.Tag{
		{Name: "PlyCount", Value: "1"},
		{Name: "Result", Value: "1-0"},
	})
}

func TestReportStatistics(t *testing.T) {
	tests := []struct {
		name string
		st   stats
		want string
	}{
		{"games", stats{games: 3, output: 3}, "3 game(s) output out of 3.\n"},
		{"duplicates", stats{games: 4, output: 2, duplicates: 1, filtered: 1}, "2 game(s) output, 1 duplicate(s), 1 filtered out of 4.\n"},
		{"boards", stats{boards: 2, output: 2}, "2 board(s) output, 0 duplicate(s) out of 2.\n"},
		{"errors", stats{errors: 2}, "0 game(s) output out of 0.\n2 input(s) failed to parse.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportStatistics(&buf, tt.st)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}
