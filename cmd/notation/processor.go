// processor.go - Input loading, parsing and output
package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/hashing"
	"github.com/lgbarn/chess-notation-go/internal/input"
	"github.com/lgbarn/chess-notation-go/internal/matching"
	"github.com/lgbarn/chess-notation-go/internal/output"
	"github.com/lgbarn/chess-notation-go/internal/worker"
)

// source is one decoded input.
type source struct {
	name string
	text string
}

// stats counts what happened to the inputs.
type stats struct {
	games      int
	boards     int
	output     int
	duplicates int
	filtered   int
	errors     int
}

// ProcessingContext holds all processing state.
// NOT thread-safe: results are consumed by a single goroutine.
type ProcessingContext struct {
	cfg        *config.Config
	tags       *matching.TagMatcher
	detector   *hashing.DuplicateDetector
	out        output.Writer
	duplicates output.Writer
}

// NewProcessingContext creates the writers and the duplicate detector
// the configuration asks for.
func NewProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg: cfg,
		out: output.NewWriter(cfg.OutputFile, cfg.Output),
	}
	if cfg.Duplicate.Enabled() {
		ctx.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.duplicates = output.NewWriter(cfg.Duplicate.DuplicateFile, cfg.Output)
	}
	return ctx
}

// run loads, parses and writes every input. With no names the input is
// read from stdin.
func run(ctx context.Context, pc *ProcessingContext, names []string, stdin io.Reader) (stats, error) {
	cfg := pc.cfg
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var sources []source
	if len(names) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return stats{}, fmt.Errorf("reading stdin: %w", err)
		}
		text, err := input.Decode(data, cfg.Input.Encoding)
		if err != nil {
			return stats{}, err
		}
		sources = []source{{name: "stdin", text: text}}
	} else {
		var err error
		sources, err = loadSources(ctx, names, cfg.Input.Encoding, workers)
		if err != nil {
			return stats{}, err
		}
	}

	var st stats
	var werr error
	worker.Run(workItems(sources, cfg.Input.Mode), workers, worker.ParseFunc(cfg.Input.Mode),
		func(r worker.ProcessResult) bool {
			werr = pc.handleResult(r, &st)
			return werr == nil && !pc.limitReached(&st)
		})
	if werr != nil {
		return st, werr
	}
	return st, pc.Close()
}

// loadSources reads the named files in parallel, at most limit at a time.
// The result keeps the order of names.
func loadSources(ctx context.Context, names []string, enc config.Encoding, limit int) ([]source, error) {
	sources := make([]source, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := input.ReadFile(name, enc)
			if err != nil {
				return err
			}
			sources[i] = source{name: name, text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

// workItems turns sources into parse jobs: one per file for games, one
// per non-blank line for boards.
func workItems(sources []source, mode config.InputMode) []worker.WorkItem {
	var items []worker.WorkItem
	for _, src := range sources {
		if mode != config.BoardInput {
			items = append(items, worker.WorkItem{Index: len(items), Name: src.name, Text: src.text})
			continue
		}
		for _, line := range input.Lines(src.text) {
			items = append(items, worker.WorkItem{
				Index: len(items),
				Name:  src.name,
				Line:  line.Number,
				Text:  line.Text,
			})
		}
	}
	return items
}

// handleResult writes one parse result. Parse errors are logged and
// counted; only write errors stop processing.
func (pc *ProcessingContext) handleResult(r worker.ProcessResult, st *stats) error {
	if r.Error != nil {
		st.errors++
		fmt.Fprintf(pc.cfg.LogFile, "%v\n", r.Error)
		return nil
	}

	if r.Board != nil {
		return pc.handleBoard(r.Board, st)
	}

	if pc.cfg.Verbosity > 1 {
		fmt.Fprintf(pc.cfg.LogFile, "%s: %d game(s)\n", r.Name, len(r.Games))
	}
	for _, game := range r.Games {
		if pc.limitReached(st) {
			return nil
		}
		if err := pc.handleGame(game, st); err != nil {
			return err
		}
	}
	return nil
}

// limitReached reports whether -stopafter has been satisfied.
func (pc *ProcessingContext) limitReached(st *stats) bool {
	return pc.cfg.StopAfter > 0 && st.output >= pc.cfg.StopAfter
}

func (pc *ProcessingContext) handleGame(game *chess.Game, st *stats) error {
	st.games++
	if !pc.cfg.Filter.Matches(game) || (pc.tags != nil && !pc.tags.Matches(game)) {
		st.filtered++
		return nil
	}

	if !pc.cfg.Annotation.FixResultTags && pc.cfg.Verbosity > 0 && !game.ResultTagConsistent() {
		fmt.Fprintf(pc.cfg.LogFile, "Result tag %q does not match game result %s\n", game.GetTag("Result"), game.Result)
	}
	annotateGame(game, pc.cfg.Annotation)

	if pc.detector != nil && pc.detector.CheckAndAddGame(game) {
		st.duplicates++
		if pc.duplicates != nil {
			return pc.duplicates.WriteGame(game)
		}
		return nil
	}

	st.output++
	return pc.out.WriteGame(game)
}

func (pc *ProcessingContext) handleBoard(board *chess.BoardState, st *stats) error {
	st.boards++
	if pc.detector != nil && pc.detector.CheckAndAddBoard(board) {
		st.duplicates++
		if pc.duplicates != nil {
			return pc.duplicates.WriteBoard(board)
		}
		return nil
	}

	st.output++
	return pc.out.WriteBoard(board)
}

// Close flushes the output and duplicate writers.
func (pc *ProcessingContext) Close() error {
	if err := pc.out.Close(); err != nil {
		return err
	}
	if pc.duplicates != nil {
		return pc.duplicates.Close()
	}
	return nil
}

// annotateGame adds the tags requested on the command line.
func annotateGame(game *chess.Game, cfg config.AnnotationConfig) {
	if cfg.AddPlyCount {
		setTag(game, "PlyCount", strconv.Itoa(game.PlyCount()))
	}
	if cfg.FixResultTags && game.Result != chess.NoResult {
		setTag(game, "Result", game.Result.String())
	}
}

// setTag replaces the first value of a tag, or appends the tag.
func setTag(game *chess.Game, name, value string) {
	for i := range game.Tags {
		if game.Tags[i].Name == name {
			game.Tags[i].Value = value
			return
		}
	}
	game.AppendTag(name, value)
}
