package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/config"
)

// Writer is the interface for writing parsed values to output.
// Different implementations handle different output formats.
type Writer interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *chess.Game) error

	// WriteBoard writes a single board state to the output.
	WriteBoard(board *chess.BoardState) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg config.OutputConfig) Writer {
	switch {
	case cfg.JSONLines:
		return NewJSONWriterSingle(w, cfg)
	case cfg.JSONFormat:
		return NewJSONWriter(w, cfg)
	case cfg.Format == config.Summary:
		return NewSummaryWriter(w)
	default:
		return NewPGNWriter(w, cfg)
	}
}

// PGNWriter writes games in PGN format and boards as FEN lines.
type PGNWriter struct {
	w   io.Writer
	cfg config.OutputConfig
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg config.OutputConfig) *PGNWriter {
	return &PGNWriter{w: w, cfg: cfg}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	return WritePGN(pw.w, game, pw.cfg)
}

// WriteBoard writes a board as a FEN line.
func (pw *PGNWriter) WriteBoard(board *chess.BoardState) error {
	return WriteFEN(pw.w, board)
}

// Flush is a no-op: PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games and boards in JSON format.
// It buffers values and writes them as one object on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    config.OutputConfig
	games  []*chess.Game
	boards []*chess.BoardState
	single bool // If true, write each value immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches values and writes them on Close().
func NewJSONWriter(w io.Writer, cfg config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each value
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer, cfg config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	if jw.single {
		return encodeJSONLine(jw.w, GameToJSON(game, jw.cfg))
	}
	jw.games = append(jw.games, game)
	return nil
}

// WriteBoard buffers a board for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteBoard(board *chess.BoardState) error {
	if jw.single {
		return encodeJSONLine(jw.w, BoardToJSON(board))
	}
	jw.boards = append(jw.boards, board)
	return nil
}

// Flush writes all buffered values as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.games) == 0 && len(jw.boards) == 0) {
		return nil
	}

	out := &JSONOutput{}
	for _, game := range jw.games {
		out.Games = append(out.Games, GameToJSON(game, jw.cfg))
	}
	for _, board := range jw.boards {
		out.Boards = append(out.Boards, BoardToJSON(board))
	}

	err := encodeJSON(jw.w, out)

	jw.games = jw.games[:0]
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// SummaryWriter writes one line per value:
//
//	White - Black (Event) Result, N plies
//	FEN: <colour> to move, move N
type SummaryWriter struct {
	w io.Writer
}

// NewSummaryWriter creates a new summary writer.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{w: w}
}

// WriteGame writes a one-line game summary.
func (sw *SummaryWriter) WriteGame(game *chess.Game) error {
	_, err := fmt.Fprintln(sw.w, GameSummary(game))
	return err
}

// WriteBoard writes a one-line board summary.
func (sw *SummaryWriter) WriteBoard(board *chess.BoardState) error {
	_, err := fmt.Fprintln(sw.w, BoardSummary(board))
	return err
}

// Flush is a no-op.
func (sw *SummaryWriter) Flush() error {
	return nil
}

// Close closes the summary writer.
func (sw *SummaryWriter) Close() error {
	return nil
}

// GameSummary returns the one-line summary of a game. Missing player names
// are shown as "?".
func GameSummary(game *chess.Game) string {
	s := orUnknown(game.White()) + " - " + orUnknown(game.Black())
	if event := game.Event(); event != "" {
		s += " (" + event + ")"
	}
	return fmt.Sprintf("%s %s, %d plies", s, game.Result, game.PlyCount())
}

// BoardSummary returns the one-line summary of a board.
func BoardSummary(board *chess.BoardState) string {
	return fmt.Sprintf("%s: %s to move, move %d", board.Placement(), board.ToMove, board.MoveNumber)
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
