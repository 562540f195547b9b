// Package output renders parsed games and boards as PGN, JSON or a
// one-line summary.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WritePGN writes a game as PGN: the tag section, a blank line, the
// wrapped move text ending in the result, and a blank line.
func WritePGN(w io.Writer, game *chess.Game, cfg config.OutputConfig) error {
	wroteTags, err := writeTags(w, game, cfg.TagFormat)
	if err != nil {
		return err
	}
	if wroteTags {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	ow := NewOutputWriter(w, int(cfg.MaxLineLength))
	writeMoves(ow, game, cfg)
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// FormatPGN returns the PGN text of a game.
func FormatPGN(game *chess.Game, cfg config.OutputConfig) string {
	var sb strings.Builder
	_ = WritePGN(&sb, game, cfg)
	return sb.String()
}

// writeTags outputs the game tags and reports whether any were written.
func writeTags(w io.Writer, game *chess.Game, form config.TagOutputForm) (bool, error) {
	switch form {
	case config.NoTags:
		return false, nil
	case config.SevenTagRoster:
		for _, name := range chess.SevenTagRoster {
			value := game.GetTag(name)
			if value == "" {
				value = "?"
			}
			if name == "Result" && game.Result != chess.NoResult {
				value = game.Result.String()
			}
			if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value)); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	for _, tag := range game.Tags {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value)); err != nil {
			return false, err
		}
	}
	return len(game.Tags) > 0, nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

func writeMoves(ow *OutputWriter, game *chess.Game, cfg config.OutputConfig) {
	for i := range game.Pairs {
		pair := &game.Pairs[i]

		ow.Write(strconv.FormatUint(uint64(pair.Number), 10) + ".")
		ow.Write(formatMove(pair.White, cfg.KeepNAGs))
		if cfg.KeepComments {
			writeComment(ow, pair.WhiteComment)
		}

		if pair.Black == nil {
			continue
		}
		if pair.Restart != 0 {
			ow.Write(strconv.FormatUint(uint64(pair.Restart), 10) + "...")
		}
		ow.Write(formatMove(*pair.Black, cfg.KeepNAGs))
		if cfg.KeepComments {
			writeComment(ow, pair.BlackComment)
		}
	}

	ow.Write(game.Result.String())
}

func formatMove(m chess.Move, keepNAGs bool) string {
	if keepNAGs {
		return m.String()
	}
	return m.SAN()
}

func writeComment(ow *OutputWriter, comment *chess.Comment) {
	if comment == nil {
		return
	}
	ow.Write("{" + comment.Text + "}")
}

// WriteFEN writes a board as a single FEN line.
func WriteFEN(w io.Writer, board *chess.BoardState) error {
	_, err := fmt.Fprintln(w, board.String())
	return err
}
