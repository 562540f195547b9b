// Package notation parses chess notation into the data model: PGN game
// text, FEN board descriptions and single SAN moves.
//
// All functions are pure and safe for concurrent use. A failed parse
// returns a nil value and an error from the internal/errors taxonomy.
package notation

import (
	"github.com/lgbarn/chess-notation-go/internal/builder"
	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/parser"
)

// ParseGame parses the text of exactly one game.
func ParseGame(text string) (*chess.Game, error) {
	n, err := parser.ParseGame(text)
	if err != nil {
		return nil, err
	}
	return builder.BuildGame(n)
}

// ParseGames parses a sequence of games, such as the contents of a PGN file.
func ParseGames(text string) ([]*chess.Game, error) {
	n, err := parser.ParseGames(text)
	if err != nil {
		return nil, err
	}
	return builder.BuildGames(n)
}

// ParseBoard parses a FEN board description.
func ParseBoard(text string) (*chess.BoardState, error) {
	n, err := parser.ParseBoard(text)
	if err != nil {
		// A placement whose ranks miss their square count is a structural
		// fault even when the fields after it are absent or malformed.
		if pn, perr := parser.ParsePlacement(text); perr == nil {
			if serr := builder.CheckPlacement(pn); serr != nil {
				return nil, serr
			}
		}
		return nil, err
	}
	return builder.BuildBoard(n)
}

// ParseMove parses a single SAN move.
func ParseMove(text string) (chess.Move, error) {
	n, err := parser.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	return builder.BuildMove(n)
}
