package testutil

import (
	"testing"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/notation"
)

// ParseTestGames parses PGN text and returns all games, or nil if parsing
// fails or the text holds no games.
func ParseTestGames(pgn string) []*chess.Game {
	games, err := notation.ParseGames(pgn)
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseGame parses the text of one game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t *testing.T, pgn string) *chess.Game {
	t.Helper()
	game, err := notation.ParseGame(pgn)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, pgn)
	}
	return game
}

// MustParseGames parses PGN text and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t *testing.T, pgn string) []*chess.Game {
	t.Helper()
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}

// MustParseBoard parses a FEN string.
func MustParseBoard(t *testing.T, fen string) *chess.BoardState {
	t.Helper()
	board, err := notation.ParseBoard(fen)
	if err != nil {
		t.Fatalf("failed to parse test board %q: %v", fen, err)
	}
	return board
}

// MustParseMove parses a single SAN move.
func MustParseMove(t *testing.T, san string) chess.Move {
	t.Helper()
	move, err := notation.ParseMove(san)
	if err != nil {
		t.Fatalf("failed to parse test move %q: %v", san, err)
	}
	return move
}
