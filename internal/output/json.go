package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags     []JSONTag  `json:"tags"`
	Moves    []JSONMove `json:"moves"`
	Result   string     `json:"result"`
	PlyCount int        `json:"plyCount"`

	// Duplicate is set by the server when an earlier request sent the
	// same game.
	Duplicate bool `json:"duplicate,omitempty"`
}

// JSONTag is one tag pair. Tags are a list so that order and repeated
// names survive.
type JSONTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber    uint    `json:"moveNumber,omitempty"`
	Color         string  `json:"color,omitempty"` // "white" or "black"
	SAN           string  `json:"san"`
	Class         string  `json:"class"`
	Piece         string  `json:"piece"`
	Disambiguator string  `json:"disambiguator,omitempty"`
	FromFile      string  `json:"fromFile,omitempty"`
	To            string  `json:"to,omitempty"`
	Promotion     string  `json:"promotion,omitempty"`
	Check         string  `json:"check,omitempty"`
	NAG           string  `json:"nag,omitempty"`
	Comment       *string `json:"comment,omitempty"`
}

// JSONBoard represents a board state in JSON format.
type JSONBoard struct {
	FEN            string   `json:"fen"`
	Ranks          []string `json:"ranks"`
	ToMove         string   `json:"toMove"`
	Castling       string   `json:"castling"`
	EnPassant      string   `json:"enPassant,omitempty"`
	HalfmoveClock  uint     `json:"halfmoveClock"`
	FullmoveNumber uint     `json:"fullmoveNumber"`
	Duplicate      bool     `json:"duplicate,omitempty"`
}

// JSONOutput holds multiple games and boards for array output.
type JSONOutput struct {
	Games  []*JSONGame  `json:"games,omitempty"`
	Boards []*JSONBoard `json:"boards,omitempty"`
}

// GameToJSON converts a chess game to JSON format.
func GameToJSON(game *chess.Game, cfg config.OutputConfig) *JSONGame {
	jg := &JSONGame{
		Tags:     make([]JSONTag, len(game.Tags)),
		Moves:    make([]JSONMove, 0, game.PlyCount()),
		Result:   game.Result.String(),
		PlyCount: game.PlyCount(),
	}
	for i, tag := range game.Tags {
		jg.Tags[i] = JSONTag(tag)
	}

	for i := range game.Pairs {
		pair := &game.Pairs[i]
		jg.Moves = append(jg.Moves, moveToJSON(pair.White, pair.WhiteComment, pair.Number, "white", cfg))
		if pair.Black != nil {
			jg.Moves = append(jg.Moves, moveToJSON(*pair.Black, pair.BlackComment, pair.Number, "black", cfg))
		}
	}
	return jg
}

func moveToJSON(m chess.Move, comment *chess.Comment, number uint, color string, cfg config.OutputConfig) JSONMove {
	jm := JSONMove{
		MoveNumber:    number,
		Color:         color,
		SAN:           m.SAN(),
		Class:         m.Class.String(),
		Piece:         pieceTypeName(m.Piece),
		Disambiguator: m.Disambiguator.String(),
		Promotion:     pieceTypeName(m.Promoted),
	}
	if m.FromFile != 0 {
		jm.FromFile = string([]byte{byte(m.FromFile)})
	}
	if m.Target.IsValid() {
		jm.To = m.Target.String()
	}
	switch m.CheckStatus {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "checkmate"
	}
	if cfg.KeepNAGs {
		jm.NAG = m.NAG
	}
	if cfg.KeepComments && comment != nil {
		text := comment.Text
		jm.Comment = &text
	}
	return jm
}

// MoveToJSON converts a single move, outside any game, to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	return moveToJSON(m, nil, 0, "", config.OutputConfig{KeepNAGs: true})
}

// BoardToJSON converts a board state to JSON format.
func BoardToJSON(board *chess.BoardState) *JSONBoard {
	jb := &JSONBoard{
		FEN:            board.String(),
		Ranks:          make([]string, len(board.Ranks)),
		ToMove:         strings.ToLower(board.ToMove.String()),
		Castling:       board.Castling.String(),
		HalfmoveClock:  board.HalfmoveClock,
		FullmoveNumber: board.MoveNumber,
	}
	for i, row := range board.Ranks {
		jb.Ranks[i] = row.String()
	}
	if board.EnPassant != nil {
		jb.EnPassant = board.EnPassant.String()
	}
	return jb
}

// GamesToJSON converts games to a JSONOutput.
func GamesToJSON(games []*chess.Game, cfg config.OutputConfig) *JSONOutput {
	out := &JSONOutput{Games: make([]*JSONGame, len(games))}
	for i, game := range games {
		out.Games[i] = GameToJSON(game, cfg)
	}
	return out
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// encodeJSONLine writes v compactly on one line.
func encodeJSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
