package chess

import (
	"strconv"
	"strings"
	"unicode"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SquareContent is one entry of a FEN rank: either a coloured piece or a run
// of EmptyRun consecutive empty squares.
type SquareContent struct {
	Piece    Piece
	Colour   Colour
	EmptyRun int
}

// PieceContent returns the entry for a coloured piece.
func PieceContent(colour Colour, piece Piece) SquareContent {
	return SquareContent{Piece: piece, Colour: colour}
}

// EmptyContent returns the entry for a run of n empty squares.
func EmptyContent(n int) SquareContent {
	return SquareContent{EmptyRun: n}
}

// IsEmptyRun returns true if the entry describes empty squares.
func (c SquareContent) IsEmptyRun() bool {
	return c.Piece == Empty
}

// Width returns the number of squares covered by the entry.
func (c SquareContent) Width() int {
	if c.IsEmptyRun() {
		return c.EmptyRun
	}
	return 1
}

// Symbol returns the FEN symbol of the entry.
func (c SquareContent) Symbol() byte {
	if c.IsEmptyRun() {
		return byte('0' + c.EmptyRun)
	}
	letter := c.Piece.Letter()
	if c.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ContentFromSymbol converts a FEN piece character to an entry.
func ContentFromSymbol(c byte) (SquareContent, bool) {
	if c >= '1' && c <= '8' {
		return EmptyContent(int(c - '0')), true
	}
	colour := White
	if unicode.IsLower(rune(c)) {
		colour = Black
	}
	piece := PieceFromLetter(byte(unicode.ToUpper(rune(c))))
	if piece == Empty {
		return SquareContent{}, false
	}
	return PieceContent(colour, piece), true
}

// Row is one rank of a board description, files a to h.
type Row []SquareContent

// Squares returns the number of squares the row describes.
func (r Row) Squares() int {
	total := 0
	for _, c := range r {
		total += c.Width()
	}
	return total
}

// String returns the FEN text of the row.
func (r Row) String() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteByte(c.Symbol())
	}
	return sb.String()
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any returns true if at least one right is set.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	if !c.Any() {
		return "-"
	}
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	return sb.String()
}

// BoardState is a position as described by a FEN string.
type BoardState struct {
	// Ranks in FEN order: Ranks[0] is rank 8, Ranks[7] is rank 1.
	Ranks [BoardSize]Row

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// En passant target square, nil when the field is "-".
	EnPassant *Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The full-move counter.
	MoveNumber uint
}

// Row returns the row for a rank character, or nil if invalid.
func (b *BoardState) Row(rank Rank) Row {
	idx := rank.Index()
	if idx < 0 {
		return nil
	}
	return b.Ranks[BoardSize-1-idx]
}

// PieceAt returns the coloured piece on a square. ok is false for an empty
// or invalid square.
func (b *BoardState) PieceAt(sq Square) (piece Piece, colour Colour, ok bool) {
	fileIdx := sq.File.Index()
	if fileIdx < 0 {
		return Empty, White, false
	}
	col := 0
	for _, c := range b.Row(sq.Rank) {
		if fileIdx < col+c.Width() {
			if c.IsEmptyRun() {
				return Empty, White, false
			}
			return c.Piece, c.Colour, true
		}
		col += c.Width()
	}
	return Empty, White, false
}

// Placement returns the FEN piece-placement field.
func (b *BoardState) Placement() string {
	var sb strings.Builder
	for i, row := range b.Ranks {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(row.String())
	}
	return sb.String()
}

// String returns the FEN string of the board state. Rows are written as
// parsed, so adjacent empty runs such as "44" are preserved.
func (b *BoardState) String() string {
	var sb strings.Builder

	sb.WriteString(b.Placement())
	sb.WriteByte(' ')
	if b.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	if b.EnPassant != nil {
		sb.WriteString(b.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.MoveNumber), 10))

	return sb.String()
}
