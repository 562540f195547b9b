// Package chess provides the notation data model: squares, pieces, moves,
// games and board states as produced by the parsers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [...]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

var pieceLetters = [...]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p >= 0 && int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	if p >= 0 && int(p) < len(pieceLetters) {
		return pieceLetters[p]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to p.
func (p Piece) IsPromotionTarget() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PieceFromLetter converts an uppercase SAN piece letter to a piece.
// Lowercase letters are not accepted: in SAN they denote files.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return Empty
}

// File represents a chess file (column) - 'a' to 'h'.
type File byte

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase  = 'a'
	RankBase  = '1'
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
)

// IsFile returns true if c is a valid file character.
func IsFile(c byte) bool {
	return c >= FirstFile && c <= LastFile
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// Index returns the zero-based index of the file, or -1 if invalid.
func (f File) Index() int {
	if !IsFile(byte(f)) {
		return -1
	}
	return int(f - FileBase)
}

// Index returns the zero-based index of the rank, or -1 if invalid.
func (r Rank) Index() int {
	if !IsRank(byte(r)) {
		return -1
	}
	return int(r - RankBase)
}

// Square is a board coordinate.
type Square struct {
	File File
	Rank Rank
}

// NewSquare returns the square for a file and rank character.
func NewSquare(file File, rank Rank) Square {
	return Square{File: file, Rank: rank}
}

// IsValid returns true if both coordinates are on the board.
func (s Square) IsValid() bool {
	return IsFile(byte(s.File)) && IsRank(byte(s.Rank))
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(s.File), byte(s.Rank)})
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Suffix returns the SAN suffix for the status.
func (c CheckStatus) Suffix() string {
	switch c {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	}
	return ""
}
