package chess

import "strings"

// MoveClass selects which variant of Move is populated.
type MoveClass int

const (
	UnknownMove MoveClass = iota
	NonCapture
	Capture
	Promotion
	PromotionCapture
	KingsideCastle
	QueensideCastle
)

var moveClassNames = [...]string{
	UnknownMove:      "Unknown",
	NonCapture:       "NonCapture",
	Capture:          "Capture",
	Promotion:        "Promotion",
	PromotionCapture: "PromotionCapture",
	KingsideCastle:   "KingsideCastle",
	QueensideCastle:  "QueensideCastle",
}

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	if c >= 0 && int(c) < len(moveClassNames) {
		return moveClassNames[c]
	}
	return "Unknown"
}

// Disambiguator is the single file letter or rank digit that some SAN
// moves carry to tell apart two pieces of the same kind. Zero means none.
type Disambiguator byte

// NoDisambiguator is the zero disambiguator.
const NoDisambiguator Disambiguator = 0

// IsFile returns true if the disambiguator names a file.
func (d Disambiguator) IsFile() bool {
	return IsFile(byte(d))
}

// IsRank returns true if the disambiguator names a rank.
func (d Disambiguator) IsRank() bool {
	return IsRank(byte(d))
}

// String returns the disambiguator character, or "" if absent.
func (d Disambiguator) String() string {
	if d == NoDisambiguator {
		return ""
	}
	return string([]byte{byte(d)})
}

// Move is a single SAN move. Class selects the variant; fields that do not
// belong to that variant are left at their zero value.
//
//	NonCapture, Capture:       Piece, Disambiguator, Target
//	Promotion:                 FromFile, Target (same file), Promoted
//	PromotionCapture:          FromFile, Target, Promoted
//	KingsideCastle, QueensideCastle: no fields
type Move struct {
	// The move text as it appeared in the input (e.g., "Nf3", "exd8=Q+").
	Text string

	Class MoveClass

	// The piece being moved. Pawn for promotions, King for castling.
	Piece Piece

	Disambiguator Disambiguator

	// The originating file of a promoting pawn.
	FromFile File

	// Destination square.
	Target Square

	// The piece promoted to (Empty if not a promotion).
	Promoted Piece

	// Whether this move claims check or checkmate.
	CheckStatus CheckStatus

	// Annotation glyph as a NAG string ("$1" for "!"), or "".
	NAG string
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Class == Capture || m.Class == PromotionCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion || m.Class == PromotionCapture
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Equal compares the parsed identity and annotations of two moves,
// ignoring the source text.
func (m Move) Equal(other Move) bool {
	m.Text, other.Text = "", ""
	return m == other
}

// SAN returns the canonical SAN rendering of the move including the check
// suffix but without annotation glyphs.
func (m Move) SAN() string {
	var sb strings.Builder

	switch m.Class {
	case KingsideCastle:
		sb.WriteString("O-O")
	case QueensideCastle:
		sb.WriteString("O-O-O")
	case Promotion:
		sb.WriteByte(byte(m.FromFile))
		sb.WriteByte(byte(m.Target.Rank))
		sb.WriteByte('=')
		sb.WriteByte(m.Promoted.Letter())
	case PromotionCapture:
		sb.WriteByte(byte(m.FromFile))
		sb.WriteByte('x')
		sb.WriteString(m.Target.String())
		sb.WriteByte('=')
		sb.WriteByte(m.Promoted.Letter())
	case NonCapture, Capture:
		if m.Piece != Pawn && m.Piece != Empty {
			sb.WriteByte(m.Piece.Letter())
		}
		sb.WriteString(m.Disambiguator.String())
		if m.Class == Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.Target.String())
	default:
		return m.Text
	}

	sb.WriteString(m.CheckStatus.Suffix())
	return sb.String()
}

// String returns the SAN rendering followed by any annotation glyph.
func (m Move) String() string {
	return m.SAN() + NAGToAnnotation(m.NAG)
}

var annotationNAGs = map[string]string{
	"!":  "$1",
	"?":  "$2",
	"!!": "$3",
	"??": "$4",
	"!?": "$5",
	"?!": "$6",
}

// AnnotationToNAG converts annotation symbols to NAG strings.
func AnnotationToNAG(text string) string {
	if nag, ok := annotationNAGs[text]; ok {
		return nag
	}
	return "$0"
}

// NAGToAnnotation converts a NAG string back to its annotation symbol, or ""
// if the NAG has no symbolic form.
func NAGToAnnotation(nag string) string {
	for symbol, n := range annotationNAGs {
		if n == nag {
			return symbol
		}
	}
	return ""
}
