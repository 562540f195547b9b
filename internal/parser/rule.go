// Package parser provides the notation grammars: SAN moves, PGN move text
// and FEN board descriptions. Each grammar turns text into a tree of Nodes
// or a typed parse error.
package parser

// Rule identifies the grammar rule that produced a Node.
type Rule int

const (
	// Group marks an anonymous sequence whose children are spliced into the
	// enclosing node.
	Group Rule = iota

	// Move grammar
	Move
	Piece
	File
	Rank
	Square
	Disambiguator
	FromFile
	ToFile
	PromotionRank
	PromotedPiece
	CheckSymbol
	Annotation
	CastleQueenside
	CastleKingside
	PromotionCapture
	PromotionMove
	CaptureDisambiguated
	CaptureMove
	NonCaptureDisambiguated
	NonCaptureMove
	EndOfMove

	// Game grammar
	Database
	Game
	Tag
	TagName
	TagValue
	MovePair
	MoveNumber
	Restart
	Comment
	CommentText
	Result

	// Board grammar
	Board
	Placement
	BoardRank
	PieceSymbol
	EmptyRun
	ActiveColour
	Castling
	EnPassant
	HalfmoveClock
	FullmoveNumber
	FieldSeparator

	EndOfInput
)

// ruleNames maps rules to the names used in parse errors.
var ruleNames = [...]string{
	Group: "GROUP",

	Move:                    "MOVE",
	Piece:                   "PIECE",
	File:                    "FILE",
	Rank:                    "RANK",
	Square:                  "SQUARE",
	Disambiguator:           "DISAMBIGUATOR",
	FromFile:                "FROM_FILE",
	ToFile:                  "TO_FILE",
	PromotionRank:           "PROMOTION_RANK",
	PromotedPiece:           "PROMOTED_PIECE",
	CheckSymbol:             "CHECK",
	Annotation:              "ANNOTATION",
	CastleQueenside:         "CASTLE_QUEENSIDE",
	CastleKingside:          "CASTLE_KINGSIDE",
	PromotionCapture:        "PROMOTION_CAPTURE",
	PromotionMove:           "PROMOTION",
	CaptureDisambiguated:    "CAPTURE_DISAMBIGUATED",
	CaptureMove:             "CAPTURE",
	NonCaptureDisambiguated: "NON_CAPTURE_DISAMBIGUATED",
	NonCaptureMove:          "NON_CAPTURE",
	EndOfMove:               "END_OF_MOVE",

	Database:    "DATABASE",
	Game:        "GAME",
	Tag:         "TAG",
	TagName:     "TAG_NAME",
	TagValue:    "TAG_VALUE",
	MovePair:    "MOVE_PAIR",
	MoveNumber:  "MOVE_NUMBER",
	Restart:     "RESTART",
	Comment:     "COMMENT",
	CommentText: "COMMENT_TEXT",
	Result:      "RESULT",

	Board:          "BOARD",
	Placement:      "PLACEMENT",
	BoardRank:      "BOARD_RANK",
	PieceSymbol:    "PIECE_SYMBOL",
	EmptyRun:       "EMPTY_RUN",
	ActiveColour:   "ACTIVE_COLOUR",
	Castling:       "CASTLING",
	EnPassant:      "EN_PASSANT",
	HalfmoveClock:  "HALFMOVE_CLOCK",
	FullmoveNumber: "FULLMOVE_NUMBER",
	FieldSeparator: "FIELD_SEPARATOR",

	EndOfInput: "END_OF_INPUT",
}

// String returns the string representation of a rule.
func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "UNKNOWN"
}
