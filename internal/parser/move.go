package parser

import "github.com/lgbarn/chess-notation-go/internal/chess"

// annotations are tried longest first so "!!" is not read as "!".
var annotations = []string{"!!", "??", "!?", "?!", "!", "?"}

var (
	isPieceLetter    = oneOf("KQRBN")
	isPromotionPiece = oneOf("QRBN")
	isPromotionRank  = oneOf("18")
	isCheck          = oneOf("+#")
	isMoveFile       = chess.IsFile
	isMoveRank       = chess.IsRank
	isMoveMark       = oneOf("=-+#!?")
	isMoveChar       = func(c byte) bool { return isLetter(c) || isDigit(c) || isMoveMark(c) }
)

var (
	piece         = class(Piece, isPieceLetter)
	file          = class(File, isMoveFile)
	rank          = class(Rank, isMoveRank)
	square        = seq(Square, file, rank)
	disambiguator = class(Disambiguator, func(c byte) bool { return isMoveFile(c) || isMoveRank(c) })
	captureMark   = lit("x")

	// moveSuffix is the optional check marker and annotation every move
	// form accepts, followed by the end of the token.
	moveSuffix = group(
		optional(class(CheckSymbol, isCheck)),
		optional(annotation),
		boundary(EndOfMove, isMoveChar),
	)
)

func annotation(s *scanner) (*Node, bool) {
	for _, a := range annotations {
		if s.hasPrefix(a) {
			start := s.pos
			s.pos += len(a)
			return s.node(Annotation, start, nil), true
		}
	}
	s.expect(Annotation.String())
	return nil, false
}

// moveForms lists the move forms in priority order. Earlier forms win when
// more than one could match the same text.
var moveForms = []named{
	{CastleQueenside, seq(CastleQueenside, choice(lit("O-O-O"), lit("0-0-0")), moveSuffix)},
	{CastleKingside, seq(CastleKingside, choice(lit("O-O"), lit("0-0")), moveSuffix)},
	{PromotionCapture, seq(PromotionCapture,
		class(FromFile, isMoveFile), captureMark, class(ToFile, isMoveFile),
		class(PromotionRank, isPromotionRank), optional(lit("=")),
		class(PromotedPiece, isPromotionPiece), moveSuffix)},
	{PromotionMove, seq(PromotionMove,
		class(FromFile, isMoveFile), class(PromotionRank, isPromotionRank),
		optional(lit("=")), class(PromotedPiece, isPromotionPiece), moveSuffix)},
	{CaptureDisambiguated, seq(CaptureDisambiguated, optional(piece), disambiguator, captureMark, square, moveSuffix)},
	{CaptureMove, seq(CaptureMove, optional(piece), captureMark, square, moveSuffix)},
	{NonCaptureDisambiguated, seq(NonCaptureDisambiguated, optional(piece), disambiguator, square, moveSuffix)},
	{NonCaptureMove, seq(NonCaptureMove, optional(piece), square, moveSuffix)},
}

// move matches a single SAN token. The MOVE node has exactly one child: the
// form that matched.
var move = seq(Move, alternatives(moveForms))

// MoveForms returns the move form rules in the order they are tried.
func MoveForms() []Rule {
	rules := make([]Rule, len(moveForms))
	for i, f := range moveForms {
		rules[i] = f.rule
	}
	return rules
}
