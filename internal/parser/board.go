package parser

import "github.com/lgbarn/chess-notation-go/internal/chess"

// castlingOrder is the only order in which castling letters may appear.
const castlingOrder = "KQkq"

var (
	isPieceSymbol = oneOf("KQRBNPkqrbnp")
	isEmptyRun    = func(c byte) bool { return c >= '1' && c <= '8' }
	isColour      = oneOf("wb")
)

var (
	fieldSeparator = skip(FieldSeparator, isBlank, 1)

	boardRank = seq(BoardRank, repeat(choice(
		class(PieceSymbol, isPieceSymbol),
		class(EmptyRun, isEmptyRun),
	), 1, chess.BoardSize))

	enPassant = choice(
		token(EnPassant, "-"),
		seq(EnPassant, square),
	)

	board = seq(Board,
		ws,
		placement(),
		fieldSeparator, class(ActiveColour, isColour),
		fieldSeparator, choice(token(Castling, "-"), castlingLetters),
		fieldSeparator, enPassant,
		fieldSeparator, span(HalfmoveClock, isDigit, 1),
		fieldSeparator, span(FullmoveNumber, isDigit, 1),
		ws,
	)

	// placementPrefix matches only the leading piece placement.
	placementPrefix = seq(Placement, ws, placement())
)

// placement matches eight ranks separated by slashes.
func placement() matcher {
	parts := []matcher{boardRank}
	for i := 1; i < chess.BoardSize; i++ {
		parts = append(parts, lit("/"), boardRank)
	}
	return group(parts...)
}

// castlingLetters matches a non-empty subsequence of KQkq in that order.
func castlingLetters(s *scanner) (*Node, bool) {
	start := s.pos
	next := 0
	for next < len(castlingOrder) && !s.atEnd() {
		i := indexFrom(castlingOrder, next, s.peek())
		if i < 0 {
			break
		}
		s.pos++
		next = i + 1
	}
	if s.pos == start {
		s.expect(Castling.String())
		return nil, false
	}
	for i := next; i < len(castlingOrder); i++ {
		s.expect(quote(castlingOrder[i : i+1]))
	}
	return s.node(Castling, start, nil), true
}

func indexFrom(set string, from int, c byte) int {
	for i := from; i < len(set); i++ {
		if set[i] == c {
			return i
		}
	}
	return -1
}
