package parser

var (
	isTagNameChar = func(c byte) bool { return isLetter(c) || isDigit(c) || c == '_' }
	isCommentChar = func(c byte) bool { return c != '}' }
	isResultChar  = func(c byte) bool { return isMoveChar(c) || c == '/' }
)

var (
	moveNumber = span(MoveNumber, isDigit, 1)

	// Comments do not nest and keep their text verbatim.
	comment = seq(Comment, lit("{"), span(CommentText, isCommentChar, 0), lit("}"))

	// restart re-announces the move number before Black's move: "3...".
	restart = seq(Restart, moveNumber, ws, lit("..."))

	movePair = seq(MovePair,
		moveNumber, ws, lit("."), ws,
		move, ws, optional(comment), ws,
		optional(restart), ws,
		optional(group(move, ws, optional(comment), ws)),
	)

	result = seq(Result,
		choice(lit("1-0"), lit("0-1"), lit("1/2-1/2")),
		boundary(EndOfMove, isResultChar),
	)

	tag = seq(Tag,
		lit("["), ws,
		span(TagName, isTagNameChar, 1), ws,
		tagValue, ws,
		lit("]"), ws,
	)

	game = seq(Game,
		ws,
		repeat(tag, 0, 0),
		repeat(movePair, 1, 0),
		result, ws,
	)

	database = seq(Database, ws, repeat(game, 0, 0))
)

// tagValue matches a quoted string. The node text excludes the quotes and
// keeps backslash escapes as written.
func tagValue(s *scanner) (*Node, bool) {
	if s.peek() != '"' || s.atEnd() {
		s.expect(TagValue.String())
		return nil, false
	}
	start := s.pos
	s.pos++
	body := s.pos
	for !s.atEnd() {
		switch s.peek() {
		case '\\':
			s.pos++
			if s.atEnd() {
				continue
			}
		case '"':
			n := &Node{Rule: TagValue, Offset: body, Text: s.text[body:s.pos]}
			s.pos++
			return n, true
		}
		s.pos++
	}
	s.expect(quote(`"`))
	s.pos = start
	return nil, false
}
