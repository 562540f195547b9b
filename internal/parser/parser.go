package parser

// ParseMove parses a single SAN move. Surrounding whitespace is allowed.
// The returned MOVE node has one child naming the form that matched.
func ParseMove(text string) (*Node, error) {
	return parse(Move, group(ws, move, ws), text)
}

// ParseGame parses exactly one game: tags, move pairs and a result.
func ParseGame(text string) (*Node, error) {
	return parse(Game, game, text)
}

// ParseGames parses zero or more consecutive games into a DATABASE node.
func ParseGames(text string) (*Node, error) {
	return parse(Database, database, text)
}

// ParseBoard parses a six-field board description.
func ParseBoard(text string) (*Node, error) {
	return parse(Board, board, text)
}

// ParsePlacement parses the eight ranks at the start of a board
// description and ignores the text after them.
func ParsePlacement(text string) (*Node, error) {
	s := newScanner(text)
	n, ok := placementPrefix(s)
	if !ok {
		return nil, s.failure(Placement)
	}
	return n, nil
}

// parse runs m over the whole of text. Any failure is reported at the
// furthest position reached, as a syntax error or, when that position is
// the end of the text, as incomplete input.
func parse(top Rule, m matcher, text string) (*Node, error) {
	s := newScanner(text)
	n, ok := m(s)
	if ok {
		_, ok = eoi(s)
	}
	if !ok {
		return nil, s.failure(top)
	}
	if n.Rule == Group {
		return n.Child(top), nil
	}
	return n, nil
}
