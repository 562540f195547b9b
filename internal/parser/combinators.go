package parser

// matcher attempts to match at the scanner position. On success it advances
// the scanner and may return a node (nil for silent matches). On failure it
// leaves the position unchanged.
type matcher func(s *scanner) (*Node, bool)

// appendChild adds n to children, splicing in the children of Group nodes.
func appendChild(children []*Node, n *Node) []*Node {
	if n == nil {
		return children
	}
	if n.Rule == Group {
		return append(children, n.Children...)
	}
	return append(children, n)
}

// seq matches every part in order and wraps the result in a rule node.
func seq(rule Rule, parts ...matcher) matcher {
	return func(s *scanner) (*Node, bool) {
		start := s.pos
		var children []*Node
		for _, part := range parts {
			n, ok := part(s)
			if !ok {
				s.pos = start
				return nil, false
			}
			children = appendChild(children, n)
		}
		return s.node(rule, start, children), true
	}
}

// group is an anonymous sequence.
func group(parts ...matcher) matcher {
	return seq(Group, parts...)
}

func optional(m matcher) matcher {
	return func(s *scanner) (*Node, bool) {
		n, ok := m(s)
		if !ok {
			return nil, true
		}
		return n, true
	}
}

// repeat matches m between min and max times; max 0 means unbounded.
func repeat(m matcher, min, max int) matcher {
	return func(s *scanner) (*Node, bool) {
		start := s.pos
		var children []*Node
		count := 0
		for max == 0 || count < max {
			before := s.pos
			n, ok := m(s)
			if !ok {
				break
			}
			children = appendChild(children, n)
			count++
			if s.pos == before {
				break
			}
		}
		if count < min {
			s.pos = start
			return nil, false
		}
		return s.node(Group, start, children), true
	}
}

// choice is PEG ordered choice: the first alternative that matches wins.
func choice(alts ...matcher) matcher {
	return func(s *scanner) (*Node, bool) {
		for _, alt := range alts {
			if n, ok := alt(s); ok {
				return n, true
			}
		}
		return nil, false
	}
}

// named is a rule together with the matcher for it.
type named struct {
	rule  Rule
	match matcher
}

// alternatives is an ordered choice that, when nothing matches at its own
// position, reports the alternatives it tried by rule name rather than by
// their first tokens.
func alternatives(alts []named) matcher {
	return func(s *scanner) (*Node, bool) {
		start := s.pos
		saved := s.muted
		s.muted = start
		for _, alt := range alts {
			if n, ok := alt.match(s); ok {
				s.muted = saved
				return n, true
			}
		}
		s.muted = saved
		for _, alt := range alts {
			s.expect(alt.rule.String())
		}
		return nil, false
	}
}

// lit matches a literal silently.
func lit(text string) matcher {
	return func(s *scanner) (*Node, bool) {
		if !s.hasPrefix(text) {
			s.expect(quote(text))
			return nil, false
		}
		s.pos += len(text)
		return nil, true
	}
}

// token matches a literal and returns it as a rule node.
func token(rule Rule, text string) matcher {
	return func(s *scanner) (*Node, bool) {
		if !s.hasPrefix(text) {
			s.expect(quote(text))
			return nil, false
		}
		start := s.pos
		s.pos += len(text)
		return s.node(rule, start, nil), true
	}
}

// class matches a single byte accepted by pred.
func class(rule Rule, pred func(byte) bool) matcher {
	return func(s *scanner) (*Node, bool) {
		if s.atEnd() || !pred(s.peek()) {
			s.expect(rule.String())
			return nil, false
		}
		start := s.pos
		s.pos++
		return s.node(rule, start, nil), true
	}
}

// span matches at least min bytes accepted by pred.
func span(rule Rule, pred func(byte) bool, min int) matcher {
	return func(s *scanner) (*Node, bool) {
		start := s.pos
		for !s.atEnd() && pred(s.peek()) {
			s.pos++
		}
		if s.pos-start < min {
			s.expect(rule.String())
			s.pos = start
			return nil, false
		}
		return s.node(rule, start, nil), true
	}
}

// skip is a silent span.
func skip(rule Rule, pred func(byte) bool, min int) matcher {
	m := span(rule, pred, min)
	return func(s *scanner) (*Node, bool) {
		if _, ok := m(s); !ok {
			return nil, false
		}
		return nil, true
	}
}

// boundary succeeds without consuming when the next byte is not accepted by
// pred, or at end of input.
func boundary(rule Rule, pred func(byte) bool) matcher {
	return func(s *scanner) (*Node, bool) {
		if !s.atEnd() && pred(s.peek()) {
			s.expect(rule.String())
			return nil, false
		}
		return nil, true
	}
}

// eoi matches end of input.
func eoi(s *scanner) (*Node, bool) {
	if !s.atEnd() {
		s.expect(EndOfInput.String())
		return nil, false
	}
	return nil, true
}

// ws skips optional PGN whitespace.
var ws = skip(Group, isSpace, 0)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func oneOf(chars string) func(byte) bool {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return func(c byte) bool {
		return set[c]
	}
}
