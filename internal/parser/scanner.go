package parser

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/lgbarn/chess-notation-go/internal/errors"
)

// foundLimit caps the offending text quoted in a syntax error.
const foundLimit = 16

// scanner holds the state of a single parse. The grammars themselves are
// immutable; every call gets a fresh scanner.
type scanner struct {
	text string
	pos  int

	// Furthest position at which a rule failed, and what was expected there.
	failPos  int
	expected *treeset.Set

	// Expectations at this position are suppressed while an ordered choice
	// reports its alternatives by name.
	muted int
}

func newScanner(text string) *scanner {
	return &scanner{
		text:     text,
		failPos:  -1,
		expected: treeset.NewWithStringComparator(),
		muted:    -1,
	}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.text)
}

// peek returns the current byte, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) hasPrefix(lit string) bool {
	return strings.HasPrefix(s.text[s.pos:], lit)
}

// expect records that name was expected at the current position.
func (s *scanner) expect(name string) {
	if s.pos == s.muted {
		return
	}
	if s.pos > s.failPos {
		s.failPos = s.pos
		s.expected.Clear()
	}
	if s.pos == s.failPos {
		s.expected.Add(name)
	}
}

func (s *scanner) node(rule Rule, start int, children []*Node) *Node {
	return &Node{
		Rule:     rule,
		Offset:   start,
		Text:     s.text[start:s.pos],
		Children: children,
	}
}

func (s *scanner) expectedNames() []string {
	values := s.expected.Values()
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.(string))
	}
	return names
}

// failure converts the furthest recorded failure into a parse error.
// Failing at end of input means the text was a truncated prefix.
func (s *scanner) failure(top Rule) error {
	pos := s.failPos
	if pos < 0 {
		pos = s.pos
	}
	if pos >= len(s.text) {
		return &errors.IncompleteInputError{
			Offset:   len(s.text),
			Rule:     top.String(),
			Expected: s.expectedNames(),
		}
	}
	line, col := position(s.text, pos)
	return &errors.SyntaxError{
		Offset:   pos,
		Line:     line,
		Column:   col,
		Rule:     top.String(),
		Expected: s.expectedNames(),
		Found:    found(s.text, pos),
	}
}

// position returns the 1-based line and column of a byte offset.
func position(text string, offset int) (line, col int) {
	line = 1 + strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	return line, offset - lineStart + 1
}

// found returns the token starting at offset, for error messages.
func found(text string, offset int) string {
	end := offset
	for end < len(text) && end-offset < foundLimit && !isSpace(text[end]) {
		end++
	}
	if end == offset {
		end = offset + 1
	}
	return text[offset:end]
}

func quote(lit string) string {
	return strconv.Quote(lit)
}
