// Package builder converts parse trees into the chess data model.
//
// The grammars only check shape; the builder enforces the invariants a
// grammar cannot express (eight squares per rank, counters that fit in a
// uint) and reports violations as StructuralError. Text is copied out of
// the input so results do not keep the input alive.
package builder

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-notation-go/internal/errors"
	"github.com/lgbarn/chess-notation-go/internal/parser"
)

func structural(rule parser.Rule, format string, args ...interface{}) error {
	return &errors.StructuralError{Rule: rule.String(), Reason: fmt.Sprintf(format, args...)}
}

// expectRule checks that n was produced by rule.
func expectRule(n *parser.Node, rule parser.Rule) error {
	if n == nil {
		return structural(rule, "missing node")
	}
	if n.Rule != rule {
		return structural(rule, "unexpected %s node", n.Rule)
	}
	return nil
}

// required returns the first child of n produced by rule.
func required(n *parser.Node, rule parser.Rule) (*parser.Node, error) {
	c := n.Child(rule)
	if c == nil {
		return nil, structural(n.Rule, "missing %s", rule)
	}
	return c, nil
}

// parseCount converts a decimal counter, rejecting values that overflow.
func parseCount(n *parser.Node) (uint, error) {
	v, err := strconv.ParseUint(n.Text, 10, strconv.IntSize)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, structural(n.Rule, "%s is out of range", n.Text)
		}
		return 0, structural(n.Rule, "%q is not a number", n.Text)
	}
	return uint(v), nil
}

func clone(n *parser.Node) string {
	return strings.Clone(n.Text)
}
