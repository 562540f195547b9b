package parser

import (
	"fmt"
	"strings"
)

// Node is one matched rule in a parse tree. Text is the slice of the input
// the rule consumed; Offset is its byte position.
type Node struct {
	Rule     Rule
	Offset   int
	Text     string
	Children []*Node
}

// End returns the byte offset just past the node's text.
func (n *Node) End() int {
	return n.Offset + len(n.Text)
}

// Child returns the first direct child produced by rule, or nil.
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// ChildrenOf returns every direct child produced by rule.
func (n *Node) ChildrenOf(rule Rule) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.Walk(func(node *Node, depth int) bool {
		fmt.Fprintf(&sb, "%s%s@%d %q\n", strings.Repeat("  ", depth), node.Rule, node.Offset, node.Text)
		return true
	})
	return sb.String()
}
