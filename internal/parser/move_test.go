package parser

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/lgbarn/chess-notation-go/internal/errors"
)

// childRules lists the rules of a node's direct children.
func childRules(n *Node) []Rule {
	rules := make([]Rule, 0, len(n.Children))
	for _, c := range n.Children {
		rules = append(rules, c.Rule)
	}
	return rules
}

// mustParseMove parses text and returns the form node below MOVE.
func mustParseMove(t *testing.T, text string) *Node {
	t.Helper()
	n, err := ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	if n.Rule != Move || len(n.Children) != 1 {
		t.Fatalf("ParseMove(%q) = %s node with %d children, want MOVE with 1", text, n.Rule, len(n.Children))
	}
	return n.Children[0]
}

func TestParseMoveForms(t *testing.T) {
	tests := []struct {
		text string
		want Rule
	}{
		{"e4", NonCaptureMove},
		{"Nf3", NonCaptureMove},
		{"Qh4#", NonCaptureMove},
		{"e4!?", NonCaptureMove},
		{"Nbd7", NonCaptureDisambiguated},
		{"R1e3", NonCaptureDisambiguated},
		{"Bxe5", CaptureMove},
		{"Kxe2+!", CaptureMove},
		{"exd5", CaptureDisambiguated},
		{"Nbxd7", CaptureDisambiguated},
		{"e8=Q", PromotionMove},
		{"a1N", PromotionMove},
		{"exd8=Q", PromotionCapture},
		{"gxh1R+", PromotionCapture},
		{"O-O", CastleKingside},
		{"0-0", CastleKingside},
		{"O-O-O", CastleQueenside},
		{"0-0-0+", CastleQueenside},
		{"bxc8", CaptureDisambiguated},
		{"e8", NonCaptureMove},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			form := mustParseMove(t, tt.text)
			if form.Rule != tt.want {
				t.Errorf("form = %s, want %s", form.Rule, tt.want)
			}
			if form.Text != tt.text {
				t.Errorf("form text = %q, want %q", form.Text, tt.text)
			}
		})
	}
}

func TestParseMoveChildren(t *testing.T) {
	tests := []struct {
		text string
		want []Rule
	}{
		{"Nbd7", []Rule{Piece, Disambiguator, Square}},
		{"exd5", []Rule{Disambiguator, Square}},
		{"exd8=Q#", []Rule{FromFile, ToFile, PromotionRank, PromotedPiece, CheckSymbol}},
		{"O-O-O+?!", []Rule{CheckSymbol, Annotation}},
		{"Rxe1!!", []Rule{Piece, Square, Annotation}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			form := mustParseMove(t, tt.text)
			if diff := cmp.Diff(tt.want, childRules(form)); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMoveNodeText(t *testing.T) {
	form := mustParseMove(t, "Nbd7")
	if got := form.Child(Piece).Text; got != "N" {
		t.Errorf("PIECE = %q, want %q", got, "N")
	}
	if got := form.Child(Disambiguator).Text; got != "b" {
		t.Errorf("DISAMBIGUATOR = %q, want %q", got, "b")
	}
	sq := form.Child(Square)
	if sq.Text != "d7" || sq.Offset != 2 {
		t.Errorf("SQUARE = %q@%d, want %q@2", sq.Text, sq.Offset, "d7")
	}
	if got := sq.Child(File).Text + sq.Child(Rank).Text; got != "d7" {
		t.Errorf("FILE+RANK = %q, want %q", got, "d7")
	}
}

func TestParseMoveSurroundingWhitespace(t *testing.T) {
	form := mustParseMove(t, "  Nf3\n")
	if form.Offset != 2 || form.Text != "Nf3" {
		t.Errorf("form = %q@%d, want %q@2", form.Text, form.Offset, "Nf3")
	}
}

func TestParseMoveSyntaxErrors(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"e9", 1},
		{"Zf3", 0},
		{"e4!!!", 4},
		{"O-O-O-O", 5},
		{"Nf3 Nf6", 4},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseMove(tt.text)
			var syntaxErr *perrors.SyntaxError
			if !stderrors.As(err, &syntaxErr) {
				t.Fatalf("ParseMove(%q) error = %v, want SyntaxError", tt.text, err)
			}
			if syntaxErr.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", syntaxErr.Offset, tt.offset)
			}
			if syntaxErr.Rule != "MOVE" {
				t.Errorf("Rule = %q, want %q", syntaxErr.Rule, "MOVE")
			}
		})
	}
}

func TestParseMoveReportsAlternatives(t *testing.T) {
	_, err := ParseMove("Zf3")
	var syntaxErr *perrors.SyntaxError
	if !stderrors.As(err, &syntaxErr) {
		t.Fatalf("error = %v, want SyntaxError", err)
	}
	want := []string{
		"CAPTURE", "CAPTURE_DISAMBIGUATED", "CASTLE_KINGSIDE", "CASTLE_QUEENSIDE",
		"NON_CAPTURE", "NON_CAPTURE_DISAMBIGUATED", "PROMOTION", "PROMOTION_CAPTURE",
	}
	if diff := cmp.Diff(want, syntaxErr.Expected); diff != "" {
		t.Errorf("Expected mismatch (-want +got):\n%s", diff)
	}
	if syntaxErr.Found != "Zf3" {
		t.Errorf("Found = %q, want %q", syntaxErr.Found, "Zf3")
	}
}

func TestParseMoveIncomplete(t *testing.T) {
	for _, text := range []string{"", "Nf", "exd8="} {
		_, err := ParseMove(text)
		if !stderrors.Is(err, perrors.ErrIncompleteInput) {
			t.Errorf("ParseMove(%q) error = %v, want incomplete input", text, err)
		}
	}
}

func TestMoveFormsOrder(t *testing.T) {
	want := []Rule{
		CastleQueenside,
		CastleKingside,
		PromotionCapture,
		PromotionMove,
		CaptureDisambiguated,
		CaptureMove,
		NonCaptureDisambiguated,
		NonCaptureMove,
	}
	if diff := cmp.Diff(want, MoveForms()); diff != "" {
		t.Errorf("MoveForms() mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleString(t *testing.T) {
	if got := NonCaptureDisambiguated.String(); got != "NON_CAPTURE_DISAMBIGUATED" {
		t.Errorf("String() = %q, want %q", got, "NON_CAPTURE_DISAMBIGUATED")
	}
	if got := Rule(-1).String(); got != "UNKNOWN" {
		t.Errorf("Rule(-1).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestNodeString(t *testing.T) {
	n, err := ParseMove("e4")
	if err != nil {
		t.Fatal(err)
	}
	got := n.String()
	for _, s := range []string{`MOVE@0 "e4"`, `  NON_CAPTURE@0 "e4"`, `    SQUARE@0 "e4"`, `      FILE@0 "e"`} {
		if !strings.Contains(got, s) {
			t.Errorf("String() = %q, should contain %q", got, s)
		}
	}
}
