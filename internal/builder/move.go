package builder

import (
	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/parser"
)

// moveBuilder constructs a move from the node of one move form.
type moveBuilder func(form *parser.Node) (chess.Move, error)

// moveBuilders holds one constructor per move form rule.
var moveBuilders = map[parser.Rule]moveBuilder{
	parser.CastleQueenside:         castle(chess.QueensideCastle),
	parser.CastleKingside:          castle(chess.KingsideCastle),
	parser.PromotionCapture:        promotion(chess.PromotionCapture),
	parser.PromotionMove:           promotion(chess.Promotion),
	parser.CaptureDisambiguated:    pieceMove(chess.Capture, true),
	parser.CaptureMove:             pieceMove(chess.Capture, false),
	parser.NonCaptureDisambiguated: pieceMove(chess.NonCapture, true),
	parser.NonCaptureMove:          pieceMove(chess.NonCapture, false),
}

// BuildMove converts a MOVE node into a Move.
func BuildMove(n *parser.Node) (chess.Move, error) {
	if err := expectRule(n, parser.Move); err != nil {
		return chess.Move{}, err
	}
	if len(n.Children) != 1 {
		return chess.Move{}, structural(parser.Move, "expected one move form, got %d", len(n.Children))
	}
	form := n.Children[0]
	build, ok := moveBuilders[form.Rule]
	if !ok {
		return chess.Move{}, structural(parser.Move, "unknown move form %s", form.Rule)
	}
	m, err := build(form)
	if err != nil {
		return chess.Move{}, err
	}
	m.Text = clone(form)
	m.CheckStatus = checkStatus(form)
	if a := form.Child(parser.Annotation); a != nil {
		m.NAG = chess.AnnotationToNAG(a.Text)
	}
	return m, nil
}

func castle(class chess.MoveClass) moveBuilder {
	return func(*parser.Node) (chess.Move, error) {
		return chess.Move{Class: class, Piece: chess.King}, nil
	}
}

func promotion(class chess.MoveClass) moveBuilder {
	return func(form *parser.Node) (chess.Move, error) {
		from, err := required(form, parser.FromFile)
		if err != nil {
			return chess.Move{}, err
		}
		rank, err := required(form, parser.PromotionRank)
		if err != nil {
			return chess.Move{}, err
		}
		promoted, err := required(form, parser.PromotedPiece)
		if err != nil {
			return chess.Move{}, err
		}

		m := chess.Move{
			Class:    class,
			Piece:    chess.Pawn,
			FromFile: chess.File(from.Text[0]),
			Target:   chess.NewSquare(chess.File(from.Text[0]), chess.Rank(rank.Text[0])),
			Promoted: chess.PieceFromLetter(promoted.Text[0]),
		}
		if class == chess.PromotionCapture {
			to, err := required(form, parser.ToFile)
			if err != nil {
				return chess.Move{}, err
			}
			m.Target.File = chess.File(to.Text[0])
		}
		if !m.Promoted.IsPromotionTarget() {
			return chess.Move{}, structural(form.Rule, "cannot promote to %s", m.Promoted)
		}
		return m, nil
	}
}

// pieceMove builds the capture and non-capture forms. A missing piece
// letter means a pawn, which may only be disambiguated by its file.
func pieceMove(class chess.MoveClass, disambiguated bool) moveBuilder {
	return func(form *parser.Node) (chess.Move, error) {
		sq, err := required(form, parser.Square)
		if err != nil {
			return chess.Move{}, err
		}
		m := chess.Move{
			Class:  class,
			Piece:  chess.Pawn,
			Target: square(sq),
		}
		if p := form.Child(parser.Piece); p != nil {
			m.Piece = chess.PieceFromLetter(p.Text[0])
		}
		if disambiguated {
			d, err := required(form, parser.Disambiguator)
			if err != nil {
				return chess.Move{}, err
			}
			m.Disambiguator = chess.Disambiguator(d.Text[0])
		}

		if m.Piece == chess.Pawn {
			switch {
			case class == chess.Capture && !m.Disambiguator.IsFile():
				return chess.Move{}, structural(form.Rule, "pawn capture %q needs a source file", form.Text)
			case class == chess.NonCapture && m.Disambiguator != chess.NoDisambiguator:
				return chess.Move{}, structural(form.Rule, "pawn move %q cannot be disambiguated", form.Text)
			}
		}
		return m, nil
	}
}

// square converts a SQUARE node; the grammar guarantees a file and a rank.
func square(n *parser.Node) chess.Square {
	return chess.NewSquare(chess.File(n.Text[0]), chess.Rank(n.Text[1]))
}

func checkStatus(form *parser.Node) chess.CheckStatus {
	c := form.Child(parser.CheckSymbol)
	if c == nil {
		return chess.NoCheck
	}
	if c.Text == "#" {
		return chess.Checkmate
	}
	return chess.Check
}
