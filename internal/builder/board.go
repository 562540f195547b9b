package builder

import (
	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/parser"
)

// BuildBoard converts a BOARD node into a BoardState.
func BuildBoard(n *parser.Node) (*chess.BoardState, error) {
	if err := expectRule(n, parser.Board); err != nil {
		return nil, err
	}

	ranks, err := buildRanks(n)
	if err != nil {
		return nil, err
	}
	b := &chess.BoardState{Ranks: ranks}

	colour, err := required(n, parser.ActiveColour)
	if err != nil {
		return nil, err
	}
	if colour.Text == "b" {
		b.ToMove = chess.Black
	}

	castling, err := required(n, parser.Castling)
	if err != nil {
		return nil, err
	}
	b.Castling = buildCastling(castling.Text)

	ep, err := required(n, parser.EnPassant)
	if err != nil {
		return nil, err
	}
	if sq := ep.Child(parser.Square); sq != nil {
		target := square(sq)
		b.EnPassant = &target
	}

	halfmove, err := required(n, parser.HalfmoveClock)
	if err != nil {
		return nil, err
	}
	if b.HalfmoveClock, err = parseCount(halfmove); err != nil {
		return nil, err
	}

	fullmove, err := required(n, parser.FullmoveNumber)
	if err != nil {
		return nil, err
	}
	if b.MoveNumber, err = parseCount(fullmove); err != nil {
		return nil, err
	}
	if b.MoveNumber == 0 {
		return nil, structural(parser.FullmoveNumber, "full-move counter starts at 1")
	}

	return b, nil
}

// CheckPlacement reports the first rank of a PLACEMENT node that does not
// describe eight squares.
func CheckPlacement(n *parser.Node) error {
	if err := expectRule(n, parser.Placement); err != nil {
		return err
	}
	_, err := buildRanks(n)
	return err
}

func buildRanks(n *parser.Node) ([chess.BoardSize]chess.Row, error) {
	var rows [chess.BoardSize]chess.Row

	ranks := n.ChildrenOf(parser.BoardRank)
	if len(ranks) != chess.BoardSize {
		return rows, structural(n.Rule, "%d ranks, want %d", len(ranks), chess.BoardSize)
	}
	for i, rn := range ranks {
		row, err := buildRow(rn)
		if err != nil {
			return rows, err
		}
		if squares := row.Squares(); squares != chess.BoardSize {
			return rows, structural(parser.BoardRank, "rank %d describes %d squares, want %d",
				chess.BoardSize-i, squares, chess.BoardSize)
		}
		rows[i] = row
	}
	return rows, nil
}

func buildRow(n *parser.Node) (chess.Row, error) {
	row := make(chess.Row, 0, len(n.Children))
	for _, c := range n.Children {
		content, ok := chess.ContentFromSymbol(c.Text[0])
		if !ok {
			return nil, structural(c.Rule, "unknown symbol %q", c.Text)
		}
		row = append(row, content)
	}
	return row, nil
}

func buildCastling(text string) chess.CastlingRights {
	var rights chess.CastlingRights
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		}
	}
	return rights
}
