package builder

import (
	"strings"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/errors"
	"github.com/lgbarn/chess-notation-go/internal/parser"
)

// BuildGames converts a DATABASE node into its games. An error names the
// 1-based index of the game that failed.
func BuildGames(n *parser.Node) ([]*chess.Game, error) {
	if err := expectRule(n, parser.Database); err != nil {
		return nil, err
	}
	nodes := n.ChildrenOf(parser.Game)
	games := make([]*chess.Game, 0, len(nodes))
	for i, gn := range nodes {
		g, err := BuildGame(gn)
		if err != nil {
			return nil, &errors.InputError{Err: err, Index: i + 1}
		}
		games = append(games, g)
	}
	return games, nil
}

// BuildGame converts a GAME node into a Game.
func BuildGame(n *parser.Node) (*chess.Game, error) {
	if err := expectRule(n, parser.Game); err != nil {
		return nil, err
	}

	game := chess.NewGame()
	for _, c := range n.Children {
		switch c.Rule {
		case parser.Tag:
			tag, err := buildTag(c)
			if err != nil {
				return nil, err
			}
			game.Tags = append(game.Tags, tag)
		case parser.MovePair:
			pair, err := buildPair(c)
			if err != nil {
				return nil, err
			}
			game.Pairs = append(game.Pairs, pair)
		case parser.Result:
			result, ok := chess.ParseResult(c.Text)
			if !ok {
				return nil, structural(parser.Result, "unknown result %q", c.Text)
			}
			game.Result = result
		}
	}

	if len(game.Pairs) == 0 {
		return nil, structural(parser.Game, "no moves")
	}
	if game.Result == chess.NoResult {
		return nil, structural(parser.Game, "missing result")
	}
	return game, nil
}

func buildTag(n *parser.Node) (chess.Tag, error) {
	name, err := required(n, parser.TagName)
	if err != nil {
		return chess.Tag{}, err
	}
	value, err := required(n, parser.TagValue)
	if err != nil {
		return chess.Tag{}, err
	}
	return chess.Tag{Name: clone(name), Value: unescape(value.Text)}, nil
}

// unescape resolves \" and \\ in a tag value. Other backslashes are kept.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return strings.Clone(s)
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// buildPair fills a MovePair from the children of a MOVE_PAIR node. The
// slot of a comment is decided by the moves seen before it.
func buildPair(n *parser.Node) (chess.MovePair, error) {
	var pair chess.MovePair
	moves := 0

	for _, c := range n.Children {
		switch c.Rule {
		case parser.MoveNumber:
			num, err := parseMoveNumber(c)
			if err != nil {
				return chess.MovePair{}, err
			}
			pair.Number = num
		case parser.Move:
			m, err := BuildMove(c)
			if err != nil {
				return chess.MovePair{}, err
			}
			if moves == 0 {
				pair.White = m
			} else {
				pair.Black = &m
			}
			moves++
		case parser.Comment:
			comment := &chess.Comment{}
			if text := c.Child(parser.CommentText); text != nil {
				comment.Text = clone(text)
			}
			if moves == 1 {
				pair.WhiteComment = comment
			} else {
				pair.BlackComment = comment
			}
		case parser.Restart:
			num, err := required(c, parser.MoveNumber)
			if err != nil {
				return chess.MovePair{}, err
			}
			restart, err := parseMoveNumber(num)
			if err != nil {
				return chess.MovePair{}, err
			}
			pair.Restart = restart
		}
	}

	if moves == 0 {
		return chess.MovePair{}, structural(parser.MovePair, "no move")
	}
	return pair, nil
}

// parseMoveNumber reads a move number; numbering starts at 1.
func parseMoveNumber(n *parser.Node) (uint, error) {
	num, err := parseCount(n)
	if err != nil {
		return 0, err
	}
	if num == 0 {
		return 0, structural(parser.MoveNumber, "move numbers start at 1")
	}
	return num, nil
}
