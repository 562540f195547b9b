package chess

// Comment represents a PGN comment. Text is kept verbatim.
type Comment struct {
	Text string
}

// Result is the terminating result of a game.
type Result int

const (
	NoResult Result = iota
	WhiteWin
	BlackWin
	Draw
)

var resultStrings = [...]string{
	NoResult: "",
	WhiteWin: "1-0",
	BlackWin: "0-1",
	Draw:     "1/2-1/2",
}

// String returns the PGN literal of the result.
func (r Result) String() string {
	if r >= 0 && int(r) < len(resultStrings) {
		return resultStrings[r]
	}
	return ""
}

// ParseResult converts a PGN result literal to a Result.
func ParseResult(s string) (Result, bool) {
	switch s {
	case "1-0":
		return WhiteWin, true
	case "0-1":
		return BlackWin, true
	case "1/2-1/2":
		return Draw, true
	}
	return NoResult, false
}

// MovePair is one numbered entry of the move text: white's move and, unless
// the transcript stops after white, black's reply.
type MovePair struct {
	Number uint

	White        Move
	WhiteComment *Comment

	// Restart is the move number of a repeated "N..." marker between the
	// two moves, or 0 when there is none.
	Restart uint

	Black        *Move
	BlackComment *Comment
}

// HasBlack returns true if the pair has a black move.
func (p *MovePair) HasBlack() bool {
	return p.Black != nil
}

// Plies returns the number of half-moves in the pair.
func (p *MovePair) Plies() int {
	if p.Black != nil {
		return 2
	}
	return 1
}

// Tag is a single metadata entry.
type Tag struct {
	Name  string
	Value string
}

// Game represents a complete chess game with tags, moves, and result.
type Game struct {
	// Tags in input order. Duplicate names are kept as separate entries.
	Tags []Tag

	// The move pairs of the game.
	Pairs []MovePair

	Result Result
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{}
}

// GetTag returns the first value of a tag, or empty string if not present.
func (g *Game) GetTag(name string) string {
	for _, tag := range g.Tags {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}

// TagValues returns every value recorded for a tag name, in input order.
func (g *Game) TagValues(name string) []string {
	var values []string
	for _, tag := range g.Tags {
		if tag.Name == name {
			values = append(values, tag.Value)
		}
	}
	return values
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	for _, tag := range g.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// AppendTag adds a tag after any existing ones.
func (g *Game) AppendTag(name, value string) {
	g.Tags = append(g.Tags, Tag{Name: name, Value: value})
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag("Event")
}

// Site returns the site name.
func (g *Game) Site() string {
	return g.GetTag("Site")
}

// Date returns the date string.
func (g *Game) Date() string {
	return g.GetTag("Date")
}

// Round returns the round string.
func (g *Game) Round() string {
	return g.GetTag("Round")
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	count := 0
	for i := range g.Pairs {
		count += g.Pairs[i].Plies()
	}
	return count
}

// Moves returns the moves of the game in play order.
func (g *Game) Moves() []Move {
	moves := make([]Move, 0, g.PlyCount())
	for i := range g.Pairs {
		moves = append(moves, g.Pairs[i].White)
		if g.Pairs[i].Black != nil {
			moves = append(moves, *g.Pairs[i].Black)
		}
	}
	return moves
}
