package chess

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// MissingRosterTags returns the roster tags the game does not carry.
func (g *Game) MissingRosterTags() []string {
	var missing []string
	for _, t := range SevenTagRoster {
		if !g.HasTag(t) {
			missing = append(missing, t)
		}
	}
	return missing
}

// ResultTagConsistent reports whether a Result tag, if present, agrees with
// the terminating result of the move text.
func (g *Game) ResultTagConsistent() bool {
	tag := g.GetTag("Result")
	if tag == "" || tag == "*" || tag == "?" {
		return true
	}
	return tag == g.Result.String()
}
