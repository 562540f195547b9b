package matching

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/errors"
)

func testGame() *chess.Game {
	return &chess.Game{Tags: []chess.Tag{
		{Name: "Event", Value: "Olympiad 1970"},
		{Name: "Date", Value: "1970.09.??"},
		{Name: "Round", Value: "3"},
		{Name: "White", Value: "Fischer, Robert J."},
		{Name: "Black", Value: "Müller, Hans"},
		{Name: "WhiteElo", Value: "2740"},
	}}
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`White "Fischer, Robert J."`, true},
		{`White = "fischer, robert j."`, true},
		{`Black != "Tal"`, true},
		{`Annotator != "x"`, true},
		{`Annotator = "x"`, false},
		{`Date >= "1970.01.01"`, true},
		{`Date < "1970"`, false},
		{`WhiteElo > "2700"`, true},
		{`WhiteElo < "900"`, false},
		{`Round <= 3`, true},
		{`Event ~ "^Olym"`, true},
		{`Event ~ "Cup$"`, false},
	}

	game := testGame()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			if err := tm.ParseCriterion(tt.line); err != nil {
				t.Fatalf("ParseCriterion error: %v", err)
			}
			if tm.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", tm.Len())
			}
			if got := tm.Matches(game); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCriterion_Skips(t *testing.T) {
	tm := NewTagMatcher()
	for _, line := range []string{"", "   ", "# White \"x\""} {
		if err := tm.ParseCriterion(line); err != nil {
			t.Errorf("ParseCriterion(%q) error: %v", line, err)
		}
	}
	if tm.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tm.Len())
	}
}

func TestParseCriterion_Errors(t *testing.T) {
	for _, line := range []string{`= "x"`, `Event ~ "("`, "White"} {
		t.Run(line, func(t *testing.T) {
			err := NewTagMatcher().ParseCriterion(line)
			if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseCriteria_ReportsLine(t *testing.T) {
	err := NewTagMatcher().ParseCriteria("# players\nWhite \"x\"\nEvent ~ \"(\"\n")
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestPlayerCriteria(t *testing.T) {
	tests := []struct {
		name string
		add  func(*TagMatcher)
		want bool
	}{
		{"player substring folds accents", func(tm *TagMatcher) { tm.AddPlayer("muller", false) }, true},
		{"player substring misses", func(tm *TagMatcher) { tm.AddPlayer("spassky", false) }, false},
		{"white soundex by surname", func(tm *TagMatcher) { tm.AddWhite("Fisher", true) }, true},
		{"black is not white", func(tm *TagMatcher) { tm.AddBlack("Fischer", false) }, false},
		{"black soundex", func(tm *TagMatcher) { tm.AddBlack("Muler", true) }, true},
	}

	game := testGame()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			tt.add(tm)
			if got := tm.Matches(game); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	tm := NewTagMatcher()
	tm.AddPlayer("Spassky", false)
	tm.AddPlayer("Fischer", false)

	game := testGame()
	if tm.Matches(game) {
		t.Error("all criteria: Matches() = true, want false")
	}
	tm.SetMatchAny(true)
	if !tm.Matches(game) {
		t.Error("any criterion: Matches() = false, want true")
	}
}

func TestRepeatedTagAnyValueMatches(t *testing.T) {
	game := &chess.Game{Tags: []chess.Tag{
		{Name: "Annotator", Value: "A"},
		{Name: "Annotator", Value: "B"},
	}}
	tm := NewTagMatcher()
	if err := tm.Add("Annotator", "b", OpEqual); err != nil {
		t.Fatal(err)
	}
	if !tm.Matches(game) {
		t.Error("second value of a repeated tag did not match")
	}
}

func TestEmptyMatcherMatchesAll(t *testing.T) {
	if !NewTagMatcher().Matches(&chess.Game{}) {
		t.Error("empty matcher rejected a game")
	}
}
