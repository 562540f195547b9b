// Package matching selects games by their tag values.
package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/errors"
	"github.com/lgbarn/chess-notation-go/internal/input"
)

// Operator compares a tag value with a criterion value.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpContains
	OpRegex
	OpSoundex
)

// PlayerTag is the pseudo tag name that matches either the White or the
// Black tag.
const PlayerTag = "Player"

// operators in the order they are tried; two character forms first.
var operators = []struct {
	text string
	op   Operator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLess},
	{">", OpGreater},
	{"=", OpEqual},
	{"~", OpRegex},
}

// Criterion is a single tag test.
type Criterion struct {
	Tag   string
	Value string
	Op    Operator

	re    *regexp.Regexp
	code  string
	lower string
}

// TagMatcher tests games against a list of criteria. By default every
// criterion must hold.
type TagMatcher struct {
	criteria []*Criterion
	matchAny bool
}

// NewTagMatcher creates a matcher with no criteria.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{}
}

// SetMatchAny makes one passing criterion enough.
func (tm *TagMatcher) SetMatchAny(matchAny bool) {
	tm.matchAny = matchAny
}

// Add appends a criterion. A regex value must compile.
func (tm *TagMatcher) Add(tag, value string, op Operator) error {
	c := &Criterion{Tag: tag, Value: value, Op: op}
	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s: %v: %w", tag, err, errors.ErrInvalidConfig)
		}
		c.re = re
	case OpSoundex:
		c.code = Soundex(value)
	case OpContains:
		c.lower = strings.ToLower(foldAccents(value))
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayer matches a name against either player, by substring or by
// soundex code.
func (tm *TagMatcher) AddPlayer(name string, soundex bool) {
	tm.addName(PlayerTag, name, soundex)
}

// AddWhite matches a name against the White tag.
func (tm *TagMatcher) AddWhite(name string, soundex bool) {
	tm.addName("White", name, soundex)
}

// AddBlack matches a name against the Black tag.
func (tm *TagMatcher) AddBlack(name string, soundex bool) {
	tm.addName("Black", name, soundex)
}

func (tm *TagMatcher) addName(tag, name string, soundex bool) {
	op := OpContains
	if soundex {
		op = OpSoundex
	}
	_ = tm.Add(tag, name, op) // only regex criteria can fail
}

// ParseCriterion adds a criterion written as
//
//	TagName [operator] "value"
//
// Blank lines and lines starting with '#' are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("criterion %q has no value: %w", line, errors.ErrInvalidConfig)
	}
	tag := line[:end]
	rest := strings.TrimSpace(line[end:])

	op := OpEqual
	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			op = o.op
			rest = strings.TrimSpace(rest[len(o.text):])
			break
		}
	}

	value, err := strconv.Unquote(rest)
	if err != nil {
		value = rest
	}
	return tm.Add(tag, value, op)
}

// ParseCriteria adds one criterion per line of text.
func (tm *TagMatcher) ParseCriteria(text string) error {
	for _, line := range input.Lines(text) {
		if err := tm.ParseCriterion(line.Text); err != nil {
			return errors.Wrapf(err, "line %d", line.Number)
		}
	}
	return nil
}

// Matches reports whether the game passes the criteria. A matcher with no
// criteria matches every game.
func (tm *TagMatcher) Matches(game *chess.Game) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		ok := c.matches(game)
		if tm.matchAny && ok {
			return true
		}
		if !tm.matchAny && !ok {
			return false
		}
	}
	return !tm.matchAny
}

// Len returns the number of criteria.
func (tm *TagMatcher) Len() int {
	return len(tm.criteria)
}

// matches holds if any value of the tag passes. A missing tag only passes
// a not-equal test.
func (c *Criterion) matches(game *chess.Game) bool {
	var values []string
	if c.Tag == PlayerTag {
		values = append(game.TagValues("White"), game.TagValues("Black")...)
	} else {
		values = game.TagValues(c.Tag)
	}
	if len(values) == 0 {
		return c.Op == OpNotEqual
	}
	for _, v := range values {
		if c.matchValue(v) {
			return true
		}
	}
	return false
}

func (c *Criterion) matchValue(v string) bool {
	switch c.Op {
	case OpEqual:
		return strings.EqualFold(v, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(v, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(foldAccents(v)), c.lower)
	case OpRegex:
		return c.re.MatchString(v)
	case OpSoundex:
		return c.matchSoundex(v)
	default:
		return compare(v, c.Value, c.Op)
	}
}

// matchSoundex compares the whole value and each of its words, so that
// "Fisher" finds "Fischer, Robert J.".
func (c *Criterion) matchSoundex(v string) bool {
	if c.code == "" {
		return false
	}
	if Soundex(v) == c.code {
		return true
	}
	for _, word := range strings.FieldsFunc(v, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if Soundex(word) == c.code {
			return true
		}
	}
	return false
}

// compare orders dates (YYYY.MM.DD, with ?? parts), then numbers, then
// case-folded strings.
func compare(v, want string, op Operator) bool {
	var cmp int
	vd, wd := parseDate(v), parseDate(want)
	vn, verr := strconv.ParseFloat(v, 64)
	wn, werr := strconv.ParseFloat(want, 64)
	switch {
	case vd > 0 && wd > 0:
		cmp = vd - wd
	case verr == nil && werr == nil:
		switch {
		case vn < wn:
			cmp = -1
		case vn > wn:
			cmp = 1
		}
	default:
		cmp = strings.Compare(strings.ToLower(v), strings.ToLower(want))
	}

	switch op {
	case OpLess:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD. Unknown month or day
// parts count as 1. It returns 0 when the year is not a number.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return 0
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	month, day := 1, 1
	if len(parts) >= 2 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(parts) == 3 {
		if d, err := strconv.Atoi(parts[2]); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day
}
