package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents maps accented letters to their base letter, so that
// "Müller" and "Muller" compare equal.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Soundex returns a six character phonetic code for a player name.
// Accents are dropped first and vowels never separate equal digits.
func Soundex(name string) string {
	var letters []byte
	for _, r := range strings.ToUpper(foldAccents(name)) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte{letters[0]}
	last := soundexDigit(letters[0])
	for _, c := range letters[1:] {
		if len(code) == 6 {
			break
		}
		d := soundexDigit(c)
		if d != '0' && d != last {
			code = append(code, d)
		}
		if d != '0' {
			last = d
		}
	}
	for len(code) < 6 {
		code = append(code, '0')
	}
	return string(code)
}

func soundexDigit(c byte) byte {
	switch c {
	case 'B', 'F', 'P', 'V', 'W':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	default:
		return '0'
	}
}
