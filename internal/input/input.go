// Package input reads notation files: it decodes their text and splits
// board files into lines.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chess-notation-go/internal/config"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts file contents to a string. A UTF-8 byte order mark is
// dropped. Latin-1 is used when configured, or as a fallback for data that
// is not valid UTF-8, since older PGN files are commonly Latin-1.
func Decode(data []byte, enc config.Encoding) (string, error) {
	if enc == config.UTF8 {
		data = bytes.TrimPrefix(data, utf8BOM)
		if utf8.Valid(data) {
			return string(data), nil
		}
	}
	decoded, err := io.ReadAll(NewReader(bytes.NewReader(data), config.Latin1))
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(decoded), nil
}

// NewReader returns a reader that yields UTF-8 text. A byte order mark, if
// present, selects UTF-8 or UTF-16; otherwise enc applies.
func NewReader(r io.Reader, enc config.Encoding) io.Reader {
	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if enc == config.Latin1 {
		fallback = charmap.ISO8859_1.NewDecoder()
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback))
}

// ReadFile reads and decodes a whole file.
func ReadFile(path string, enc config.Encoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data, enc)
}

// Line is one non-blank line of a board file.
type Line struct {
	Number int // 1-based
	Text   string
}

// Lines splits text into its non-blank lines. Lines starting with '#' or
// '%' are comments and skipped.
func Lines(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '%' {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: line})
	}
	return lines
}
