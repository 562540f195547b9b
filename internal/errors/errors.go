// Package errors provides sentinel errors and error types for notation parsing.
// It defines the parse error taxonomy as structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrSyntax indicates no grammar alternative matched at some position.
	ErrSyntax = errors.New("syntax error")

	// ErrStructural indicates the grammar matched but a structural
	// invariant (such as eight squares per rank) does not hold.
	ErrStructural = errors.New("structural error")

	// ErrIncompleteInput indicates the input ended before a required token.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SyntaxError reports the furthest position the grammar reached and the
// rules it expected there.
type SyntaxError struct {
	Offset   int      // Byte offset into the input (0-based)
	Line     int      // Line number (1-based)
	Column   int      // Column number (1-based)
	Rule     string   // Top-level rule being matched
	Expected []string // Rule names or literals expected at Offset
	Found    string   // Text found at Offset
}

// Error returns a formatted error message with location and context.
func (e *SyntaxError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%d:%d", e.Line, e.Column))
	if e.Rule != "" {
		parts = append(parts, e.Rule)
	}
	if len(e.Expected) > 0 {
		expected := "expected " + strings.Join(e.Expected, " or ")
		if e.Found != "" {
			expected += fmt.Sprintf(", got %q", e.Found)
		}
		parts = append(parts, expected)
	} else if e.Found != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Found))
	}

	return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), ErrSyntax)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// StructuralError reports a violated invariant of a successfully matched rule.
type StructuralError struct {
	Rule   string
	Reason string
}

// Error returns a formatted error message.
func (e *StructuralError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("%s: %v", e.Reason, ErrStructural)
	}
	return fmt.Sprintf("%s: %s: %v", e.Rule, e.Reason, ErrStructural)
}

// Unwrap returns ErrStructural.
func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// IncompleteInputError reports that the input ended while the grammar still
// required a token.
type IncompleteInputError struct {
	Offset   int
	Rule     string
	Expected []string
}

// Error returns a formatted error message.
func (e *IncompleteInputError) Error() string {
	msg := fmt.Sprintf("offset %d", e.Offset)
	if e.Rule != "" {
		msg += ": " + e.Rule
	}
	if len(e.Expected) > 0 {
		msg += ": expected " + strings.Join(e.Expected, " or ")
	}
	return fmt.Sprintf("%s: %v", msg, ErrIncompleteInput)
}

// Unwrap returns ErrIncompleteInput.
func (e *IncompleteInputError) Unwrap() error {
	return ErrIncompleteInput
}

// InputError wraps errors with input context: the source name (file, HTTP
// request) and the index of the game or line within it.
type InputError struct {
	Err   error  // The underlying error
	Name  string // Source name (if known)
	Index int    // 1-based game or line number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *InputError) Error() string {
	var parts []string

	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("#%d", e.Index))
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "input error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the InputError wrapper.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Kind names the taxonomy class of err: "syntax", "structural",
// "incomplete", or "" for anything else.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrSyntax):
		return "syntax"
	case errors.Is(err, ErrStructural):
		return "structural"
	case errors.Is(err, ErrIncompleteInput):
		return "incomplete"
	}
	return ""
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
