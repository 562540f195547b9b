package server

import (
	stderrors "errors"
	"net/http"

	"github.com/lgbarn/chess-notation-go/internal/errors"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Kind     string   `json:"kind,omitempty"` // "syntax", "structural" or "incomplete"
	Error    string   `json:"error"`
	Rule     string   `json:"rule,omitempty"`
	Offset   int      `json:"offset,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Expected []string `json:"expected,omitempty"`
	Found    string   `json:"found,omitempty"`
	Game     int      `json:"game,omitempty"` // 1-based game index within a batch
}

// NewErrorResponse describes err, copying the position details of parse
// errors.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Kind: errors.Kind(err), Error: err.Error()}

	var (
		syntax     *errors.SyntaxError
		incomplete *errors.IncompleteInputError
		structural *errors.StructuralError
		input      *errors.InputError
	)
	switch {
	case stderrors.As(err, &syntax):
		resp.Rule = syntax.Rule
		resp.Offset = syntax.Offset
		resp.Line = syntax.Line
		resp.Column = syntax.Column
		resp.Expected = syntax.Expected
		resp.Found = syntax.Found
	case stderrors.As(err, &incomplete):
		resp.Rule = incomplete.Rule
		resp.Offset = incomplete.Offset
		resp.Expected = incomplete.Expected
	case stderrors.As(err, &structural):
		resp.Rule = structural.Rule
	}
	if stderrors.As(err, &input) {
		resp.Game = input.Index
	}
	return resp
}

// statusFor maps an error to an HTTP status: parse failures are 422,
// oversized bodies 413 and anything else 400.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Kind(err) != "":
		return http.StatusUnprocessableEntity
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), NewErrorResponse(err))
}
