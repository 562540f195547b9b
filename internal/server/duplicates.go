package server

import (
	"net/http"

	"github.com/lgbarn/chess-notation-go/internal/chess"
	"github.com/lgbarn/chess-notation-go/internal/output"
)

// DuplicateStats is the body of GET /api/duplicates.
type DuplicateStats struct {
	Unique     int  `json:"unique"`
	Duplicates int  `json:"duplicates"`
	Full       bool `json:"full"`
}

// seenGame records game and reports whether an earlier request sent it.
func (app *Application) seenGame(game *chess.Game) bool {
	return app.detector != nil && app.detector.CheckAndAddGame(game)
}

func (app *Application) seenBoard(board *chess.BoardState) bool {
	return app.detector != nil && app.detector.CheckAndAddBoard(board)
}

func (app *Application) gameJSON(game *chess.Game) *output.JSONGame {
	jg := output.GameToJSON(game, app.cfg.Output)
	jg.Duplicate = app.seenGame(game)
	return jg
}

func (app *Application) gamesJSON(games []*chess.Game) *output.JSONOutput {
	out := output.GamesToJSON(games, app.cfg.Output)
	for i, game := range games {
		out.Games[i].Duplicate = app.seenGame(game)
	}
	return out
}

func (app *Application) boardJSON(board *chess.BoardState) *output.JSONBoard {
	jb := output.BoardToJSON(board)
	jb.Duplicate = app.seenBoard(board)
	return jb
}

func (app *Application) duplicatesHandler(w http.ResponseWriter, r *http.Request) {
	if app.detector == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "duplicate detection is off"})
		return
	}
	writeJSON(w, http.StatusOK, DuplicateStats{
		Unique:     app.detector.UniqueCount(),
		Duplicates: app.detector.DuplicateCount(),
		Full:       app.detector.IsFull(),
	})
}
