package server

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chess-notation-go/internal/notation"
	"github.com/lgbarn/chess-notation-go/internal/output"
)

func (app *Application) gameHandler(w http.ResponseWriter, r *http.Request) {
	text, err := app.readText(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	game, err := notation.ParseGame(text)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "pgn" {
		app.seenGame(game)
		w.Header().Set("Content-Type", "application/x-chess-pgn")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, output.FormatPGN(game, app.cfg.Output)) //nolint:errcheck // client went away
		return
	}
	writeJSON(w, http.StatusOK, app.gameJSON(game))
}

func (app *Application) gamesHandler(w http.ResponseWriter, r *http.Request) {
	text, err := app.readText(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	games, err := notation.ParseGames(text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.gamesJSON(games))
}

func (app *Application) boardHandler(w http.ResponseWriter, r *http.Request) {
	text, err := app.readText(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	board, err := notation.ParseBoard(text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.boardJSON(board))
}

func (app *Application) moveHandler(w http.ResponseWriter, r *http.Request) {
	move, err := notation.ParseMove(mux.Vars(r)["san"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.MoveToJSON(move))
}
