package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-notation-go/internal/notation"
	"github.com/lgbarn/chess-notation-go/internal/output"
)

// Request is a websocket parse request.
type Request struct {
	ID   string `json:"id,omitempty"` // echoed in the reply
	Kind string `json:"kind"`         // "game", "games", "board" or "move"
	Text string `json:"text"`
}

// Reply answers one Request. Exactly one of Result and Error is set.
type Reply struct {
	ID     string         `json:"id,omitempty"`
	Kind   string         `json:"kind"`
	Result any            `json:"result,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

// wsHandler answers each request message with one reply, in order, until
// the client closes the connection.
func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(app.maxBodySize)

	if app.cfg.Verbosity > 1 {
		fmt.Fprintf(app.cfg.LogFile, "New websocket connection from %s\n", conn.RemoteAddr())
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if app.cfg.Verbosity > 1 && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				fmt.Fprintf(app.cfg.LogFile, "Error reading message: %v\n", err)
			}
			return
		}

		var req Request
		var reply Reply
		if err := json.Unmarshal(data, &req); err != nil {
			reply = Reply{Kind: "invalid", Error: &ErrorResponse{Error: err.Error()}}
		} else {
			reply = app.handleRequest(req)
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (app *Application) handleRequest(req Request) Reply {
	reply := Reply{ID: req.ID, Kind: req.Kind}

	var err error
	switch req.Kind {
	case "game":
		game, perr := notation.ParseGame(req.Text)
		if err = perr; err == nil {
			reply.Result = app.gameJSON(game)
		}
	case "games":
		games, perr := notation.ParseGames(req.Text)
		if err = perr; err == nil {
			reply.Result = app.gamesJSON(games)
		}
	case "board":
		board, perr := notation.ParseBoard(req.Text)
		if err = perr; err == nil {
			reply.Result = app.boardJSON(board)
		}
	case "move":
		move, perr := notation.ParseMove(req.Text)
		if err = perr; err == nil {
			reply.Result = output.MoveToJSON(move)
		}
	default:
		err = fmt.Errorf("unknown request kind %q", req.Kind)
	}

	if err != nil {
		resp := NewErrorResponse(err)
		reply.Error = &resp
	}
	return reply
}
