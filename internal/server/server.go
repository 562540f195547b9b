// Package server exposes the notation parsers over HTTP and a websocket.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/hashing"
	"github.com/lgbarn/chess-notation-go/internal/input"
)

// DefaultPort is the port the server listens on when none is given.
const DefaultPort = 8080

// DefaultMaxBodySize limits request bodies and websocket messages.
const DefaultMaxBodySize = 4 << 20

// Application routes parse requests to the notation parsers.
type Application struct {
	router      *mux.Router
	handler     http.Handler
	cfg         *config.Config
	upgrader    websocket.Upgrader
	maxBodySize int64

	// detector is shared by all requests; nil unless duplicate detection
	// is enabled.
	detector *hashing.ThreadSafeDuplicateDetector
}

// NewApplication builds the router. Requests are logged to cfg.LogFile in
// Apache common log format, and handler panics become 500 responses.
func NewApplication(cfg *config.Config) *Application {
	app := &Application{
		router: mux.NewRouter(),
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		maxBodySize: DefaultMaxBodySize,
	}
	if cfg.Duplicate.Enabled() {
		app.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}

	app.router.NotFoundHandler = app.logged(http.HandlerFunc(notFoundHandler))
	app.router.Use(app.logged)

	api := app.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/game", app.gameHandler).Methods(http.MethodPost)
	api.HandleFunc("/games", app.gamesHandler).Methods(http.MethodPost)
	api.HandleFunc("/board", app.boardHandler).Methods(http.MethodPost)
	api.HandleFunc("/move/{san}", app.moveHandler).Methods(http.MethodGet)
	api.HandleFunc("/duplicates", app.duplicatesHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/ws", app.wsHandler)

	app.handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.New(cfg.LogFile, "", log.LstdFlags)),
		handlers.PrintRecoveryStack(cfg.Verbosity > 1),
	)(app.router)
	return app
}

func (app *Application) logged(next http.Handler) http.Handler {
	return handlers.LoggingHandler(app.cfg.LogFile, next)
}

// ServeHTTP implements http.Handler.
func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.handler.ServeHTTP(w, r)
}

// ListenAndServe serves the application on the given port.
func (app *Application) ListenAndServe(port uint) error {
	if port == 0 || port > 65535 {
		return fmt.Errorf("invalid port number %d", port)
	}
	if app.cfg.Verbosity > 0 {
		fmt.Fprintf(app.cfg.LogFile, "Starting server on :%d\n", port)
	}
	return http.ListenAndServe(fmt.Sprintf(":%d", port), app)
}

// readText reads and decodes a request body.
func (app *Application) readText(w http.ResponseWriter, r *http.Request) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, app.maxBodySize))
	if err != nil {
		return "", err
	}
	return input.Decode(data, app.cfg.Input.Encoding)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
}
