// notation-server serves the notation parsers over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/server"
)

func main() {
	var port uint
	var latin1, quiet, verbose, duplicates, exact bool
	var capacity int
	flag.UintVar(&port, "port", server.DefaultPort, "Port to listen on")
	flag.BoolVar(&duplicates, "D", false, "Mark games and boards that an earlier request already sent")
	flag.BoolVar(&exact, "exact", false, "Compare full positions and ply counts when detecting duplicates")
	flag.IntVar(&capacity, "duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	flag.BoolVar(&latin1, "latin1", false, "Decode request bodies as ISO 8859-1")
	flag.BoolVar(&quiet, "s", false, "Silent mode (no startup message)")
	flag.BoolVar(&verbose, "v", false, "Print stack traces of recovered panics")
	flag.Parse()

	cfg := config.NewConfig()
	if latin1 {
		cfg.Input.Encoding = config.Latin1
	}
	cfg.Duplicate.Suppress = duplicates
	cfg.Duplicate.ExactMatch = exact
	cfg.Duplicate.MaxCapacity = capacity
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	switch {
	case quiet:
		cfg.Verbosity = 0
	case verbose:
		cfg.Verbosity = 2
	}

	app := server.NewApplication(cfg)
	if err := app.ListenAndServe(port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
