package worker

import (
	stderrors "errors"

	"github.com/lgbarn/chess-notation-go/internal/config"
	"github.com/lgbarn/chess-notation-go/internal/errors"
	"github.com/lgbarn/chess-notation-go/internal/notation"
)

// ParseFunc returns the ProcessFunc for an input mode. Failures are wrapped
// in an InputError naming the item.
func ParseFunc(mode config.InputMode) ProcessFunc {
	if mode == config.BoardInput {
		return parseBoard
	}
	return parseGames
}

func parseGames(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Name: item.Name}
	games, err := notation.ParseGames(item.Text)
	if err != nil {
		result.Error = inputError(item, err)
		return result
	}
	result.Games = games
	return result
}

func parseBoard(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Name: item.Name}
	board, err := notation.ParseBoard(item.Text)
	if err != nil {
		result.Error = inputError(item, err)
		return result
	}
	result.Board = board
	return result
}

// inputError attaches the item name. Game errors already carry the game
// index; board errors get the line number.
func inputError(item WorkItem, err error) error {
	var ie *errors.InputError
	if stderrors.As(err, &ie) {
		ie.Name = item.Name
		return ie
	}
	return &errors.InputError{Err: err, Name: item.Name, Index: item.Line}
}

// Run parses items with a pool of the given size and hands each result to
// handle in submission order. Item indexes must count up from 0. Once
// handle returns false the pool is stopped: unparsed items are skipped and
// no further results are handled.
func Run(items []WorkItem, workers int, process ProcessFunc, handle func(ProcessResult) bool) {
	pool := NewPoolWithOptions(process, WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	// Results arrive in completion order; hold them until their turn.
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range pool.Results() {
		if pool.IsStopped() {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if !handle(ready) {
				pool.Stop()
				break
			}
		}
	}
}
