package hashing

import (
	"sync"

	"github.com/lgbarn/chess-notation-go/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAddGame atomically checks a game and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAddGame(game *chess.Game) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddGame(game)
}

// CheckAndAddBoard atomically checks a board and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAddBoard(board *chess.BoardState) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddBoard(board)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of stored signatures.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
