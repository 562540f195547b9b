// Package hashing provides duplicate detection for parsed games and boards.
package hashing

import (
	"hash/crc32"
	"hash/fnv"
	"strings"

	"github.com/lgbarn/chess-notation-go/internal/chess"
)

// Signature stores identifying information about a game or board.
type Signature struct {
	// Hash is the FNV-1a hash of the canonical key
	Hash uint64
	// Length is the number of half-moves for a game, 0 for a board
	Length int
	// WeakHash is an independent checksum of the same key
	WeakHash uint32
}

// DuplicateDetector tracks seen signatures for duplicate detection.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// exactMatch also compares side to move, castling and en passant for
	// boards, and ply counts for games
	exactMatch     bool
	duplicateCount int
	uniqueCount    int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAddGame reports whether an equal game has been seen, and records
// it if not.
func (d *DuplicateDetector) CheckAndAddGame(game *chess.Game) bool {
	return d.checkAndAdd(GameSignature(game))
}

// CheckAndAddBoard reports whether an equal board has been seen, and
// records it if not.
func (d *DuplicateDetector) CheckAndAddBoard(board *chess.BoardState) bool {
	return d.checkAndAdd(BoardSignature(board, d.exactMatch))
}

func (d *DuplicateDetector) checkAndAdd(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.exactMatch && a.Length != b.Length {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored signatures.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// GameSignature hashes the canonical SAN of every move and the result.
// Tags, comments and move numbers do not contribute, nor does the
// spelling of castling.
func GameSignature(game *chess.Game) Signature {
	var sb strings.Builder
	for _, m := range game.Moves() {
		sb.WriteString(m.SAN())
		sb.WriteByte(' ')
	}
	sb.WriteString(game.Result.String())
	return signature(sb.String(), game.PlyCount())
}

// BoardSignature hashes the piece placement, expanded so that "44" and "8"
// agree. With fullPosition the side to move, castling rights and en passant
// square are included as well.
func BoardSignature(board *chess.BoardState, fullPosition bool) Signature {
	var sb strings.Builder
	for _, row := range board.Ranks {
		for _, c := range row {
			if c.IsEmptyRun() {
				sb.WriteString(strings.Repeat(".", c.Width()))
			} else {
				sb.WriteByte(c.Symbol())
			}
		}
		sb.WriteByte('/')
	}
	if fullPosition {
		sb.WriteString(board.ToMove.String())
		sb.WriteString(board.Castling.String())
		if board.EnPassant != nil {
			sb.WriteString(board.EnPassant.String())
		}
	}
	return signature(sb.String(), 0)
}

func signature(key string, length int) Signature {
	h := fnv.New64a()
	h.Write([]byte(key)) //nolint:errcheck // hash.Hash never returns an error
	return Signature{
		Hash:     h.Sum64(),
		Length:   length,
		WeakHash: crc32.ChecksumIEEE([]byte(key)),
	}
}
