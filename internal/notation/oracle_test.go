package notation

import (
	"testing"

	corentings "github.com/corentings/chess/v2"
)

// TestBoardAgreesWithCorentings cross-checks FEN decoding against an
// independent implementation.
func TestBoardAgreesWithCorentings(t *testing.T) {
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
	} {
		t.Run(fen, func(t *testing.T) {
			opt, err := corentings.FEN(fen)
			if err != nil {
				t.Fatalf("corentings rejected %q: %v", fen, err)
			}
			want := corentings.NewGame(opt).FEN()

			b, err := ParseBoard(fen)
			if err != nil {
				t.Fatalf("ParseBoard error: %v", err)
			}
			if got := b.String(); got != want {
				t.Errorf("String() = %q, corentings = %q", got, want)
			}
		})
	}
}

// TestBoardRejectionsAgreeWithCorentings checks that positions the other
// implementation refuses are refused here too.
func TestBoardRejectionsAgreeWithCorentings(t *testing.T) {
	for _, fen := range []string{
		"4k3/8/8/8/8/8/8/4K2 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 0",
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w KK - 0 1",
	} {
		t.Run(fen, func(t *testing.T) {
			if _, err := corentings.FEN(fen); err == nil {
				t.Fatalf("corentings accepted %q", fen)
			}
			if _, err := ParseBoard(fen); err == nil {
				t.Errorf("ParseBoard(%q) succeeded, want error", fen)
			}
		})
	}
}
