package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Well-known positions used across the test suites. The perft figures in
// the comments count every promotion piece; the engine promotes to a queen
// only, so positions with promotions near the root count fewer nodes.
const (
	// StartFEN is the standard starting position.
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// KiwipeteFEN exercises castling, pins and en passant together.
	// Perft 1-3: 48, 2039, 97862.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// RookEndgameFEN has horizontal en passant pins.
	// Perft 1-4: 14, 191, 2812, 43238.
	RookEndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionFEN has promotions and castling at the root.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// MirroredPromotionFEN is PromotionFEN with colours swapped.
	MirroredPromotionFEN = "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1"

	// CapturePromotionFEN has a pawn one step from promoting by capture.
	CapturePromotionFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

	// CastlingFEN has only kings and rooks on their home squares.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

// UCIs returns the coordinate notation of moves, sorted.
func UCIs(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	sort.Strings(out)
	return out
}

// MovesFrom returns the sorted coordinate notation of the moves starting on from.
func MovesFrom(moves []chess.Move, from chess.Square) []string {
	var picked []chess.Move
	for _, m := range moves {
		if m.From() == from {
			picked = append(picked, m)
		}
	}
	return UCIs(picked)
}

// FindUCI returns the move with the given coordinate notation.
// It calls t.Fatal if no such move is present.
func FindUCI(t *testing.T, moves []chess.Move, uci string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s not in %v", uci, UCIs(moves))
	return chess.Move{}
}

// HasUCI reports whether a move with the given coordinate notation is present.
func HasUCI(moves []chess.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}
