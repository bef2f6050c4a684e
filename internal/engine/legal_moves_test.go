package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func mustState(t *testing.T, fen string) *BoardState {
	t.Helper()
	s, err := NewBoardStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardStateFromFEN(%q) failed: %v", fen, err)
	}
	return s
}

func TestLegalMoves_StartingPosition(t *testing.T) {
	s := NewBoardState()
	moves := s.LegalMoves()

	if len(moves) != 20 {
		t.Fatalf("len(LegalMoves()) = %d, want 20: %v", len(moves), testutil.UCIs(moves))
	}

	var pawns, knights int
	for _, m := range moves {
		switch m.Moved().Kind() {
		case chess.Pawn:
			pawns++
		case chess.Knight:
			knights++
		default:
			t.Errorf("unexpected mover %v in %s", m.Moved(), m.UCI())
		}
	}
	if pawns != 16 || knights != 4 {
		t.Errorf("pawn moves = %d, knight moves = %d, want 16 and 4", pawns, knights)
	}
}

func TestLegalMoves_StableOrder(t *testing.T) {
	s := mustState(t, testutil.KiwipeteFEN)
	first := s.LegalMoves()
	second := s.LegalMoves()

	if len(first) != len(second) {
		t.Fatalf("move counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("move %d: %s then %s", i, first[i].UCI(), second[i].UCI())
		}
	}
}

func TestLegalMoves_Pins(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "rook pinned on file keeps the file",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"},
		},
		{
			name: "bishop pinned on diagonal can take pinner",
			fen:  "4k3/8/8/8/7b/8/5B2/4K3 w - - 0 1",
			from: "f2",
			want: []string{"f2g3", "f2h4"},
		},
		{
			name: "pinned knight cannot move",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "pawn pinned on diagonal only captures pinner",
			fen:  "4k3/8/8/8/8/3b4/4P3/5K2 w - - 0 1",
			from: "e2",
			want: []string{"e2d3"},
		},
		{
			name: "pawn pinned on file still pushes",
			fen:  "4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "pawn pinned on rank cannot move",
			fen:  "4k3/8/8/8/8/8/r3P2K/8 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "queen pinned on diagonal",
			fen:  "4k3/8/8/b7/8/8/3Q4/4K3 w - - 0 1",
			from: "d2",
			want: []string{"d2a5", "d2b4", "d2c3"},
		},
		{
			name: "second friendly piece breaks the pin",
			fen:  "4k3/4r3/8/8/4P3/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2a2", "e2b2", "e2c2", "e2d2", "e2e3", "e2f2", "e2g2", "e2h2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			got := testutil.MovesFrom(s.LegalMoves(), chess.MustParseSquare(tt.from))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("moves from %s mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantCheck  bool
		wantPins   []Pin
		wantChecks []Check
	}{
		{
			name: "quiet start",
			fen:  testutil.StartFEN,
		},
		{
			name:      "rook check along file",
			fen:       "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1",
			wantCheck: true,
			wantChecks: []Check{
				{Square: chess.MustParseSquare("e8"), Direction: chess.Direction{DRow: -1, DCol: 0}},
			},
		},
		{
			name:      "knight check has no direction",
			fen:       "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1",
			wantCheck: true,
			wantChecks: []Check{
				{Square: chess.MustParseSquare("d3"), Direction: chess.NoDirection},
			},
		},
		{
			name:      "pawn check from the capture diagonal",
			fen:       "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1",
			wantCheck: true,
			wantChecks: []Check{
				{Square: chess.MustParseSquare("d2"), Direction: chess.Direction{DRow: -1, DCol: -1}},
			},
		},
		{
			name: "pawn behind the king does not check",
			fen:  "4k3/8/8/8/8/4K3/3p4/8 w - - 0 1",
		},
		{
			name: "bishop pin",
			fen:  "4k3/8/8/8/7b/8/5B2/4K3 w - - 0 1",
			wantPins: []Pin{
				{Square: chess.MustParseSquare("f2"), Direction: chess.Direction{DRow: -1, DCol: 1}},
			},
		},
		{
			name: "non-matching enemy ends the ray",
			fen:  "4k3/4r3/4b3/8/8/8/4R3/4K3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustState(t, tt.fen).Analyze()
			if a.InCheck != tt.wantCheck {
				t.Errorf("InCheck = %v, want %v", a.InCheck, tt.wantCheck)
			}
			if diff := cmp.Diff(tt.wantPins, a.Pins); diff != "" {
				t.Errorf("Pins mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantChecks, a.Checks); diff != "" {
				t.Errorf("Checks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLegalMoves_Check(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "block or step aside from a rook",
			fen:  "4k3/8/8/8/8/8/1R6/r3K3 w - - 0 1",
			want: []string{"b2b1", "e1d2", "e1e2", "e1f2"},
		},
		{
			name: "knight check can only be captured",
			fen:  "4k3/8/8/8/8/3n4/8/R3KB2 w - - 0 1",
			want: []string{"e1d1", "e1d2", "e1e2", "f1d3"},
		},
		{
			name: "no castling out of check",
			fen:  "4k3/8/8/8/8/8/8/r3K2R w K - 0 1",
			want: []string{"e1d2", "e1e2", "e1f2"},
		},
		{
			name: "double check allows only king moves",
			fen:  "4k3/8/8/8/8/5n2/R7/r3K3 w - - 0 1",
			want: []string{"e1e2", "e1f2"},
		},
		{
			name: "king cannot retreat along the checking line",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			want: []string{"e1d2", "e1e2", "e1f2"},
		},
		{
			name: "king captures an unprotected checker",
			fen:  "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1",
			want: []string{"e1e2"},
		},
		{
			name: "king cannot capture a protected checker",
			fen:  "4k3/8/8/8/8/2n5/4q3/4K3 w - - 0 1",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if !s.InCheck() {
				t.Fatalf("InCheck() = false for %s", tt.fen)
			}
			got := testutil.UCIs(s.LegalMoves())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLegalMoves_DoubleCheckOnlyKing(t *testing.T) {
	s := mustState(t, "4k3/8/8/8/8/5n2/R7/r3K3 w - - 0 1")
	if got := len(s.Analyze().Checks); got != 2 {
		t.Fatalf("len(Checks) = %d, want 2", got)
	}
	for _, m := range s.LegalMoves() {
		if m.Moved().Kind() != chess.King {
			t.Errorf("non-king move %s under double check", m.UCI())
		}
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		testutil.StartFEN,
		testutil.KiwipeteFEN,
		testutil.RookEndgameFEN,
		testutil.PromotionFEN,
		testutil.MirroredPromotionFEN,
		testutil.CapturePromotionFEN,
		"4k3/8/8/8/8/5n2/R7/r3K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := mustState(t, fen)
			mover := s.ToMove()
			for _, m := range s.LegalMoves() {
				s.ApplyMove(m)
				if s.KingAttacked(mover) {
					t.Errorf("%s leaves the %s king attacked", m.UCI(), mover)
				}
				s.UndoMove()
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
	}{
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", false, false},
		{"after back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"ongoing", testutil.StartFEN, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			moves := s.LegalMoves()
			if got := s.Checkmate(); got != tt.wantCheckmate {
				t.Errorf("Checkmate() = %v, want %v", got, tt.wantCheckmate)
			}
			if got := s.Stalemate(); got != tt.wantStalemate {
				t.Errorf("Stalemate() = %v, want %v", got, tt.wantStalemate)
			}
			if terminal := tt.wantCheckmate || tt.wantStalemate; terminal != (len(moves) == 0) {
				t.Errorf("len(LegalMoves()) = %d with terminal = %v", len(moves), terminal)
			}
			if s.IsCheckmate() != tt.wantCheckmate || s.IsStalemate() != tt.wantStalemate {
				t.Errorf("IsCheckmate/IsStalemate disagree with flags")
			}
		})
	}
}

func TestFoolsMate(t *testing.T) {
	s := NewBoardState()
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if _, err := s.Play(text); err != nil {
			t.Fatalf("Play(%q) failed: %v", text, err)
		}
	}

	if moves := s.LegalMoves(); len(moves) != 0 {
		t.Fatalf("LegalMoves() = %v, want none", testutil.UCIs(moves))
	}
	if !s.InCheck() || !s.Checkmate() || s.Stalemate() {
		t.Errorf("InCheck=%v Checkmate=%v Stalemate=%v, want true true false",
			s.InCheck(), s.Checkmate(), s.Stalemate())
	}

	s.UndoMove()
	if s.Checkmate() || s.Stalemate() {
		t.Error("UndoMove() should clear the terminal flags")
	}
	if !s.HasLegalMoves() {
		t.Error("HasLegalMoves() = false after undoing the mate")
	}
}

func TestWithKingOn_RestoresOnPanic(t *testing.T) {
	s := mustState(t, testutil.KiwipeteFEN)
	before := s.FEN()
	king := s.KingSquare(chess.White)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the probe to panic")
			}
		}()
		s.withKingOn(chess.MustParseSquare("f1"), func() bool {
			panic("probe aborted")
		})
	}()

	if got := s.FEN(); got != before {
		t.Errorf("FEN after aborted probe = %q, want %q", got, before)
	}
	if got := s.KingSquare(chess.White); got != king {
		t.Errorf("KingSquare = %v, want %v", got, king)
	}
}

func TestAttackQueriesArePure(t *testing.T) {
	s := mustState(t, testutil.KiwipeteFEN)
	before := s.FEN()

	s.InCheck()
	s.KingAttacked(chess.Black)
	s.Analyze()
	s.LegalMoves()

	if got := s.FEN(); got != before {
		t.Errorf("FEN changed by queries: %q, want %q", got, before)
	}
	if s.ToMove() != chess.White {
		t.Errorf("ToMove() = %v, want White", s.ToMove())
	}
}
