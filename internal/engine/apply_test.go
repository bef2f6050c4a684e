package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// snapshot is the externally visible part of a state that undo must restore.
type snapshot struct {
	Board     chess.Board
	ToMove    chess.Colour
	WhiteKing chess.Square
	BlackKing chess.Square
	Castling  chess.CastlingRights
	EnPassant chess.Square
	Ply       int
}

func takeSnapshot(s *BoardState) snapshot {
	ep, _ := s.EnPassantTarget()
	return snapshot{
		Board:     s.Board(),
		ToMove:    s.ToMove(),
		WhiteKing: s.KingSquare(chess.White),
		BlackKing: s.KingSquare(chess.Black),
		Castling:  s.CastlingRights(),
		EnPassant: ep,
		Ply:       s.Ply(),
	}
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	fens := []string{
		testutil.StartFEN,
		testutil.KiwipeteFEN,
		testutil.RookEndgameFEN,
		testutil.PromotionFEN,
		testutil.CapturePromotionFEN,
		testutil.CastlingFEN,
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := mustState(t, fen)
			before := takeSnapshot(s)
			for _, m := range s.LegalMoves() {
				s.ApplyMove(m)
				s.UndoMove()
				if diff := cmp.Diff(before, takeSnapshot(s)); diff != "" {
					t.Errorf("%s: state not restored (-want +got):\n%s", m.UCI(), diff)
				}
			}
		})
	}
}

// TestApplyUndo_DeepRoundTrip applies two plies before unwinding, so the
// restored snapshots come from the history logs rather than the initial values.
func TestApplyUndo_DeepRoundTrip(t *testing.T) {
	s := mustState(t, testutil.KiwipeteFEN)
	root := takeSnapshot(s)

	for _, m := range s.LegalMoves() {
		s.ApplyMove(m)
		mid := takeSnapshot(s)
		for _, reply := range s.LegalMoves() {
			s.ApplyMove(reply)
			s.UndoMove()
			if diff := cmp.Diff(mid, takeSnapshot(s)); diff != "" {
				t.Fatalf("%s %s: state not restored (-want +got):\n%s", m.UCI(), reply.UCI(), diff)
			}
		}
		s.UndoMove()
	}
	if diff := cmp.Diff(root, takeSnapshot(s)); diff != "" {
		t.Errorf("root not restored (-want +got):\n%s", diff)
	}
}

func TestUndoMove_EmptyHistory(t *testing.T) {
	s := NewBoardState()
	before := takeSnapshot(s)
	s.UndoMove()
	if diff := cmp.Diff(before, takeSnapshot(s)); diff != "" {
		t.Errorf("UndoMove() on empty history changed state (-want +got):\n%s", diff)
	}
}

func TestApplyMove_Effects(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		want    map[string]chess.Piece
		wantFEN string
	}{
		{
			name: "double push sets en passant target",
			fen:  testutil.StartFEN,
			move: "e2e4",
			want: map[string]chess.Piece{
				"e2": chess.NoPiece,
				"e4": chess.W(chess.Pawn),
			},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "en passant removes the passed pawn",
			fen:  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			move: "f5e6",
			want: map[string]chess.Piece{
				"f5": chess.NoPiece,
				"e5": chess.NoPiece,
				"e6": chess.W(chess.Pawn),
			},
			wantFEN: "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "king side castle moves the rook",
			fen:  testutil.CastlingFEN,
			move: "e1g1",
			want: map[string]chess.Piece{
				"e1": chess.NoPiece,
				"h1": chess.NoPiece,
				"g1": chess.W(chess.King),
				"f1": chess.W(chess.Rook),
			},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "queen side castle moves the rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8c8",
			want: map[string]chess.Piece{
				"e8": chess.NoPiece,
				"a8": chess.NoPiece,
				"c8": chess.B(chess.King),
				"d8": chess.B(chess.Rook),
			},
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "promotion places a queen",
			fen:  "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			move: "a7a8",
			want: map[string]chess.Piece{
				"a7": chess.NoPiece,
				"a8": chess.W(chess.Queen),
			},
			wantFEN: "Q7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name: "capture promotion for black",
			fen:  "k7/8/8/8/8/8/6p1/K6R b - - 0 1",
			move: "g2h1",
			want: map[string]chess.Piece{
				"g2": chess.NoPiece,
				"h1": chess.B(chess.Queen),
			},
			wantFEN: "k7/8/8/8/8/8/8/K6q w - - 0 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if _, err := s.Play(tt.move); err != nil {
				t.Fatalf("Play(%q) failed: %v", tt.move, err)
			}
			for name, want := range tt.want {
				if got := s.PieceAt(chess.MustParseSquare(name)); got != want {
					t.Errorf("PieceAt(%s) = %v, want %v", name, got, want)
				}
			}
			if got := s.FEN(); got != tt.wantFEN {
				t.Errorf("FEN() = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestApplyMove_KingCache(t *testing.T) {
	s := mustState(t, testutil.CastlingFEN)
	if _, err := s.Play("e1g1"); err != nil {
		t.Fatal(err)
	}
	if got, want := s.KingSquare(chess.White), chess.MustParseSquare("g1"); got != want {
		t.Errorf("KingSquare(White) = %v, want %v", got, want)
	}
	s.UndoMove()
	if got, want := s.KingSquare(chess.White), chess.MustParseSquare("e1"); got != want {
		t.Errorf("KingSquare(White) after undo = %v, want %v", got, want)
	}
}

func TestEnPassant_OnlyImmediately(t *testing.T) {
	s := NewBoardState()
	for _, text := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		if _, err := s.Play(text); err != nil {
			t.Fatalf("Play(%q) failed: %v", text, err)
		}
	}

	m := testutil.FindUCI(t, s.LegalMoves(), "e5d6")
	if !m.IsEnPassant() || m.Captured() != chess.B(chess.Pawn) {
		t.Errorf("e5d6 IsEnPassant=%v Captured=%v", m.IsEnPassant(), m.Captured())
	}

	for _, text := range []string{"b1c3", "a6a5"} {
		if _, err := s.Play(text); err != nil {
			t.Fatalf("Play(%q) failed: %v", text, err)
		}
	}
	if testutil.HasUCI(s.LegalMoves(), "e5d6") {
		t.Error("en passant still available two plies after the double push")
	}

	s.UndoMove()
	s.UndoMove()
	if !testutil.HasUCI(s.LegalMoves(), "e5d6") {
		t.Error("en passant not restored by undo")
	}
}

func TestEnPassant_Guards(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{
			name: "rank opens to enemy rook",
			fen:  "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
			move: "b5c6",
			want: false,
		},
		{
			name: "rank opens to enemy queen on the other side",
			fen:  "8/8/8/q1pP1K2/8/8/8/4k3 w - c6 0 1",
			move: "d5c6",
			want: false,
		},
		{
			name: "blocked rank is safe",
			fen:  "8/8/8/KPp1n2r/8/8/8/4k3 w - c6 0 1",
			move: "b5c6",
			want: true,
		},
		{
			name: "no rook on the rank",
			fen:  "8/8/8/KPp5/8/8/8/4k3 w - c6 0 1",
			move: "b5c6",
			want: true,
		},
		{
			name: "capture removes the checking pawn",
			fen:  "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
			move: "e4d3",
			want: true,
		},
		{
			name: "diagonal pin blocks en passant",
			fen:  "8/8/4k3/8/2pP4/8/B7/6K1 b - d3 0 1",
			move: "c4d3",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if got := testutil.HasUCI(s.LegalMoves(), tt.move); got != tt.want {
				t.Errorf("%s legal = %v, want %v; moves %v", tt.move, got, tt.want, testutil.UCIs(s.LegalMoves()))
			}
		})
	}
}

func TestCastling_Conditions(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingSide  bool
		wantQueenSide bool
	}{
		{"both available", testutil.CastlingFEN, true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"transit square attacked", "5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"destination attacked", "6rk/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"corner attacked is fine", "b3k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"b-file attacked is fine", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"d-file attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"knight on b1 blocks", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"bishop on f1 blocks", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", false, true},
		{"pawn attacks f1", "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1", false, true},
		{"in check from rook", "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := mustState(t, tt.fen).LegalMoves()
			if got := testutil.HasUCI(moves, "e1g1"); got != tt.wantKingSide {
				t.Errorf("king side castle = %v, want %v", got, tt.wantKingSide)
			}
			if got := testutil.HasUCI(moves, "e1c1"); got != tt.wantQueenSide {
				t.Errorf("queen side castle = %v, want %v", got, tt.wantQueenSide)
			}
			for _, m := range moves {
				if m.Moved().Kind() == chess.King && !m.IsCastle() && (m.UCI() == "e1g1" || m.UCI() == "e1c1") {
					t.Errorf("%s generated without the castle flag", m.UCI())
				}
			}
		})
	}
}

func TestCastlingRights_Updates(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"king move revokes both", testutil.CastlingFEN, []string{"e1e2"}, "kq"},
		{"h-rook move revokes king side", testutil.CastlingFEN, []string{"h1h2"}, "Qkq"},
		{"a-rook move revokes queen side", testutil.CastlingFEN, []string{"a1a2"}, "Kkq"},
		{"capturing a rook revokes both corners", testutil.CastlingFEN, []string{"a1a8"}, "Kk"},
		{"rook returning home stays revoked", testutil.CastlingFEN, []string{"h1h2", "a8a7", "h2h1"}, "Qk"},
		{"castling revokes both", testutil.CastlingFEN, []string{"e1g1"}, "kq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			before := s.CastlingRights()
			for _, text := range tt.moves {
				if _, err := s.Play(text); err != nil {
					t.Fatalf("Play(%q) failed: %v", text, err)
				}
			}
			if got := s.CastlingRights().String(); got != tt.want {
				t.Errorf("CastlingRights() = %s, want %s", got, tt.want)
			}
			for range tt.moves {
				s.UndoMove()
			}
			if diff := cmp.Diff(before, s.CastlingRights()); diff != "" {
				t.Errorf("rights not restored by undo (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastlingRestoredAfterUndo(t *testing.T) {
	s := mustState(t, testutil.CastlingFEN)
	if _, err := s.Play("h1h2"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Play("a8a7"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Play("h2h1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Play("a7a8"); err != nil {
		t.Fatal(err)
	}
	if testutil.HasUCI(s.LegalMoves(), "e1g1") {
		t.Fatal("king side castle available after the rook moved away and back")
	}

	for i := 0; i < 4; i++ {
		s.UndoMove()
	}
	if !testutil.HasUCI(s.LegalMoves(), "e1g1") {
		t.Error("king side castle not restored by undo")
	}
}

func TestHistory(t *testing.T) {
	s := NewBoardState()
	if _, ok := s.LastMove(); ok {
		t.Error("LastMove() ok on fresh state")
	}
	for _, text := range []string{"e2e4", "e7e5", "g1f3"} {
		if _, err := s.Play(text); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, m := range s.History() {
		got = append(got, m.Notation())
	}
	testutil.AssertEqual(t, got, []string{"e4", "e5", "Nf3"})
	testutil.AssertEqual(t, s.Ply(), 3)

	last, ok := s.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.UCI(), "g1f3")

	h := s.History()
	h[0] = chess.Move{}
	if first := s.History()[0]; first.IsZero() {
		t.Error("History() returned the internal slice")
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewBoardState()
	if _, err := s.Play("e2e4"); err != nil {
		t.Fatal(err)
	}
	c := s.Clone()
	if _, err := c.Play("e7e5"); err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, s.Ply(), 1)
	testutil.AssertEqual(t, c.Ply(), 2)
	testutil.AssertEqual(t, s.PieceAt(chess.MustParseSquare("e7")), chess.B(chess.Pawn))

	c.UndoMove()
	c.UndoMove()
	testutil.AssertEqual(t, c.FEN(), testutil.StartFEN)
	testutil.AssertEqual(t, s.Ply(), 1)
}
