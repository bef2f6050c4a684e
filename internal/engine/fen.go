package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardStateFromFEN creates a state from a FEN string. Only the piece
// placement field is required; missing fields default to White to move, no
// castling, no en passant and clocks "0 1".
//
// The position must hold exactly one king per colour and no pawns on the
// first or last rank. Castling flags whose king or rook is not on its home
// square are dropped.
func NewBoardStateFromFEN(fen string) (*BoardState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	s := &BoardState{
		toMove:          chess.White,
		enPassant:       chess.NoSquare,
		initialFullmove: 1,
	}

	if err := parsePiecePositions(s, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(s, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(s, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(s, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(s, parts); err != nil {
		return nil, err
	}

	s.initialEnPassant = s.enPassant
	s.initialCastling = s.castling
	return s, nil
}

// MustFEN is NewBoardStateFromFEN for known-good inputs; it panics on error.
func MustFEN(fen string) *BoardState {
	s, err := NewBoardStateFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(s *BoardState, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	var kings [chess.NumColours]int
	for row, text := range ranks {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENLetter(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			if piece.Kind() == chess.Pawn && (row == chess.BlackHomeRow || row == chess.WhiteHomeRow) {
				return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
			}
			sq := chess.Sq(row, col)
			s.board.Set(sq, piece)
			if piece.Kind() == chess.King {
				kings[piece.Colour()]++
				s.kings[piece.Colour()] = sq
			}
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need one king per side, got %d white and %d black: %w",
			kings[chess.White], kings[chess.Black], errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *BoardState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.toMove = chess.White
	case "b":
		s.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(s *BoardState, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			s.castling.WhiteKingSide = true
		case 'Q':
			s.castling.WhiteQueenSide = true
		case 'k':
			s.castling.BlackKingSide = true
		case 'q':
			s.castling.BlackQueenSide = true
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		row := chess.HomeRow(colour)
		if s.kings[colour] != chess.Sq(row, chess.KingStartCol) {
			s.castling.Revoke(colour)
			continue
		}
		if !s.board.Get(chess.Sq(row, chess.KingSideRookCol)).Is(colour, chess.Rook) {
			s.castling.RevokeKingSide(colour)
		}
		if !s.board.Get(chess.Sq(row, chess.QueenSideRookCol)).Is(colour, chess.Rook) {
			s.castling.RevokeQueenSide(colour)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// sit behind a pawn of the side that just moved.
func parseEnPassant(s *BoardState, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant field %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := s.toMove.Opposite()
	wantRow := chess.PawnStartRow(mover) + chess.PawnDirection(mover)
	pawn := sq.Add(chess.Direction{DRow: chess.PawnDirection(mover)}, 1)
	if sq.Row != wantRow || !s.board.Get(pawn).Is(mover, chess.Pawn) {
		return fmt.Errorf("en passant square %s not behind a %s pawn: %w", sq, mover, errors.ErrInvalidFEN)
	}
	s.enPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(s *BoardState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		s.initialHalfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		s.initialFullmove = n
	}
	return nil
}

// FEN converts the state to a FEN string.
func (s *BoardState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &s.board)
	sb.WriteByte(' ')
	if s.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(s.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", s.HalfmoveClock(), s.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.At(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// HalfmoveClock returns the number of plies since the last pawn move or
// capture, counting the clock the state was created with.
func (s *BoardState) HalfmoveClock() int {
	n := 0
	for i := len(s.moveLog) - 1; i >= 0; i-- {
		m := s.moveLog[i]
		if m.Moved().Kind() == chess.Pawn || m.IsCapture() {
			return n
		}
		n++
	}
	return n + s.initialHalfmove
}

// FullmoveNumber returns the current move number; it advances after each
// Black move.
func (s *BoardState) FullmoveNumber() int {
	n := s.initialFullmove
	for _, m := range s.moveLog {
		if m.Moved().Colour() == chess.Black {
			n++
		}
	}
	return n
}
