// Package engine provides chess move generation, move application and undo.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// BoardState is the authoritative game position plus the history needed to
// undo moves exactly.
//
// moveLog, enPassantLog and castlingLog always have the same length: one
// entry is pushed by ApplyMove and one popped by UndoMove. The two snapshot
// logs record the values in force after each move; the values before the
// first move are kept in initialEnPassant and initialCastling.
type BoardState struct {
	board    chess.Board
	toMove   chess.Colour
	kings    [chess.NumColours]chess.Square
	castling chess.CastlingRights

	// Square skipped by the last double pawn step, or chess.NoSquare.
	enPassant chess.Square

	moveLog      []chess.Move
	enPassantLog []chess.Square
	castlingLog  []chess.CastlingRights

	initialEnPassant chess.Square
	initialCastling  chess.CastlingRights
	initialHalfmove  int
	initialFullmove  int

	checkmate bool
	stalemate bool
}

// NewBoardState creates a state holding the standard starting position with
// full castling rights and White to move.
func NewBoardState() *BoardState {
	s := &BoardState{
		toMove:          chess.White,
		castling:        chess.FullCastlingRights(),
		enPassant:       chess.NoSquare,
		initialFullmove: 1,
	}
	s.board.SetupInitialPosition()
	s.kings[chess.White] = chess.Sq(chess.WhiteHomeRow, chess.KingStartCol)
	s.kings[chess.Black] = chess.Sq(chess.BlackHomeRow, chess.KingStartCol)
	s.initialEnPassant = s.enPassant
	s.initialCastling = s.castling
	return s
}

// Board returns a copy of the grid.
func (s *BoardState) Board() chess.Board {
	return s.board
}

// PieceAt returns the piece on a square.
func (s *BoardState) PieceAt(sq chess.Square) chess.Piece {
	return s.board.Get(sq)
}

// ToMove returns the side to move.
func (s *BoardState) ToMove() chess.Colour {
	return s.toMove
}

// KingSquare returns the cached king square of a colour.
func (s *BoardState) KingSquare(colour chess.Colour) chess.Square {
	return s.kings[colour]
}

// CastlingRights returns the current castling rights.
func (s *BoardState) CastlingRights() chess.CastlingRights {
	return s.castling
}

// EnPassantTarget returns the current en passant target square.
// ok is false when no en passant capture is available.
func (s *BoardState) EnPassantTarget() (sq chess.Square, ok bool) {
	return s.enPassant, s.enPassant.Valid()
}

// History returns a copy of the applied moves, oldest first.
func (s *BoardState) History() []chess.Move {
	out := make([]chess.Move, len(s.moveLog))
	copy(out, s.moveLog)
	return out
}

// Ply returns the number of moves applied since the state was created.
func (s *BoardState) Ply() int {
	return len(s.moveLog)
}

// LastMove returns the most recently applied move.
func (s *BoardState) LastMove() (chess.Move, bool) {
	if len(s.moveLog) == 0 {
		return chess.Move{}, false
	}
	return s.moveLog[len(s.moveLog)-1], true
}

// InCheck reports whether the side to move is in check. It is evaluated
// against the current position, not cached.
func (s *BoardState) InCheck() bool {
	return s.KingAttacked(s.toMove)
}

// KingAttacked reports whether the king of the given colour is attacked.
func (s *BoardState) KingAttacked(colour chess.Colour) bool {
	return s.squareAttacked(s.kings[colour], colour)
}

// Checkmate reports the result of the last LegalMoves call: no legal moves
// with the king in check. Reset to false by UndoMove.
func (s *BoardState) Checkmate() bool {
	return s.checkmate
}

// Stalemate reports the result of the last LegalMoves call: no legal moves
// without check. Reset to false by UndoMove.
func (s *BoardState) Stalemate() bool {
	return s.stalemate
}

// Clone returns an independent deep copy of the state.
func (s *BoardState) Clone() *BoardState {
	c := *s
	c.moveLog = append([]chess.Move(nil), s.moveLog...)
	c.enPassantLog = append([]chess.Square(nil), s.enPassantLog...)
	c.castlingLog = append([]chess.CastlingRights(nil), s.castlingLog...)
	return &c
}
