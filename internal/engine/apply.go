package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ApplyMove plays m and pushes it onto the history.
//
// m must come from the most recent LegalMoves call on this state; no
// validation is done here. Use Play or FindMove for untrusted input.
func (s *BoardState) ApplyMove(m chess.Move) {
	from, to := m.From(), m.To()
	mover := m.Moved()
	colour := mover.Colour()

	s.board.Set(from, chess.NoPiece)
	if m.IsPromotion() {
		s.board.Set(to, m.Promoted())
	} else {
		s.board.Set(to, mover)
	}

	if m.IsEnPassant() {
		s.board.Set(chess.Sq(from.Row, to.Col), chess.NoPiece)
	}

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(m)
		s.board.Set(rookTo, s.board.Get(rookFrom))
		s.board.Set(rookFrom, chess.NoPiece)
	}

	if mover.Kind() == chess.King {
		s.kings[colour] = to
	}

	s.enPassant = chess.NoSquare
	if mover.Kind() == chess.Pawn && abs(to.Row-from.Row) == 2 {
		s.enPassant = chess.Sq((from.Row+to.Row)/2, from.Col)
	}

	s.updateCastlingRights(m)
	s.toMove = colour.Opposite()

	s.moveLog = append(s.moveLog, m)
	s.enPassantLog = append(s.enPassantLog, s.enPassant)
	s.castlingLog = append(s.castlingLog, s.castling)
}

// UndoMove reverses the most recently applied move. It is a no-op when no
// move has been applied. Checkmate and stalemate are cleared; the next
// LegalMoves call recomputes them.
func (s *BoardState) UndoMove() {
	n := len(s.moveLog)
	if n == 0 {
		return
	}
	m := s.moveLog[n-1]
	from, to := m.From(), m.To()
	mover := m.Moved()

	s.board.Set(from, mover)
	s.board.Set(to, m.Captured())

	if m.IsEnPassant() {
		s.board.Set(to, chess.NoPiece)
		s.board.Set(chess.Sq(from.Row, to.Col), m.Captured())
	}

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(m)
		s.board.Set(rookFrom, s.board.Get(rookTo))
		s.board.Set(rookTo, chess.NoPiece)
	}

	if mover.Kind() == chess.King {
		s.kings[mover.Colour()] = from
	}
	s.toMove = mover.Colour()

	s.moveLog = s.moveLog[:n-1]
	s.enPassantLog = s.enPassantLog[:n-1]
	s.castlingLog = s.castlingLog[:n-1]
	if n > 1 {
		s.enPassant = s.enPassantLog[n-2]
		s.castling = s.castlingLog[n-2]
	} else {
		s.enPassant = s.initialEnPassant
		s.castling = s.initialCastling
	}

	s.checkmate = false
	s.stalemate = false
}
