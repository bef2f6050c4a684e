package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleMoves appends the castling moves available to the king on from.
func (s *BoardState) castleMoves(from chess.Square, moves []chess.Move) []chess.Move {
	us := s.toMove
	if s.squareAttacked(from, us) {
		return moves
	}
	if s.castling.KingSide(us) {
		moves = s.kingSideCastle(from, moves)
	}
	if s.castling.QueenSide(us) {
		moves = s.queenSideCastle(from, moves)
	}
	return moves
}

// kingSideCastle requires the two squares toward the h-rook to be empty and
// unattacked.
func (s *BoardState) kingSideCastle(from chess.Square, moves []chess.Move) []chess.Move {
	us := s.toMove
	if !s.board.Get(chess.Sq(from.Row, chess.KingSideRookCol)).Is(us, chess.Rook) {
		return moves
	}
	f, g := chess.Sq(from.Row, from.Col+1), chess.Sq(from.Row, from.Col+2)
	if !s.board.Get(f).IsEmpty() || !s.board.Get(g).IsEmpty() {
		return moves
	}
	if s.squareAttacked(f, us) || s.squareAttacked(g, us) {
		return moves
	}
	return append(moves, chess.NewMove(&s.board, from, g, chess.CastleMove))
}

// queenSideCastle requires three empty squares toward the a-rook; only the
// two the king crosses must be unattacked.
func (s *BoardState) queenSideCastle(from chess.Square, moves []chess.Move) []chess.Move {
	us := s.toMove
	if !s.board.Get(chess.Sq(from.Row, chess.QueenSideRookCol)).Is(us, chess.Rook) {
		return moves
	}
	d, c, b := chess.Sq(from.Row, from.Col-1), chess.Sq(from.Row, from.Col-2), chess.Sq(from.Row, from.Col-3)
	if !s.board.Get(d).IsEmpty() || !s.board.Get(c).IsEmpty() || !s.board.Get(b).IsEmpty() {
		return moves
	}
	if s.squareAttacked(d, us) || s.squareAttacked(c, us) {
		return moves
	}
	return append(moves, chess.NewMove(&s.board, from, c, chess.CastleMove))
}

// rookCastleSquares returns where the rook starts and ends for a castling
// king move.
func rookCastleSquares(m chess.Move) (from, to chess.Square) {
	row := m.To().Row
	if m.IsKingSideCastle() {
		return chess.Sq(row, chess.KingSideRookCol), chess.Sq(row, m.To().Col-1)
	}
	return chess.Sq(row, chess.QueenSideRookCol), chess.Sq(row, m.To().Col+1)
}

// updateCastlingRights revokes rights after m: a king move drops both of
// its colour's rights, and any move from or onto a rook home square drops
// the right that rook carried.
func (s *BoardState) updateCastlingRights(m chess.Move) {
	if m.Moved().Kind() == chess.King {
		s.castling.Revoke(m.Moved().Colour())
	}
	if m.Moved().Kind() == chess.Rook {
		s.castling.RevokeForSquare(m.From())
	}
	s.castling.RevokeForSquare(m.To())
}
