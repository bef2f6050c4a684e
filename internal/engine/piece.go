package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pieceMoves dispatches to the generator for the piece on from.
func (s *BoardState) pieceMoves(from chess.Square, piece chess.Piece, pins pinTable, moves []chess.Move) []chess.Move {
	switch piece.Kind() {
	case chess.Pawn:
		return s.pawnMoves(from, pins, moves)
	case chess.Knight:
		return s.knightMoves(from, pins, moves)
	case chess.Bishop:
		return s.slidingMoves(from, chess.DiagonalDirections[:], pins, moves)
	case chess.Rook:
		return s.slidingMoves(from, chess.OrthogonalDirections[:], pins, moves)
	case chess.Queen:
		moves = s.slidingMoves(from, chess.DiagonalDirections[:], pins, moves)
		return s.slidingMoves(from, chess.OrthogonalDirections[:], pins, moves)
	case chess.King:
		return s.kingMoves(from, moves)
	case chess.Empty, chess.NumKinds:
	}
	return moves
}

// pseudoLegalMoves appends the moves of every piece of the side to move,
// scanning the board from row 0, column 0.
func (s *BoardState) pseudoLegalMoves(pins pinTable, moves []chess.Move) []chess.Move {
	us := s.toMove
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := s.board.At(row, col)
			if !piece.IsColour(us) {
				continue
			}
			moves = s.pieceMoves(chess.Sq(row, col), piece, pins, moves)
		}
	}
	return moves
}

// slidingMoves walks each direction until the edge or the first piece,
// including an enemy piece as a capture. A pinned slider only uses the
// directions along its pin line.
func (s *BoardState) slidingMoves(from chess.Square, dirs []chess.Direction, pins pinTable, moves []chess.Move) []chess.Move {
	us := s.toMove
	pin, pinned := pins.lookup(from)

	for _, dir := range dirs {
		if pinned && !alongPin(pin, dir) {
			continue
		}
		for dist := 1; ; dist++ {
			to := from.Add(dir, dist)
			if !to.Valid() {
				break
			}
			target := s.board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(&s.board, from, to, chess.NormalMove))
				continue
			}
			if target.Colour() != us {
				moves = append(moves, chess.NewMove(&s.board, from, to, chess.NormalMove))
			}
			break
		}
	}
	return moves
}

// knightMoves appends the knight jumps. A pinned knight has none: no jump
// stays on a line through the king.
func (s *BoardState) knightMoves(from chess.Square, pins pinTable, moves []chess.Move) []chess.Move {
	if _, pinned := pins.lookup(from); pinned {
		return moves
	}
	us := s.toMove
	for _, off := range chess.KnightOffsets {
		to := from.Add(off, 1)
		if !to.Valid() || s.board.Get(to).IsColour(us) {
			continue
		}
		moves = append(moves, chess.NewMove(&s.board, from, to, chess.NormalMove))
	}
	return moves
}

// kingMoves appends the king steps that do not end on an attacked square.
// Each candidate is tested with the king actually standing on it, so a
// slider behind the king along the line of travel is seen.
func (s *BoardState) kingMoves(from chess.Square, moves []chess.Move) []chess.Move {
	us := s.toMove
	for _, dir := range chess.KingDirections {
		to := from.Add(dir, 1)
		if !to.Valid() || s.board.Get(to).IsColour(us) {
			continue
		}
		safe := s.withKingOn(to, func() bool {
			return !s.squareAttacked(to, us)
		})
		if safe {
			moves = append(moves, chess.NewMove(&s.board, from, to, chess.NormalMove))
		}
	}
	return moves
}
