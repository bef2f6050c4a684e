package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every legal move for the side to move, in a stable
// order: pieces by board scan, then castling. The slice is empty exactly
// when the position is checkmate or stalemate; the Checkmate and Stalemate
// flags are updated accordingly.
func (s *BoardState) LegalMoves() []chess.Move {
	a := s.Analyze()
	pins := pinTable(a.Pins)
	king := s.kings[s.toMove]

	var moves []chess.Move
	switch {
	case len(a.Checks) >= 2:
		// Double check cannot be blocked.
		moves = s.kingMoves(king, moves)
	case len(a.Checks) == 1:
		moves = s.pseudoLegalMoves(pins, moves)
		moves = s.resolvingCheck(moves, a.Checks[0])
	default:
		moves = s.pseudoLegalMoves(pins, moves)
		moves = s.castleMoves(king, moves)
	}

	s.updateTerminalState(len(moves), a.InCheck)
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (s *BoardState) HasLegalMoves() bool {
	return len(s.LegalMoves()) > 0
}

// resolvingCheck keeps king moves (already validated) and the moves of other
// pieces that capture the checker or block its line.
func (s *BoardState) resolvingCheck(moves []chess.Move, check Check) []chess.Move {
	targets := s.blockSquares(check)
	kept := moves[:0]
	for _, m := range moves {
		if m.Moved().Kind() == chess.King || targets[m.To()] {
			kept = append(kept, m)
			continue
		}
		// En passant lands behind the checking pawn it removes.
		if m.IsEnPassant() && chess.Sq(m.From().Row, m.To().Col) == check.Square {
			kept = append(kept, m)
		}
	}
	return kept
}

// blockSquares returns the squares a non-king move may land on to resolve
// a single check: the checker's square, plus for a slider every square
// between it and the king.
func (s *BoardState) blockSquares(check Check) map[chess.Square]bool {
	squares := map[chess.Square]bool{check.Square: true}
	if check.Direction == chess.NoDirection {
		return squares
	}
	king := s.kings[s.toMove]
	for dist := 1; dist < chess.BoardSize; dist++ {
		sq := king.Add(check.Direction, dist)
		if !sq.Valid() || sq == check.Square {
			break
		}
		squares[sq] = true
	}
	return squares
}
