package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// withKingOn temporarily moves the king of the side to move to sq, on the
// grid and in the king cache, and evaluates fn in that position. The
// original position is restored before returning, including when fn panics.
func (s *BoardState) withKingOn(sq chess.Square, fn func() bool) bool {
	colour := s.toMove
	from := s.kings[colour]
	king := s.board.Get(from)
	displaced := s.board.Get(sq)

	s.board.Set(from, chess.NoPiece)
	s.board.Set(sq, king)
	s.kings[colour] = sq
	defer func() {
		s.board.Set(sq, displaced)
		s.board.Set(from, king)
		s.kings[colour] = from
	}()

	return fn()
}
