package engine

// updateTerminalState records checkmate or stalemate once the legal move
// count is known. Both flags are false while any legal move exists.
func (s *BoardState) updateTerminalState(numMoves int, inCheck bool) {
	s.checkmate = numMoves == 0 && inCheck
	s.stalemate = numMoves == 0 && !inCheck
}

// IsCheckmate generates the legal moves and returns true if the position is
// checkmate for the side to move.
func (s *BoardState) IsCheckmate() bool {
	s.LegalMoves()
	return s.checkmate
}

// IsStalemate generates the legal moves and returns true if the position is
// stalemate for the side to move.
func (s *BoardState) IsStalemate() bool {
	s.LegalMoves()
	return s.stalemate
}
