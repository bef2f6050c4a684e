package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves appends the pawn moves from sq: single and double pushes onto
// empty squares, diagonal captures, and en passant.
func (s *BoardState) pawnMoves(from chess.Square, pins pinTable, moves []chess.Move) []chess.Move {
	us := s.toMove
	them := us.Opposite()
	pin, pinned := pins.lookup(from)
	forward := chess.Direction{DRow: chess.PawnDirection(us)}

	one := from.Add(forward, 1)
	if one.Valid() && s.board.Get(one).IsEmpty() && (!pinned || alongPin(pin, forward)) {
		moves = append(moves, chess.NewMove(&s.board, from, one, chess.NormalMove))
		two := from.Add(forward, 2)
		if from.Row == chess.PawnStartRow(us) && s.board.Get(two).IsEmpty() {
			moves = append(moves, chess.NewMove(&s.board, from, two, chess.NormalMove))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		dir := chess.Direction{DRow: forward.DRow, DCol: dc}
		to := from.Add(dir, 1)
		if !to.Valid() || (pinned && !alongPin(pin, dir)) {
			continue
		}
		if s.board.Get(to).IsColour(them) {
			moves = append(moves, chess.NewMove(&s.board, from, to, chess.NormalMove))
			continue
		}
		if to == s.enPassant &&
			s.board.Get(chess.Sq(from.Row, to.Col)).Is(them, chess.Pawn) &&
			!s.enPassantExposesKing(from, to) {
			moves = append(moves, chess.NewMove(&s.board, from, to, chess.EnPassantMove))
		}
	}

	return moves
}

// enPassantExposesKing reports whether capturing en passant from -> to
// would open the king's rank to an enemy rook or queen. The capture lifts
// two pawns off that rank at once, which the pin scan cannot see.
func (s *BoardState) enPassantExposesKing(from, to chess.Square) bool {
	us := s.toMove
	king := s.kings[us]
	if king.Row != from.Row {
		return false
	}

	step := sign(from.Col - king.Col)
	for col := king.Col + step; col >= 0 && col < chess.BoardSize; col += step {
		if col == from.Col || col == to.Col {
			continue
		}
		piece := s.board.At(king.Row, col)
		if piece.IsEmpty() {
			continue
		}
		return piece.IsColour(us.Opposite()) &&
			(piece.Kind() == chess.Rook || piece.Kind() == chess.Queen)
	}
	return false
}
