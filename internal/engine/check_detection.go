package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Pin records a piece that may only move along the line between its king
// and an enemy slider.
type Pin struct {
	Square    chess.Square    // the pinned piece
	Direction chess.Direction // from the king toward the pinned piece
}

// Check records an enemy piece that attacks the king.
type Check struct {
	Square    chess.Square    // the checking piece
	Direction chess.Direction // from the king toward the checker; NoDirection for knights
}

// pinTable is the immutable pin list for one generation pass. Each square
// maps to at most one pin: a piece is found by the first friendly piece on
// a single ray, and two rays from the king never share a square.
type pinTable []Pin

// lookup returns the pin direction for a square.
func (pt pinTable) lookup(sq chess.Square) (chess.Direction, bool) {
	for _, p := range pt {
		if p.Square == sq {
			return p.Direction, true
		}
	}
	return chess.NoDirection, false
}

// alongPin reports whether moving in direction d keeps a piece on its pin line.
func alongPin(pin, d chess.Direction) bool {
	return d == pin || d == pin.Opposite()
}

// Analysis is the pin/check picture around a king.
type Analysis struct {
	InCheck bool
	Pins    []Pin
	Checks  []Check
}

// Analyze returns the pins and checks against the king of the side to move.
func (s *BoardState) Analyze() Analysis {
	return s.analyze(s.kings[s.toMove], s.toMove)
}

// analyze walks the eight rays and the knight offsets from origin, treating
// pieces of colour us as friendly. The friendly king is transparent, so a
// square next to the king on a line is not shielded by the king itself.
func (s *BoardState) analyze(origin chess.Square, us chess.Colour) Analysis {
	var a Analysis
	them := us.Opposite()

	for _, dir := range chess.KingDirections {
		candidate := chess.NoSquare
		for dist := 1; dist < chess.BoardSize; dist++ {
			sq := origin.Add(dir, dist)
			if !sq.Valid() {
				break
			}
			piece := s.board.Get(sq)
			if piece.IsEmpty() || piece.Is(us, chess.King) {
				continue
			}
			if piece.Colour() == us {
				if candidate.Valid() {
					break // second friendly piece: nothing on this ray
				}
				candidate = sq
				continue
			}
			if attacksAlong(piece, dir, dist) {
				if !candidate.Valid() {
					a.InCheck = true
					a.Checks = append(a.Checks, Check{Square: sq, Direction: dir})
				} else {
					a.Pins = append(a.Pins, Pin{Square: candidate, Direction: dir})
				}
			}
			break
		}
	}

	for _, off := range chess.KnightOffsets {
		sq := origin.Add(off, 1)
		if sq.Valid() && s.board.Get(sq).Is(them, chess.Knight) {
			a.InCheck = true
			a.Checks = append(a.Checks, Check{Square: sq, Direction: chess.NoDirection})
		}
	}

	return a
}

// attacksAlong reports whether an enemy piece found dist squares away in
// direction dir (as seen from the attacked square) can capture back along
// that ray.
func attacksAlong(piece chess.Piece, dir chess.Direction, dist int) bool {
	switch piece.Kind() {
	case chess.Queen:
		return true
	case chess.Rook:
		return !dir.IsDiagonal()
	case chess.Bishop:
		return dir.IsDiagonal()
	case chess.King:
		return dist == 1
	case chess.Pawn:
		// A pawn attacks diagonally forward, so from the target it is seen
		// one row back from its direction of travel.
		return dist == 1 && dir.IsDiagonal() && dir.DRow == -chess.PawnDirection(piece.Colour())
	case chess.Knight, chess.Empty, chess.NumKinds:
		return false
	}
	return false
}

// squareAttacked reports whether any enemy of colour us attacks sq.
func (s *BoardState) squareAttacked(sq chess.Square, us chess.Colour) bool {
	return s.analyze(sq, us).InCheck
}
