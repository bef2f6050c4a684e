package chess

import "strings"

// Board is the 8x8 grid of pieces, indexed [row][col].
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackHomeRow][col] = B(backRank[col])
		b.Squares[BlackHomeRow+1][col] = B(Pawn)
		b.Squares[WhiteHomeRow-1][col] = W(Pawn)
		b.Squares[WhiteHomeRow][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on a square. Off-board squares read as NoPiece.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// At returns the piece at the given row and column.
func (b *Board) At(row, col int) Piece {
	return b.Squares[row][col]
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// KingSquare scans the grid for the king of the given colour.
// Returns NoSquare and false when there is none.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many copies of piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of two-letter codes, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Squares[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
