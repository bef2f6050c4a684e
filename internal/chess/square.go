package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a (row, column) pair. Row 0 is Black's back rank (rank 8) and
// row 7 is White's (rank 1); column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is the zero-information square, used for "no en passant target".
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by d scaled by n.
func (s Square) Add(d Direction, n int) Square {
	return Square{Row: s.Row + d.DRow*n, Col: s.Col + d.DCol*n}
}

// File returns the file letter ('a'..'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'..'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4", or "-" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}, nil
}

// MustParseSquare is ParseSquare for constant inputs; it panics on error.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Direction is a unit step (or knight offset) on the board.
type Direction struct {
	DRow int
	DCol int
}

// NoDirection is used for checks that do not travel along a line (knights).
var NoDirection = Direction{}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// IsDiagonal reports whether the direction moves along a diagonal.
func (d Direction) IsDiagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Ray directions. The orthogonal ones come first, then the diagonals.
var (
	OrthogonalDirections = [4]Direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	DiagonalDirections   = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	KingDirections       = [8]Direction{
		{-1, 0}, {0, -1}, {1, 0}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	KnightOffsets = [8]Direction{
		{-2, -1}, {-2, 1}, {-1, 2}, {1, 2},
		{2, -1}, {2, 1}, {-1, -2}, {1, -2},
	}
)
