// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a chess piece, independent of colour.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
// Pawns use 'P' here; move notation omits it.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece, or NoPiece for an empty square.
// The kind lives in the upper bits and the colour in bit 0, so an empty
// square never carries a colour.
type Piece int

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value. MakePiece(c, Empty) is NoPiece.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. Only meaningful when the piece is not empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p != NoPiece && p.Colour() == colour && p.Kind() == kind
}

// IsColour reports whether p is a non-empty piece of the given colour.
func (p Piece) IsColour(colour Colour) bool {
	return p != NoPiece && p.Colour() == colour
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '-' for an empty square.
func (p Piece) FENLetter() byte {
	if p == NoPiece {
		return '-'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a two-letter code such as "wK" or "bp", or "--" when empty.
func (p Piece) String() string {
	if p == NoPiece {
		return "--"
	}
	colour := byte('b')
	if p.Colour() == White {
		colour = 'w'
	}
	letter := p.Kind().Letter()
	if p.Kind() == Pawn {
		letter = 'p'
	}
	return string([]byte{colour, letter})
}

// PieceFromFENLetter converts a FEN letter to a coloured piece.
// Returns NoPiece and false for anything else.
func PieceFromFENLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return NoPiece, false
	}
	return MakePiece(colour, kind), true
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// HomeRow is the row holding each colour's back rank.
	WhiteHomeRow = BoardSize - 1
	BlackHomeRow = 0

	FileBase = 'a'
	RankBase = '1'
)

// HomeRow returns the back-rank row for a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return WhiteHomeRow
	}
	return BlackHomeRow
}

// PawnDirection returns the row delta of a pawn push: -1 for White, +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which a pawn may double-step.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhiteHomeRow - 1
	}
	return BlackHomeRow + 1
}

// PromotionRow returns the farthest row for a colour's pawns.
func PromotionRow(colour Colour) int {
	if colour == White {
		return BlackHomeRow
	}
	return WhiteHomeRow
}

// PromotionKind is the piece every pawn promotes to.
// Underpromotion is not offered.
const PromotionKind = Queen
