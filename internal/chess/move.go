package chess

import "strings"

// MoveFlag marks the special move classes a generator knows about when it
// builds a move. Promotion is never passed in; it follows from geometry.
type MoveFlag int

const (
	NormalMove MoveFlag = iota
	EnPassantMove
	CastleMove
)

// Move describes a single ply. All fields are fixed by NewMove from the
// board contents at construction time; a Move is never mutated afterwards.
type Move struct {
	from      Square
	to        Square
	moved     Piece
	captured  Piece
	promotion bool
	enPassant bool
	castle    bool
}

// NewMove builds the move from -> to as it stands on board b.
// For an en passant move the captured piece is the enemy pawn beside the
// mover, since the destination square is empty.
func NewMove(b *Board, from, to Square, flag MoveFlag) Move {
	m := Move{
		from:      from,
		to:        to,
		moved:     b.Get(from),
		captured:  b.Get(to),
		enPassant: flag == EnPassantMove,
		castle:    flag == CastleMove,
	}
	if m.enPassant {
		m.captured = MakePiece(m.moved.Colour().Opposite(), Pawn)
	}
	m.promotion = m.moved.Kind() == Pawn && to.Row == PromotionRow(m.moved.Colour())
	return m
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// Moved returns the piece that moves.
func (m Move) Moved() Piece { return m.moved }

// Captured returns the captured piece, or NoPiece.
func (m Move) Captured() Piece { return m.captured }

// IsPromotion reports whether a pawn reaches the farthest rank.
func (m Move) IsPromotion() bool { return m.promotion }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.enPassant }

// IsCastle reports whether the move is a castling king move.
func (m Move) IsCastle() bool { return m.castle }

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool { return m.captured != NoPiece }

// IsKingSideCastle reports a castle toward the h-file.
func (m Move) IsKingSideCastle() bool { return m.castle && m.to.Col > m.from.Col }

// Promoted returns the piece placed on the destination square for a
// promotion, or NoPiece otherwise.
func (m Move) Promoted() Piece {
	if !m.promotion {
		return NoPiece
	}
	return MakePiece(m.moved.Colour(), PromotionKind)
}

// IsZero reports whether m is the zero Move.
func (m Move) IsZero() bool { return m == Move{} }

// Equal compares moves by value: origin, destination and the derived flags.
func (m Move) Equal(other Move) bool {
	return m.from == other.from && m.to == other.to &&
		m.promotion == other.promotion &&
		m.enPassant == other.enPassant &&
		m.castle == other.castle
}

// Notation returns the move-log text: "e4", "Nf3", "Bxc6", "exd5",
// "exd6 e.p.", "e8Q", "dxe8Q", "0-0" or "0-0-0".
func (m Move) Notation() string {
	if m.castle {
		if m.IsKingSideCastle() {
			return "0-0"
		}
		return "0-0-0"
	}

	var sb strings.Builder
	if m.moved.Kind() == Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.from.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.to.String())
		if m.promotion {
			sb.WriteByte(PromotionKind.Letter())
		}
		if m.enPassant {
			sb.WriteString(" e.p.")
		}
		return sb.String()
	}

	sb.WriteByte(m.moved.Kind().Letter())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.to.String())
	return sb.String()
}

// String returns the move notation.
func (m Move) String() string {
	return m.Notation()
}

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.from.String() + m.to.String()
	if m.promotion {
		s += "q"
	}
	return s
}
