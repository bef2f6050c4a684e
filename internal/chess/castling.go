package chess

// Castling rook home columns.
const (
	KingSideRookCol  = BoardSize - 1
	QueenSideRookCol = 0
	KingStartCol     = 4
)

// CastlingRights holds the four castling permissions.
// Within a line of play rights are only ever revoked; undo restores them
// from the history snapshot.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// FullCastlingRights returns rights with every flag set.
func FullCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// KingSide reports the king-side right for a colour.
func (cr CastlingRights) KingSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingSide
	}
	return cr.BlackKingSide
}

// QueenSide reports the queen-side right for a colour.
func (cr CastlingRights) QueenSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenSide
	}
	return cr.BlackQueenSide
}

// Revoke clears both rights of a colour.
func (cr *CastlingRights) Revoke(colour Colour) {
	cr.RevokeKingSide(colour)
	cr.RevokeQueenSide(colour)
}

// RevokeKingSide clears the king-side right of a colour.
func (cr *CastlingRights) RevokeKingSide(colour Colour) {
	if colour == White {
		cr.WhiteKingSide = false
	} else {
		cr.BlackKingSide = false
	}
}

// RevokeQueenSide clears the queen-side right of a colour.
func (cr *CastlingRights) RevokeQueenSide(colour Colour) {
	if colour == White {
		cr.WhiteQueenSide = false
	} else {
		cr.BlackQueenSide = false
	}
}

// RevokeForSquare clears whichever right depends on a rook standing on sq.
func (cr *CastlingRights) RevokeForSquare(sq Square) {
	for _, colour := range [2]Colour{White, Black} {
		if sq.Row != HomeRow(colour) {
			continue
		}
		switch sq.Col {
		case KingSideRookCol:
			cr.RevokeKingSide(colour)
		case QueenSideRookCol:
			cr.RevokeQueenSide(colour)
		}
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	var out []byte
	if cr.WhiteKingSide {
		out = append(out, 'K')
	}
	if cr.WhiteQueenSide {
		out = append(out, 'Q')
	}
	if cr.BlackKingSide {
		out = append(out, 'k')
	}
	if cr.BlackQueenSide {
		out = append(out, 'q')
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}
