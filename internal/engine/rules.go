package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func (s *BoardState) HasInsufficientMaterial() bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := s.board.At(row, col)
			if piece.IsEmpty() {
				continue
			}

			kind := piece.Kind()
			switch kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour() == chess.White {
				whitePieces = append(whitePieces, kind)
				if kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			} else {
				blackPieces = append(blackPieces, kind)
				if kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a1 (row 7, col 0) is dark.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
