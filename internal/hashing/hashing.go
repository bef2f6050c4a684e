// Package hashing provides Zobrist hashing of chess positions and the
// repetition bookkeeping built on it.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Position is the read-only view of a game position needed for hashing.
type Position interface {
	PieceAt(sq chess.Square) chess.Piece
	ToMove() chess.Colour
	CastlingRights() chess.CastlingRights
	EnPassantTarget() (chess.Square, bool)
}

// numPieceCodes covers every Piece value: kind<<1 | colour.
const numPieceCodes = int(chess.NumKinds) << chess.PieceShift

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed uint64 = 0x3243f6a8885a308d

var (
	pieceKeys     [numPieceCodes][chess.BoardSize][chess.BoardSize]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
)

func init() {
	state := zobristSeed
	next := func() uint64 {
		// splitmix64
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}

	for p := range pieceKeys {
		for row := range pieceKeys[p] {
			for col := range pieceKeys[p][row] {
				pieceKeys[p][row][col] = next()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
	whiteToMove = next()
}

// Zobrist returns the Zobrist hash of a position: pieces, side to move,
// castling rights and an en passant file. The en passant file only counts
// when a pawn of the side to move stands ready to make the capture, so two
// positions offering the same moves hash alike.
func Zobrist(p Position) uint64 {
	var hash uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := p.PieceAt(chess.Sq(row, col))
			if piece.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[piece][row][col]
		}
	}

	if p.ToMove() == chess.White {
		hash ^= whiteToMove
	}

	cr := p.CastlingRights()
	for i, set := range [4]bool{cr.WhiteKingSide, cr.WhiteQueenSide, cr.BlackKingSide, cr.BlackQueenSide} {
		if set {
			hash ^= castlingKeys[i]
		}
	}

	if ep, ok := p.EnPassantTarget(); ok && enPassantCapturable(p, ep) {
		hash ^= enPassantKeys[ep.Col]
	}

	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the double-stepped pawn.
func enPassantCapturable(p Position, ep chess.Square) bool {
	us := p.ToMove()
	row := ep.Row - chess.PawnDirection(us)
	for _, col := range [2]int{ep.Col - 1, ep.Col + 1} {
		if p.PieceAt(chess.Sq(row, col)).Is(us, chess.Pawn) {
			return true
		}
	}
	return false
}
