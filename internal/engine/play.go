package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FindMove returns the legal move from -> to, or ErrIllegalMove.
// Promotion needs no extra input since pawns always become queens.
func (s *BoardState) FindMove(from, to chess.Square) (chess.Move, error) {
	for _, m := range s.LegalMoves() {
		if m.From() == from && m.To() == to {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s%s: %w", from, to, errors.ErrIllegalMove)
}

// ParseCoordinates splits coordinate move text such as "e2e4" or "e7e8q"
// into its squares. A trailing promotion letter must be 'q' when present.
func ParseCoordinates(text string) (from, to chess.Square, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) == 5 {
		if text[4] != 'q' {
			return chess.NoSquare, chess.NoSquare, fmt.Errorf("%q: only queen promotion: %w", text, errors.ErrIllegalMove)
		}
		text = text[:4]
	}
	if len(text) != 4 {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	if to, err = chess.ParseSquare(text[2:]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}

// Play applies the move written in coordinate notation after checking it
// against the legal move set. The state is unchanged on error.
func (s *BoardState) Play(text string) (chess.Move, error) {
	from, to, err := ParseCoordinates(text)
	if err != nil {
		return chess.Move{}, err
	}
	m, err := s.FindMove(from, to)
	if err != nil {
		return chess.Move{}, err
	}
	s.ApplyMove(m)
	return m, nil
}

// IsLegal reports whether m is in the current legal move set.
func (s *BoardState) IsLegal(m chess.Move) bool {
	for _, legal := range s.LegalMoves() {
		if legal.Equal(m) {
			return true
		}
	}
	return false
}
