package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for game sessions.
type GameConfig struct {
	// RepetitionLimit is how many occurrences of a position end the game
	// as a draw. Zero disables repetition detection.
	RepetitionLimit int

	// CheckInsufficientMaterial ends the game when neither side can mate.
	CheckInsufficientMaterial bool

	// MaxSessions caps the sessions a Manager holds. Zero means no cap.
	MaxSessions int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		RepetitionLimit:           3,
		CheckInsufficientMaterial: true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.RepetitionLimit < 0 || g.RepetitionLimit == 1 {
		return fmt.Errorf("repetition limit %d: %w", g.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if g.MaxSessions < 0 {
		return fmt.Errorf("max sessions %d: %w", g.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}
