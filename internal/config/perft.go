package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxPerftDepth bounds the depth a perft run may request.
const MaxPerftDepth = 10

// PerftConfig holds settings for perft node counting.
type PerftConfig struct {
	// FEN is the root position.
	FEN string

	// Depth is the number of plies to count.
	Depth int

	// Divide prints the node count under each root move.
	Divide bool

	// Workers is the number of goroutines Divide fans root moves out to.
	Workers int

	// Timeout abandons the count when it elapses. Zero means no limit.
	Timeout time.Duration
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:     StartFEN,
		Depth:   4,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("negative timeout %v: %w", p.Timeout, errors.ErrInvalidConfig)
	}
	if p.FEN == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	return nil
}
