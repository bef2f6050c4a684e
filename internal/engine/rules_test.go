package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"KB vs K", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K vs KN", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"KB vs KB same colour", "5b1k/8/8/8/8/8/8/K1B5 w - - 0 1", true},
		{"KB vs KB opposite colour", "2b4k/8/8/8/8/8/8/K1B5 w - - 0 1", false},
		{"KR vs K", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"KP vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"KNN vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"KN vs KB", "4kb2/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if got := s.HasInsufficientMaterial(); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		square string
		want   bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"e4", true},
		{"d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := isLightSquare(chess.MustParseSquare(tt.square)); got != tt.want {
				t.Errorf("isLightSquare(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}
