// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", config.StartFEN, "Root position in FEN")
	movesList = flag.String("moves", "", "Moves to play before counting, in coordinate notation (e.g. 'e2e4,e7e5')")

	// Counting options
	depth   = flag.Int("depth", 4, "Number of plies to count")
	divide  = flag.Bool("divide", false, "Print node counts under each root move")
	workers = flag.Int("workers", runtime.NumCPU(), "Goroutines counting root moves in parallel")
	timeout = flag.Duration("timeout", 0, "Abandon the count after this long (0 = no limit)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet      = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose    = flag.Bool("verbose", false, "Running commentary on stderr")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.FEN = strings.TrimSpace(*fenString)
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Timeout = *timeout
}

// parseMoves splits a move list on commas and whitespace.
func parseMoves(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
