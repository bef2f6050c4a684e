// chess-perft counts the leaf nodes of the legal move tree below a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

// realMain runs the program and returns the exit status, so deferred
// closes run before the process exits.
func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess-perft version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := run(cfg, parseMoves(*movesList)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile points cfg.LogFile at the -l file. The returned func closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// setupOutputFile points cfg.OutputFile at the -o file. The returned func
// closes it and reports a failed flush on stderr.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.SetOutput(file)
	return func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file %s: %v\n", *outputFile, err)
		}
	}, nil
}

// run sets up the root position, plays the given moves and writes the
// node counts to cfg.OutputFile.
func run(cfg *config.Config, moves []string) error {
	state, err := engine.NewBoardStateFromFEN(cfg.Perft.FEN)
	if err != nil {
		return err
	}
	for i, text := range moves {
		if _, err := state.Play(text); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
	}
	if len(moves) > 0 {
		cfg.Logf(2, "root position %s", state.FEN())
	}

	ctx := context.Background()
	if cfg.Perft.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Perft.Timeout)
		defer cancel()
	}

	start := time.Now()
	entries, nodes, err := state.DivideContext(ctx, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return errors.Wrapf(err, "perft after %v", time.Since(start).Round(time.Millisecond))
	}
	if cfg.Perft.Divide {
		for _, e := range entries {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move.UCI(), e.Nodes)
		}
		fmt.Fprintln(cfg.OutputFile)
		fmt.Fprintf(cfg.OutputFile, "Moves: %d\n", len(entries))
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)

	elapsed := time.Since(start)
	cfg.Logf(1, "depth %d: %d nodes in %v (%.0f nodes/s)", cfg.Perft.Depth, nodes, elapsed.Round(time.Millisecond), nodesPerSecond(nodes, elapsed))
	return nil
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the positions reachable in exactly -depth plies from a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPawns always promote to a queen, so counts from positions with\n")
	fmt.Fprintf(os.Stderr, "promotions differ from tools that generate under-promotions.\n")
}
