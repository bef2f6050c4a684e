package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The state is left as it was found.
func (s *BoardState) Perft(depth int) uint64 {
	nodes, _ := s.perft(depth, nil)
	return nodes
}

// perft counts like Perft but gives up once stopped reports true, returning
// the partial count and false. A nil stopped never stops.
func (s *BoardState) perft(depth int, stopped func() bool) (uint64, bool) {
	if stopped != nil && stopped() {
		return 0, false
	}
	if depth <= 0 {
		return 1, true
	}
	moves := s.LegalMoves()
	if depth == 1 {
		return uint64(len(moves)), true
	}
	var nodes uint64
	for _, m := range moves {
		s.ApplyMove(m)
		n, ok := s.perft(depth-1, stopped)
		s.UndoMove()
		nodes += n
		if !ok {
			return nodes, false
		}
	}
	return nodes, true
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each root move, spreading the root moves over
// the given number of workers. Entries are sorted by coordinate notation.
func (s *BoardState) Divide(depth, workers int) ([]DivideEntry, uint64) {
	entries, total, _ := s.DivideContext(context.Background(), depth, workers)
	return entries, total
}

// DivideContext is Divide with cancellation. When ctx ends before every
// root move is counted, the worker pool is stopped and ctx's error is
// returned with no entries.
func (s *BoardState) DivideContext(ctx context.Context, depth, workers int) ([]DivideEntry, uint64, error) {
	if depth <= 0 {
		return nil, 1, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	root := s.Clone()
	moves := root.LegalMoves()

	var pool *worker.Pool
	pool = worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		st := root.Clone()
		st.ApplyMove(item.Move)
		nodes, ok := st.perft(item.Depth, pool.IsStopped)
		r := worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
		if !ok {
			r.Error = fmt.Errorf("%s: count abandoned after %d nodes", item.Move.UCI(), nodes)
		}
		return r
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()
	release := context.AfterFunc(ctx, pool.Stop)
	defer release()

	go func() {
		for i, m := range moves {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, len(moves))
	var total uint64
	var counted int
	for r := range pool.Results() {
		if r.Error != nil {
			continue
		}
		entries[r.Index] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
		total += r.Nodes
		counted++
	}
	if counted < len(moves) {
		return nil, 0, fmt.Errorf("divide depth %d: %d of %d root moves counted: %w", depth, counted, len(moves), context.Cause(ctx))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.UCI() < entries[j].Move.UCI()
	})
	return entries, total, nil
}
