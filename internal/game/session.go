// Package game wraps the rules engine in caller-facing game sessions: moves
// are validated before they reach the board, and draws the engine does not
// track itself are reported through Status.
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Session is one game in progress. It is safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	cfg       *config.Config
	startFEN  string
	state     *engine.BoardState
	reps      *hashing.RepetitionTracker
	updatedAt time.Time
}

// NewSession creates a session holding the standard starting position.
func NewSession(cfg *config.Config) *Session {
	return newSession(cfg, engine.NewBoardState())
}

// NewSessionFromFEN creates a session starting from a FEN position.
func NewSessionFromFEN(cfg *config.Config, fen string) (*Session, error) {
	state, err := engine.NewBoardStateFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, state), nil
}

func newSession(cfg *config.Config, state *engine.BoardState) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		cfg:       cfg,
		startFEN:  state.FEN(),
		state:     state,
		reps:      hashing.NewRepetitionTracker(),
		updatedAt: now,
	}
	s.reps.Push(hashing.Zobrist(state))
	cfg.Logf(2, "game %s: created from %s", s.ID, s.startFEN)
	return s
}

// Play validates a move in coordinate notation ("e2e4", "e7e8q") and
// applies it. The position is unchanged on error.
func (s *Session) Play(text string) (chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOngoing(text); err != nil {
		return chess.Move{}, err
	}
	from, to, err := engine.ParseCoordinates(text)
	if err != nil {
		return chess.Move{}, s.moveError(err, text)
	}
	m, err := s.state.FindMove(from, to)
	if err != nil {
		return chess.Move{}, s.moveError(err, text)
	}
	s.apply(m)
	return m, nil
}

// PlayMove applies a move previously taken from LegalMoves. Moves that are
// not legal in the current position are rejected with ErrIllegalMove.
func (s *Session) PlayMove(m chess.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOngoing(m.UCI()); err != nil {
		return err
	}
	if !s.state.IsLegal(m) {
		return s.moveError(errors.ErrIllegalMove, m.UCI())
	}
	s.apply(m)
	return nil
}

func (s *Session) apply(m chess.Move) {
	s.state.ApplyMove(m)
	count := s.reps.Push(hashing.Zobrist(s.state))
	s.updatedAt = time.Now()
	s.cfg.Logf(2, "game %s: played %s (%s), position seen %d times", s.ID, m.UCI(), m.Notation(), count)
}

func (s *Session) checkOngoing(text string) error {
	if status := s.status(); status.IsOver() {
		return s.moveError(fmt.Errorf("%s: %w", status, errors.ErrGameOver), text)
	}
	return nil
}

func (s *Session) moveError(err error, text string) error {
	return &errors.GameError{
		Err:      err,
		GameID:   s.ID,
		PlyNum:   s.state.Ply() + 1,
		MoveText: text,
	}
}

// Undo takes back the last move. It returns false when there is nothing
// to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.state.LastMove()
	if !ok {
		return false
	}
	s.state.UndoMove()
	s.reps.Pop()
	s.updatedAt = time.Now()
	s.cfg.Logf(2, "game %s: undid %s", s.ID, m.UCI())
	return true
}

// Reset returns the session to the position it was created with and
// clears its history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = engine.MustFEN(s.startFEN)
	s.reps.Reset()
	s.reps.Push(hashing.Zobrist(s.state))
	s.updatedAt = time.Now()
	s.cfg.Logf(2, "game %s: reset", s.ID)
}

// LegalMoves returns the legal moves for the side to move.
func (s *Session) LegalMoves() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMoves()
}

// Status reports whether the game is still in progress and, if not, how
// it ended.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *Session) status() Status {
	if !s.state.HasLegalMoves() {
		if s.state.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if s.cfg.Game != nil {
		if s.cfg.Game.CheckInsufficientMaterial && s.state.HasInsufficientMaterial() {
			return InsufficientMaterial
		}
		if limit := s.cfg.Game.RepetitionLimit; limit > 0 {
			if hash, ok := s.reps.Current(); ok && s.reps.Count(hash) >= limit {
				return Repetition
			}
		}
	}
	return Ongoing
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.InCheck()
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ToMove()
}

// Board returns a copy of the current grid.
func (s *Session) Board() chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Board()
}

// FEN returns the current position in FEN.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FEN()
}

// History returns the moves played, oldest first.
func (s *Session) History() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.History()
}

// UpdatedAt returns the time of the last change to the position.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// MoveLog renders the history as numbered move pairs, one full move per
// line: "1. e4 e5". A game starting with Black to move opens with "1... e5".
func (s *Session) MoveLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := engine.MustFEN(s.startFEN)
	number := start.FullmoveNumber()
	colour := start.ToMove()

	lines := []string{}
	var line string
	for _, m := range s.state.History() {
		if colour == chess.White {
			line = fmt.Sprintf("%d. %s", number, m.Notation())
		} else {
			if line == "" {
				line = fmt.Sprintf("%d... %s", number, m.Notation())
			} else {
				line += " " + m.Notation()
			}
			lines = append(lines, line)
			line = ""
			number++
		}
		colour = colour.Opposite()
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
