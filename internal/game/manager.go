package game

import (
	"sort"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Manager holds sessions keyed by ID.
type Manager struct {
	mu       sync.RWMutex
	cfg      *config.Config
	sessions map[string]*Session
}

// NewManager creates an empty manager. A nil cfg uses the defaults.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{cfg: cfg, sessions: make(map[string]*Session)}
}

// NewGame creates and registers a session at the starting position.
func (m *Manager) NewGame() (*Session, error) {
	return m.add(NewSession(m.cfg))
}

// NewGameFromFEN creates and registers a session starting from fen.
func (m *Manager) NewGameFromFEN(fen string) (*Session, error) {
	s, err := NewSessionFromFEN(m.cfg, fen)
	if err != nil {
		return nil, err
	}
	return m.add(s)
}

func (m *Manager) add(s *Session) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit := m.maxSessions(); limit > 0 && len(m.sessions) >= limit {
		return nil, errors.ErrSessionLimit
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *Manager) maxSessions() int {
	if m.cfg.Game == nil {
		return 0
	}
	return m.cfg.Game.MaxSessions
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	delete(m.sessions, id)
	m.cfg.Logf(2, "game %s: deleted", id)
	return nil
}

// IDs returns the registered session IDs in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
