package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("api: session not found")

// Session is one game played over the API. The board is single-threaded;
// every access goes through Do.
type Session struct {
	ID      string
	GameID  string // Variant name used when recording the result
	Preset  string
	Created time.Time

	mu       sync.Mutex
	board    *core.Board
	recorded bool
}

// NewSession wraps a board in a session with a fresh ID.
func NewSession(gameID, preset string, b *core.Board) *Session {
	return &Session{
		ID:      uuid.NewString(),
		GameID:  gameID,
		Preset:  preset,
		Created: time.Now().UTC(),
		board:   b,
	}
}

// Do runs fn with exclusive access to the board.
func (s *Session) Do(fn func(b *core.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}

// markRecorded reports whether the result still needs recording and marks
// it recorded. Callers must hold the session lock via Do.
func (s *Session) markRecorded() bool {
	if s.recorded {
		return false
	}
	s.recorded = true
	return true
}

// Store holds live sessions.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Len() int
}

// memory is an in-memory Store.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an in-memory session store. Sessions are lost on restart.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (m *memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
