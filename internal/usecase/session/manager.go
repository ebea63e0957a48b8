package usecase_session

import (
	"sync"

	"github.com/reeltaste/core/internal/metrics"
	"github.com/reeltaste/core/internal/seed"
)

// Manager owns every live session, keyed by session token.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	load     func() *seed.Data
}

type ManagerOption func(*Manager)

// WithSeed overrides the dataset a new session starts from.
func WithSeed(load func() *seed.Data) ManagerOption {
	return func(m *Manager) {
		m.load = load
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		load:     seed.Load,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Obtain returns the session for the token, creating and seeding one on
// first use.
func (m *Manager) Obtain(token string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		return s
	}

	s = New(token, m.load())
	m.sessions[token] = s
	metrics.SessionsCreated.Inc()
	return s
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *Manager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
