package booking

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions holds one booking session per authenticated user, created lazily.
// Sessions live for the process lifetime; only committed bookings are
// persisted, never seat maps or selections.
type Sessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[uuid.UUID]*Session)}
}

// Get returns the user's session, creating it on first use.
func (m *Sessions) Get(userID uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		session = NewSession()
		m.sessions[userID] = session
	}
	return session
}
