package memory

import (
	"sync"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
)

var _ ports.SessionStore = (*Store)(nil)

// Store keeps sessions in process memory, keyed by user id. The lock is
// only held for map access, never across a network call, so it cannot
// serialize unrelated users behind backend latency.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]domain.Session{}}
}

func (s *Store) Get(userID string) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return domain.Session{UserID: userID}
	}
	return session
}

func (s *Store) Set(userID, token string, acquiredAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = domain.Session{
		UserID:     userID,
		Token:      token,
		AcquiredAt: acquiredAt,
	}
}

func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
