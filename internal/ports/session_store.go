package ports

import (
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

// SessionStore owns the per-user authentication state. Absence of a
// session is a valid state, not an error, so the contract is error-free.
// Implementations must be safe for concurrent use across users.
type SessionStore interface {
	Get(userID string) domain.Session
	Set(userID, token string, acquiredAt time.Time)
	Clear(userID string)
}
