package domain

import "time"

// Session is the per-user authentication state. A session with an empty
// token is the same as never having logged in.
type Session struct {
	UserID     string
	Token      string
	AcquiredAt time.Time
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Credentials are extracted from a single message, used for exactly one
// login attempt and discarded. They must never be persisted or logged.
type Credentials struct {
	Email    string
	Password string
}
