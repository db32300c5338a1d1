package application

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
	"go.uber.org/zap"
)

// ChatService is the message-handling pipeline: session lookup, login
// hand-off, command dispatch and response formatting. One instance
// serves every user; messages from the same user are serialized, while
// different users never block each other.
type ChatService struct {
	sessions  ports.SessionStore
	auth      ports.AuthGateway
	ledger    ports.LedgerGateway
	extractor ports.CredentialExtractor
	clock     ports.Clock
	logger    *zap.Logger
	format    Formatter

	mu      sync.Mutex
	userMus map[string]*sync.Mutex
}

func NewChatService(
	sessions ports.SessionStore,
	auth ports.AuthGateway,
	ledger ports.LedgerGateway,
	extractor ports.CredentialExtractor,
	clock ports.Clock,
	logger *zap.Logger,
) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChatService{
		sessions:  sessions,
		auth:      auth,
		ledger:    ledger,
		extractor: extractor,
		clock:     clock,
		logger:    logger,
		userMus:   map[string]*sync.Mutex{},
	}
}

// HandleMessage processes one inbound (user, text) pair and returns the
// reply text. It never returns an error: every failure mode has a
// user-facing rendering, and a failure handling one user's message must
// not affect any other user.
func (s *ChatService) HandleMessage(ctx context.Context, userID, text string) string {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	session := s.sessions.Get(userID)
	if !session.Authenticated() {
		return s.handleUnauthenticated(ctx, userID, text)
	}

	if isLogout(text) {
		s.sessions.Clear(userID)
		s.logger.Info("session cleared on logout", zap.String("user_id", userID))
		return s.format.Logout()
	}

	cmd, err := ParseCommand(text)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return s.format.Validation(validationErr)
		}
		return s.format.Welcome()
	}

	return s.dispatch(ctx, userID, cmd)
}

func (s *ChatService) dispatch(ctx context.Context, userID string, cmd domain.Command) string {
	switch c := cmd.(type) {
	case domain.RecordTransaction:
		if c.OccurredAt.IsZero() {
			c.OccurredAt = s.clock.Now()
		}
		err := s.ledger.Record(ctx, userID, c)
		s.expireOnUnauthorized(userID, err)
		s.logGatewayFailure("record expense", userID, err)
		return s.format.Record(err)

	case domain.Summarize:
		totals, err := s.ledger.Summarize(ctx, userID)
		s.expireOnUnauthorized(userID, err)
		s.logGatewayFailure("fetch summary", userID, err)
		return s.format.Summary(totals, err)

	default:
		// Unknown never reaches the ledger gateway.
		return s.format.Welcome()
	}
}

func (s *ChatService) handleUnauthenticated(ctx context.Context, userID, text string) string {
	creds, found, err := s.extractor.Extract(ctx, text)
	if err != nil {
		// A broken extractor degrades to "no credentials found".
		s.logger.Warn("credential extraction failed", zap.String("user_id", userID), zap.Error(err))
		found = false
	}
	if !found {
		return s.format.LoginPrompt()
	}

	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.logGatewayFailure("login", userID, err)
		return s.format.Login(err)
	}

	s.sessions.Set(userID, token, s.clock.Now())
	s.logger.Info("user authenticated", zap.String("user_id", userID))
	return s.format.Login(nil)
}

// expireOnUnauthorized drops the cached token once the backend rejects
// it. A stored token is otherwise treated as valid indefinitely.
func (s *ChatService) expireOnUnauthorized(userID string, err error) {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) && gwErr.Status == http.StatusUnauthorized {
		s.sessions.Clear(userID)
		s.logger.Info("session cleared on backend 401", zap.String("user_id", userID))
	}
}

func (s *ChatService) logGatewayFailure(operation, userID string, err error) {
	var gwErr *domain.GatewayError
	if !errors.As(err, &gwErr) {
		return
	}
	// Structured fields only; the backend message may echo user input.
	s.logger.Warn("gateway call failed",
		zap.String("operation", operation),
		zap.String("user_id", userID),
		zap.Int("status", gwErr.Status),
		zap.Bool("transport", gwErr.Transport()),
	)
}

func (s *ChatService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	mu, ok := s.userMus[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.userMus[userID] = mu
	}
	return mu
}

func isLogout(text string) bool {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(text), "/")) == "logout"
}
