package ports

import (
	"context"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

// AuthGateway exchanges credentials for a backend token. Every failure,
// including transport-level ones, comes back as *domain.GatewayError.
type AuthGateway interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

// LedgerGateway performs record and summary calls against the ledger
// backend, scoped to a user. Failures follow the AuthGateway convention.
type LedgerGateway interface {
	Record(ctx context.Context, userID string, tx domain.RecordTransaction) error
	Summarize(ctx context.Context, userID string) ([]domain.CategoryTotal, error)
}
