package ports

import (
	"context"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

// CredentialExtractor pulls an email/password pair out of free text.
// Returning ok=false is not an error, it means no credentials were found.
type CredentialExtractor interface {
	Extract(ctx context.Context, text string) (domain.Credentials, bool, error)
}
