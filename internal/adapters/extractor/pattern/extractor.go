package pattern

import (
	"context"
	"regexp"
	"strings"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	passwordPattern = regexp.MustCompile(`(?i)password(?:\s+is)?\s*[:=]?\s*(\S+)`)
)

var _ ports.CredentialExtractor = Extractor{}

// Extractor recognizes a fixed grammar like "my email is a@b.com and my
// password is hunter2". It is the offline default; the gemini adapter
// handles less structured phrasing.
type Extractor struct{}

func (Extractor) Extract(_ context.Context, text string) (domain.Credentials, bool, error) {
	email := emailPattern.FindString(text)
	if email == "" {
		return domain.Credentials{}, false, nil
	}

	match := passwordPattern.FindStringSubmatch(text)
	if match == nil {
		return domain.Credentials{}, false, nil
	}

	password := strings.Trim(match[1], `"'`)
	password = strings.TrimRight(password, ".,;:")
	if password == "" {
		return domain.Credentials{}, false, nil
	}

	return domain.Credentials{Email: email, Password: password}, true, nil
}
