package application

import (
	"strconv"
	"strings"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

const (
	keywordAdd     = "add"
	keywordSummary = "summary"
)

// ParseCommand turns one line of chat input into a typed command. Slash
// prefixes are tolerated so both "add 500 Food" and "/add 500 Food"
// parse the same way. Unrecognized input becomes domain.Unknown, which
// is a defined fallback rather than an error; only bad arguments to a
// recognized keyword produce a *domain.ValidationError.
func ParseCommand(raw string) (domain.Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return domain.Unknown{Raw: raw}, nil
	}

	keyword := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	args := fields[1:]

	switch keyword {
	case keywordAdd:
		return parseAdd(args)
	case keywordSummary:
		if len(args) == 0 {
			return domain.Summarize{}, nil
		}
	}

	return domain.Unknown{Raw: raw}, nil
}

func parseAdd(args []string) (domain.Command, error) {
	if len(args) < 2 {
		return nil, &domain.ValidationError{Message: msgAddUsage}
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, &domain.ValidationError{Message: msgInvalidAmount}
	}

	return domain.RecordTransaction{
		Amount:      amount,
		Category:    args[1],
		Description: strings.Join(args[2:], " "),
	}, nil
}
