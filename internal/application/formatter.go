package application

import (
	"errors"
	"strconv"
	"strings"

	"github.com/davinder1436/fingenie-chat/internal/domain"
)

const (
	msgWelcome = "Welcome! You can add expenses like this:\n\n" +
		"/add 500 Food Lunch at cafe\n" +
		"Or type /summary to get your expense summary."
	msgLoginPrompt   = "Please log in first. Send me your email and password to get started."
	msgLoginSuccess  = "Login successful! You are now authenticated."
	msgLogout        = "You have been logged out."
	msgRecordSuccess = "Expense added successfully! ✅"
	msgSummaryHeader = "📊 Expense Summary:"
	msgSummaryEmpty  = "No expenses recorded yet."
	msgAddUsage      = "Usage: /add <amount> <category> [description]"
	msgInvalidAmount = "Invalid amount! Please enter a number."
	msgUnavailable   = "Service unavailable. Please try again later."
	msgUnknownError  = "unknown error"
)

// Formatter renders gateway outcomes into user-facing text. Raw tokens
// and credentials never appear in any of its output.
type Formatter struct{}

func (Formatter) Welcome() string {
	return msgWelcome
}

func (Formatter) LoginPrompt() string {
	return msgLoginPrompt
}

func (Formatter) Logout() string {
	return msgLogout
}

func (f Formatter) Login(err error) string {
	if err != nil {
		return f.gatewayMessage(err)
	}
	return msgLoginSuccess
}

func (f Formatter) Record(err error) string {
	if err != nil {
		return f.gatewayMessage(err)
	}
	return msgRecordSuccess
}

func (f Formatter) Summary(totals []domain.CategoryTotal, err error) string {
	if err != nil {
		return f.gatewayMessage(err)
	}
	if len(totals) == 0 {
		return msgSummaryEmpty
	}

	var b strings.Builder
	b.WriteString(msgSummaryHeader)
	for _, total := range totals {
		b.WriteString("\n")
		b.WriteString(total.Category)
		b.WriteString(": ₹")
		b.WriteString(strconv.FormatFloat(total.Total, 'f', -1, 64))
	}
	return b.String()
}

func (Formatter) Validation(err *domain.ValidationError) string {
	return err.Message
}

// gatewayMessage surfaces backend-reported messages verbatim and hides
// transport internals behind a fixed unavailability string.
func (Formatter) gatewayMessage(err error) string {
	var gwErr *domain.GatewayError
	if !errors.As(err, &gwErr) || gwErr.Transport() {
		return msgUnavailable
	}
	if gwErr.Message == "" {
		return msgUnknownError
	}
	return gwErr.Message
}
