package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
)

const (
	recordPath    = "/add_expense"
	summarizePath = "/get_expenses/"

	// Wire format the ledger backend expects for transaction dates.
	dateLayout = "2006-01-02 15:04:05"
)

// LedgerClient performs record and summary calls against the ledger
// backend, normalizing responses exactly like AuthClient.
type LedgerClient struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.LedgerGateway = LedgerClient{}

type recordRequest struct {
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (c LedgerClient) Record(ctx context.Context, userID string, tx domain.RecordTransaction) error {
	endpoint, err := buildURL(c.BaseURL, recordPath)
	if err != nil {
		return transportError(fmt.Errorf("build record url: %w", err))
	}

	body, err := json.Marshal(recordRequest{
		UserID:      userID,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.OccurredAt.Format(dateLayout),
	})
	if err != nil {
		return transportError(fmt.Errorf("encode record request: %w", err))
	}

	reqCtx, cancel := requestContext(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return transportError(fmt.Errorf("create record request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClientOrDefault(c.HTTPClient).Do(req)
	if err != nil {
		return transportError(fmt.Errorf("request record: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return backendError(resp)
	}

	return nil
}

func (c LedgerClient) Summarize(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	endpoint, err := buildURL(c.BaseURL, summarizePath+url.PathEscape(userID))
	if err != nil {
		return nil, transportError(fmt.Errorf("build summary url: %w", err))
	}

	reqCtx, cancel := requestContext(ctx, c.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, transportError(fmt.Errorf("create summary request: %w", err))
	}

	resp, err := httpClientOrDefault(c.HTTPClient).Do(req)
	if err != nil {
		return nil, transportError(fmt.Errorf("request summary: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, backendError(resp)
	}

	totals, err := decodeTotals(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, malformedResponse()
	}

	return totals, nil
}

// decodeTotals walks the JSON object token by token so the categories
// keep the order the backend sent them in. Decoding into a map would
// randomize the summary between identical calls.
func decodeTotals(r io.Reader) ([]domain.CategoryTotal, error) {
	dec := json.NewDecoder(r)

	open, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read summary object: %w", err)
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("unexpected summary token %v", open)
	}

	var totals []domain.CategoryTotal
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read summary category: %w", err)
		}
		category, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected summary key %v", key)
		}

		var total float64
		if err := dec.Decode(&total); err != nil {
			return nil, fmt.Errorf("decode summary total: %w", err)
		}

		totals = append(totals, domain.CategoryTotal{Category: category, Total: total})
	}

	// dec.More reports false on a truncated body without surfacing the
	// error; reading the closing brace does.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read summary object end: %w", err)
	}

	return totals, nil
}
