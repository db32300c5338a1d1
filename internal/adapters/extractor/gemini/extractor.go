package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/davinder1436/fingenie-chat/internal/ports"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const systemInstruction = "You are an authentication assistant. " +
	"Extract login credentials (email and password) from the user's message when they are present. " +
	"Set found to false when the message does not contain both. " +
	"Never invent values."

var _ ports.CredentialExtractor = (*Extractor)(nil)

// Extractor delegates credential extraction to the Gemini API with a
// constrained JSON response schema.
type Extractor struct {
	client *genai.Client
	model  string
}

func NewExtractor(ctx context.Context, apiKey, model string) (*Extractor, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Extractor{client: client, model: model}, nil
}

type extraction struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Found    bool   `json:"found"`
}

func (e *Extractor) Extract(ctx context.Context, text string) (domain.Credentials, bool, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"email":    {Type: genai.TypeString},
				"password": {Type: genai.TypeString},
				"found":    {Type: genai.TypeBoolean},
			},
			Required: []string{"found"},
		},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(text), config)
	if err != nil {
		return domain.Credentials{}, false, fmt.Errorf("generate credential extraction: %w", err)
	}

	return parseExtraction(resp.Text())
}

func parseExtraction(raw string) (domain.Credentials, bool, error) {
	var payload extraction
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Credentials{}, false, fmt.Errorf("decode credential extraction: %w", err)
	}

	if !payload.Found || payload.Email == "" || payload.Password == "" {
		return domain.Credentials{}, false, nil
	}

	return domain.Credentials{Email: payload.Email, Password: payload.Password}, true, nil
}
