package cmd

import (
	"context"
	"fmt"

	"github.com/davinder1436/fingenie-chat/internal/adapters/extractor/gemini"
	"github.com/davinder1436/fingenie-chat/internal/adapters/extractor/pattern"
	"github.com/davinder1436/fingenie-chat/internal/adapters/gateway"
	chatrender "github.com/davinder1436/fingenie-chat/internal/adapters/render/chat"
	"github.com/davinder1436/fingenie-chat/internal/adapters/session/memory"
	"github.com/davinder1436/fingenie-chat/internal/application"
	"github.com/davinder1436/fingenie-chat/internal/config"
	"github.com/davinder1436/fingenie-chat/internal/logging"
	"github.com/davinder1436/fingenie-chat/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	service  *application.ChatService
	renderer chatrender.Renderer
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	authClient := gateway.AuthClient{
		BaseURL:        cfg.AuthBaseURL,
		RequestTimeout: cfg.RequestTimeout,
	}
	ledgerClient := gateway.LedgerClient{
		BaseURL:        cfg.LedgerBaseURL,
		RequestTimeout: cfg.RequestTimeout,
	}

	// Without an API key the fixed-grammar extractor keeps the binary
	// fully functional offline.
	var extractor ports.CredentialExtractor = pattern.Extractor{}
	if cfg.GeminiAPIKey != "" {
		geminiExtractor, err := gemini.NewExtractor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("wire gemini extractor: %w", err)
		}
		extractor = geminiExtractor
	}

	service := application.NewChatService(
		memory.NewStore(),
		authClient,
		ledgerClient,
		extractor,
		ports.SystemClock{},
		logger,
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		service:  service,
		renderer: chatrender.NewRenderer(),
	}, nil
}
