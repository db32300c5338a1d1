package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDirName = ".finchat"
	configName    = "config"
	configType    = "toml"

	envPrefix = "FINCHAT"
)

// Config carries everything the process needs at startup. Values come
// from ~/.finchat/config.toml with FINCHAT_* environment overrides.
type Config struct {
	AuthBaseURL    string
	LedgerBaseURL  string
	RequestTimeout time.Duration
	ListenAddr     string
	GeminiAPIKey   string
	GeminiModel    string
	Debug          bool
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("backend.auth_url", "http://127.0.0.1:8080")
	cfg.SetDefault("backend.ledger_url", "http://127.0.0.1:5000")
	cfg.SetDefault("backend.timeout", "10s")
	cfg.SetDefault("chat.listen_addr", "127.0.0.1:8090")
	cfg.SetDefault("gemini.api_key", "")
	cfg.SetDefault("gemini.model", "gemini-2.0-flash")
	cfg.SetDefault("debug", false)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		AuthBaseURL:    cfg.GetString("backend.auth_url"),
		LedgerBaseURL:  cfg.GetString("backend.ledger_url"),
		RequestTimeout: cfg.GetDuration("backend.timeout"),
		ListenAddr:     cfg.GetString("chat.listen_addr"),
		GeminiAPIKey:   cfg.GetString("gemini.api_key"),
		GeminiModel:    cfg.GetString("gemini.model"),
		Debug:          cfg.GetBool("debug"),
	}, nil
}

// Path returns where `finchat config init` writes the default file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName, configName+"."+configType), nil
}
