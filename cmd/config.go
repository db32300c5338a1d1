package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davinder1436/fingenie-chat/internal/config"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	configFileMode = 0o600
	configDirMode  = 0o700
)

type configFile struct {
	Backend configFileBackend `toml:"backend"`
	Chat    configFileChat    `toml:"chat"`
	Gemini  configFileGemini  `toml:"gemini"`
	Debug   bool              `toml:"debug"`
}

type configFileBackend struct {
	AuthURL   string `toml:"auth_url"`
	LedgerURL string `toml:"ledger_url"`
	Timeout   string `toml:"timeout"`
}

type configFileChat struct {
	ListenAddr string `toml:"listen_addr"`
}

type configFileGemini struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage finchat configuration",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
				return nil
			}

			defaults := configFile{
				Backend: configFileBackend{
					AuthURL:   "http://127.0.0.1:8080",
					LedgerURL: "http://127.0.0.1:5000",
					Timeout:   "10s",
				},
				Chat:   configFileChat{ListenAddr: "127.0.0.1:8090"},
				Gemini: configFileGemini{Model: "gemini-2.0-flash"},
			}

			data, err := toml.Marshal(defaults)
			if err != nil {
				return fmt.Errorf("encode default config: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(path, data, configFileMode); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
