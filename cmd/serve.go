package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/adapters/httpserver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(app *app) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat webhook server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, app, listenAddr)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, app *app, listenAddr string) error {
	if listenAddr == "" {
		listenAddr = app.cfg.ListenAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           httpserver.New(app.service, app.logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	app.logger.Info("webhook server starting", zap.String("addr", listenAddr))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve webhook: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
