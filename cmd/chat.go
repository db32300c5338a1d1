package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app, userID)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "Stable user identifier for the session")

	return cmd
}

func runChat(cmd *cobra.Command, app *app, userID string) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, app.renderer.Banner(userID))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		_, _ = fmt.Fprint(out, app.renderer.Prompt(userID))
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		reply, err := runReplySpinner(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context) string {
			return app.service.HandleMessage(ctx, userID, text)
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, app.renderer.Reply(reply))
	}

	return scanner.Err()
}
