package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "finchat",
		Short:         "FinGenie chat front end: log in and track expenses from a conversation",
		Long:          "finchat bridges chat messages and the FinGenie ledger backend: it keeps per-user login sessions, parses /add and /summary commands, and renders backend responses as chat replies.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newChatCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
