// Command-line interface entrypoint for the notenest admin CLI
package main

import (
	"fmt"
	"os"

	"notenest/notenest/config"
	"notenest/notenest/server"
	"notenest/notenest/utils/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "notenest",
		Short:         "Notes and checklist items over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = server.Bootstrap()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cfg)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the notes and checklist_items tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Migrate(cfg)
		},
	})

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.ErrorLogger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "notenest:", err)
		os.Exit(1)
	}
}
