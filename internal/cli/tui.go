package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"getthingsdone/internal/tui"
)

func newTUICmd(configPath *string) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the to-do list in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// The terminal belongs to the UI; logs go to a file.
			if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()

			a, err := newApp(ctx, *configPath, f, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.Run(ctx, a.list)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", filepath.Join("data", "tui.log"), "file receiving log output while the UI runs")
	return cmd
}
