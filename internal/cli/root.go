// Package cli wires configuration, storage and the front-ends into cobra commands.
package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// Assets holds the embedded web files. Paths are rooted at the module
// directory: templates/... and static/....
type Assets struct {
	Templates fs.FS
	Static    fs.FS
}

// NewRootCmd builds the command tree. Running the root command serves the web page.
func NewRootCmd(assets Assets) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "getthingsdone",
		Short:         "Get Things Done! - a small to-do list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file (default ./getthingsdone.toml)")

	serveCmd := newServeCmd(&configPath, assets)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newTUICmd(&configPath))
	return rootCmd
}

// Execute runs the root command.
func Execute(assets Assets) error {
	if err := NewRootCmd(assets).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
