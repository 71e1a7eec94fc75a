// Package cli provides the command-line interface for offview.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offview/offview/internal/cli/styles"
	"github.com/offview/offview/internal/config"
)

// CLI holds the loaded configuration and shared styles for the commands.
type CLI struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
}

// NewCLI loads the configuration and prepares the command environment.
func NewCLI() (*CLI, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &CLI{
		Config:  mgr.Get(),
		Manager: mgr,
		Theme:   styles.NewTheme(),
	}, nil
}

// NewRootCmd creates the root command for offview.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "offview",
		Short: "Off-screen web views from the command line",
		Long: `offview drives off-screen web views through their command protocol:
load pages, evaluate scripts, inspect rendered surfaces, and exercise
URL filtering and header rewrite policies.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("offview %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewEvalCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewDoctorCmd())

	return rootCmd
}
