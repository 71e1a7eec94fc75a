package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offview/offview/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			printConfig(cli)
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(schemaCmd)
	return cmd
}

func printConfig(cli *CLI) {
	cfg := cli.Config
	t := cli.Theme

	fmt.Println(t.Title.Render("offview configuration"))
	rows := []struct {
		key   string
		value string
	}{
		{"surface.width", fmt.Sprintf("%d", cfg.Surface.Width)},
		{"surface.height", fmt.Sprintf("%d", cfg.Surface.Height)},
		{"surface.resize_timeout_ms", fmt.Sprintf("%d", cfg.Surface.ResizeTimeoutMs)},
		{"surface.default_zoom", fmt.Sprintf("%d", cfg.Surface.DefaultZoom)},
		{"transport.capacity", fmt.Sprintf("%d", cfg.Transport.Capacity)},
		{"local.root", orUnset(cfg.Local.Root)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
	}
	for _, row := range rows {
		fmt.Printf("%s = %s\n", t.Key.Render(row.key), t.Value.Render(row.value))
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
