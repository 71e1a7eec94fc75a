package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/offview/offview/internal/cli/styles"
	"github.com/offview/offview/pkg/webview"
)

// NewDoctorCmd creates the doctor command: sanity-check the configuration
// and run a smoke evaluation against a headless view.
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and run a headless smoke test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

func runDoctor(ctx context.Context) error {
	theme := styles.NewTheme()
	failures := 0

	report := func(name string, err error) {
		if err != nil {
			failures++
			fmt.Printf("%s %s: %v\n", theme.ErrorStyle.Render("FAIL"), name, err)
			return
		}
		fmt.Printf("%s %s\n", theme.Highlight.Render("ok"), name)
	}

	cli, err := NewCLI()
	report("configuration loads and validates", err)
	if err != nil {
		return fmt.Errorf("%d check(s) failed", failures)
	}

	report("local resource root", checkLocalRoot(cli))
	report("headless evaluation", checkHeadlessEval(ctx, cli))

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println(theme.Subtle.Render("all checks passed"))
	return nil
}

func checkLocalRoot(cli *CLI) error {
	root := cli.Config.Local.Root
	if root == "" {
		return nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("local.root %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("local.root %q is not a directory", root)
	}
	return nil
}

func checkHeadlessEval(ctx context.Context, cli *CLI) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	v := webview.New(ctx, webview.Options{
		Width:  cli.Config.Surface.Width,
		Height: cli.Config.Surface.Height,
	})
	defer v.Destroy()

	result, err := v.ExecuteJavascriptWithResult("1+2", "").Get(ctx)
	if err != nil {
		return err
	}
	if result.Number() != 3 {
		return fmt.Errorf("expected 3, got %s", result.String())
	}
	return nil
}
