package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/offview/offview/internal/config"
	"github.com/offview/offview/internal/logging"
	"github.com/offview/offview/pkg/webview"
)

// NewEvalCmd creates the eval command: load a page off screen, run a script
// against it, and print the result as JSON.
func NewEvalCmd() *cobra.Command {
	var (
		urlFlag    string
		htmlFlag   string
		fileFlag   string
		frameFlag  string
		timeout    time.Duration
		filterMode string
		filters    []string
	)

	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "Evaluate a script against an off-screen page",
		Long: `Loads a page into a headless view, waits for the load to finish,
evaluates the script, and prints the resulting value as JSON. The page
source comes from --url, --html, or --file; with none given the script
runs against a blank document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			return runEval(cmd.Context(), cli, evalParams{
				script:     args[0],
				url:        urlFlag,
				html:       htmlFlag,
				file:       fileFlag,
				frame:      frameFlag,
				timeout:    timeout,
				filterMode: filterMode,
				filters:    filters,
			})
		},
	}

	cmd.Flags().StringVar(&urlFlag, "url", "", "URL to load before evaluating")
	cmd.Flags().StringVar(&htmlFlag, "html", "", "HTML string to load before evaluating")
	cmd.Flags().StringVar(&fileFlag, "file", "", "file under the local root to load before evaluating")
	cmd.Flags().StringVar(&frameFlag, "frame", "", "target frame (empty for the main frame)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "overall deadline for load and evaluation")
	cmd.Flags().StringVar(&filterMode, "filter-mode", "none", "URL filtering mode: none, blacklist or whitelist")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "URL filter pattern (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("url", "html", "file")

	return cmd
}

type evalParams struct {
	script     string
	url        string
	html       string
	file       string
	frame      string
	timeout    time.Duration
	filterMode string
	filters    []string
}

func runEval(ctx context.Context, cli *CLI, p evalParams) error {
	ctx = logging.WithContext(ctx, newLogger(cli.Config))
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var root afero.Fs
	if cli.Config.Local.Root != "" {
		root = afero.NewBasePathFs(afero.NewOsFs(), cli.Config.Local.Root)
	}

	v := webview.New(ctx, webview.Options{
		Width:             cli.Config.Surface.Width,
		Height:            cli.Config.Surface.Height,
		Root:              root,
		TransportCapacity: cli.Config.Transport.Capacity,
		ResizeTimeout:     time.Duration(cli.Config.Surface.ResizeTimeoutMs) * time.Millisecond,
	})
	defer func() {
		v.Destroy()
		select {
		case <-v.Done():
		case <-time.After(time.Second):
		}
	}()

	mode, err := parseFilterMode(p.filterMode)
	if err != nil {
		return err
	}
	v.SetURLFilteringMode(mode)
	for _, pattern := range p.filters {
		v.AddURLFilter(pattern)
	}

	loaded := make(chan struct{}, 1)
	v.SetListener(&webview.ListenerFuncs{
		LoadFinished: func(string) {
			select {
			case loaded <- struct{}{}:
			default:
			}
		},
		ConsoleMessage: func(message string, line int, source string) {
			fmt.Fprintln(os.Stderr, cli.Theme.Subtle.Render(
				fmt.Sprintf("console %s:%d %s", source, line, message)))
		},
		Crashed: func(reason string) {
			fmt.Fprintln(os.Stderr, cli.Theme.ErrorStyle.Render("view crashed: "+reason))
		},
	})

	switch {
	case p.url != "":
		v.LoadURL(p.url, p.frame, "", "")
	case p.html != "":
		v.LoadHTML(p.html, p.frame)
	case p.file != "":
		v.LoadFile(p.file, p.frame)
	default:
		v.LoadHTML("<html><body></body></html>", p.frame)
	}

	select {
	case <-loaded:
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for page load: %w", ctx.Err())
	}

	result, err := v.ExecuteJavascriptWithResult(p.script, p.frame).Get(ctx)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	data, err := result.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	lc := logging.DefaultConfig()
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		lc.Level = level
	}
	if cfg.Logging.Format == "json" {
		lc.Format = "json"
	}
	return logging.New(lc)
}

func parseFilterMode(mode string) (webview.FilteringMode, error) {
	switch mode {
	case "none":
		return webview.FilterNone, nil
	case "blacklist":
		return webview.FilterBlacklist, nil
	case "whitelist":
		return webview.FilterWhitelist, nil
	default:
		return webview.FilterNone, fmt.Errorf("unknown filter mode %q (expected none, blacklist or whitelist)", mode)
	}
}
