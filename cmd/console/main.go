package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	console "github.com/goliatone/go-console"
	"github.com/goliatone/go-console/core"
)

var (
	flagBaseURL  string
	flagPageSize int
	flagTimeout  time.Duration
	flagInterval time.Duration
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "console",
		Short:        "Product and webhook management console",
		Long:         `Console drives a product/webhook management API: CSV imports with live progress, paginated product listings, and webhook administration.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (default http://localhost:8000)")
	cmd.PersistentFlags().IntVar(&flagPageSize, "page-size", 0, "Rows per product page")
	cmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-request HTTP timeout")
	cmd.PersistentFlags().DurationVar(&flagInterval, "poll-interval", 0, "Upload status poll interval")
	cmd.AddCommand(
		newUploadCmd(),
		newStatusCmd(),
		newProductsCmd(),
		newWebhooksCmd(),
	)
	return cmd
}

// buildConsole resolves configuration (defaults, then flag overrides) and
// wires the client.
func buildConsole(ctx context.Context) (*console.Console, error) {
	runtime := core.Config{
		BaseURL:        flagBaseURL,
		PageSize:       flagPageSize,
		RequestTimeout: flagTimeout,
		PollInterval:   flagInterval,
	}
	cfg, err := core.ResolveConfig(ctx, nil, nil, runtime)
	if err != nil {
		return nil, err
	}
	return console.New(cfg)
}
