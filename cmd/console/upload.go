package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-console/query"
)

func newUploadCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Upload a product CSV and print the task id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			sink := newStdoutProgressSink(cmd.OutOrStdout())
			tracker := c.Uploads(sink)
			defer tracker.Stop()

			if err := tracker.Submit(ctx, filepath.Base(args[0]), file); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			// Follow the poll loop until the server reports a terminal
			// status or the user interrupts.
			select {
			case <-ctx.Done():
			case <-sink.Done():
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Poll task status until it completes")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id>",
		Short: "Fetch the status of an upload task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}

			msg := query.UploadStatusMessage{TaskID: args[0]}
			if err := msg.Validate(); err != nil {
				return err
			}
			task, err := c.Facade().Queries().UploadStatus.Query(ctx, msg)
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), task)
			return nil
		},
	}
}

// dispatch validates a command message, executes it, and collects the
// typed result stored by the handler.
func dispatch[M interface{ Validate() error }, T any](
	ctx context.Context,
	execute func(ctx context.Context, msg M) error,
	msg M,
) (T, error) {
	var zero T
	if err := msg.Validate(); err != nil {
		return zero, err
	}
	collector := gocmd.NewResult[T]()
	execCtx := gocmd.ContextWithResult(ctx, collector)
	if err := execute(execCtx, msg); err != nil {
		return zero, err
	}
	out, ok := collector.Load()
	if !ok {
		return zero, nil
	}
	return out, nil
}
