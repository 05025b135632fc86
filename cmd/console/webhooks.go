package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-console/command"
	"github.com/goliatone/go-console/core"
	"github.com/goliatone/go-console/query"
)

func newWebhooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhooks",
	}
	cmd.AddCommand(
		newWebhooksListCmd(),
		newWebhooksCreateCmd(),
		newWebhooksUpdateCmd(),
		newWebhooksDeleteCmd(),
		newWebhooksTestCmd(),
	)
	return cmd
}

type webhookFlags struct {
	url       string
	eventType string
	active    string
}

func (f *webhookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "", "Callback URL")
	cmd.Flags().StringVar(&f.eventType, "event-type", "", "Event type, e.g. product.created")
	cmd.Flags().StringVar(&f.active, "active", "", "Active flag: true or false (empty keeps the server default)")
}

func (f *webhookFlags) input() core.WebhookInput {
	return core.WebhookInput{
		URL:       f.url,
		EventType: f.eventType,
		Active:    core.ParseOptionalBool(f.active),
	}
}

func newWebhooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			webhooks, err := c.Facade().Queries().ListWebhooks.Query(ctx, query.ListWebhooksMessage{})
			if err != nil {
				return err
			}
			printWebhooks(cmd.OutOrStdout(), webhooks)
			return nil
		},
	}
}

func newWebhooksCreateCmd() *cobra.Command {
	var flags webhookFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}

			webhook, err := dispatch[command.CreateWebhookMessage, core.Webhook](
				ctx,
				c.Facade().Commands().CreateWebhook.Execute,
				command.CreateWebhookMessage{Input: flags.input()},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created webhook %d (%s)\n", webhook.ID, webhook.EventType)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newWebhooksUpdateCmd() *cobra.Command {
	var flags webhookFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("webhook id must be numeric: %q", args[0])
			}

			webhook, err := dispatch[command.UpdateWebhookMessage, core.Webhook](
				ctx,
				c.Facade().Commands().UpdateWebhook.Execute,
				command.UpdateWebhookMessage{WebhookID: id, Input: flags.input()},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated webhook %d (%s)\n", webhook.ID, webhook.EventType)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newWebhooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("webhook id must be numeric: %q", args[0])
			}

			msg := command.DeleteWebhookMessage{WebhookID: id}
			if err := msg.Validate(); err != nil {
				return err
			}
			if err := c.Facade().Commands().DeleteWebhook.Execute(ctx, msg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted webhook %d\n", id)
			return nil
		},
	}
}

func newWebhooksTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <id>",
		Short: "Trigger a fire-and-forget test delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildConsole(ctx)
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("webhook id must be numeric: %q", args[0])
			}

			taskID, err := dispatch[command.TestWebhookMessage, string](
				ctx,
				c.Facade().Commands().TestWebhook.Execute,
				command.TestWebhookMessage{WebhookID: id},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Test triggered. Task ID: %s\n", taskID)
			return nil
		},
	}
}
