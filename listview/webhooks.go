package listview

import (
	"context"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-console/core"
)

// WebhookBinding adapts the webhook resource family. The wire returns the
// full collection unpaginated, so List presents it as a single page and
// ignores the product-oriented filters.
type WebhookBinding struct {
	Client core.WebhookClient
}

func NewWebhookBinding(client core.WebhookClient) *WebhookBinding {
	return &WebhookBinding{Client: client}
}

func (b *WebhookBinding) Label() string { return "webhooks" }

func (b *WebhookBinding) EmptyMessage() string { return "No webhooks found." }

func (b *WebhookBinding) List(ctx context.Context, _ core.ListQuery) (core.Page[core.Webhook], error) {
	if b == nil || b.Client == nil {
		return core.Page[core.Webhook]{}, bindingError("listview: webhook binding requires a client")
	}
	webhooks, err := b.Client.ListWebhooks(ctx)
	if err != nil {
		return core.Page[core.Webhook]{}, err
	}
	return core.Page[core.Webhook]{
		Items:      webhooks,
		Total:      len(webhooks),
		Page:       1,
		TotalPages: 1,
		Limit:      len(webhooks),
	}, nil
}

func (b *WebhookBinding) Create(ctx context.Context, form core.FormData) (core.Webhook, error) {
	if b == nil || b.Client == nil {
		return core.Webhook{}, bindingError("listview: webhook binding requires a client")
	}
	input, err := decodeWebhookForm(form)
	if err != nil {
		return core.Webhook{}, err
	}
	return b.Client.CreateWebhook(ctx, input)
}

func (b *WebhookBinding) Update(ctx context.Context, id string, form core.FormData) (core.Webhook, error) {
	if b == nil || b.Client == nil {
		return core.Webhook{}, bindingError("listview: webhook binding requires a client")
	}
	webhookID, err := parseRowID(id)
	if err != nil {
		return core.Webhook{}, err
	}
	input, err := decodeWebhookForm(form)
	if err != nil {
		return core.Webhook{}, err
	}
	return b.Client.UpdateWebhook(ctx, webhookID, input)
}

func (b *WebhookBinding) Delete(ctx context.Context, id string) error {
	if b == nil || b.Client == nil {
		return bindingError("listview: webhook binding requires a client")
	}
	webhookID, err := parseRowID(id)
	if err != nil {
		return err
	}
	return b.Client.DeleteWebhook(ctx, webhookID)
}

// Test triggers a fire-and-forget delivery and returns the server's task
// id. Nothing polls it.
func (b *WebhookBinding) Test(ctx context.Context, id string) (string, error) {
	if b == nil || b.Client == nil {
		return "", bindingError("listview: webhook binding requires a client")
	}
	webhookID, err := parseRowID(id)
	if err != nil {
		return "", err
	}
	return b.Client.TestWebhook(ctx, webhookID)
}

func (b *WebhookBinding) ID(item core.Webhook) string {
	return strconv.FormatInt(item.ID, 10)
}

func (b *WebhookBinding) Prefill(item core.Webhook) core.FormData {
	return core.FormData{
		"url":        item.URL,
		"event_type": item.EventType,
		"active":     core.FormatOptionalBool(item.Active),
	}
}

func decodeWebhookForm(form core.FormData) (core.WebhookInput, error) {
	url := strings.TrimSpace(form.Get("url"))
	if url == "" {
		return core.WebhookInput{}, core.NewConsoleError("URL is required.", goerrors.CategoryBadInput)
	}
	eventType := strings.TrimSpace(form.Get("event_type"))
	if eventType == "" {
		return core.WebhookInput{}, core.NewConsoleError("Event type is required.", goerrors.CategoryBadInput)
	}
	return core.WebhookInput{
		URL:       url,
		EventType: eventType,
		Active:    core.ParseOptionalBool(form.Get("active")),
	}, nil
}

var _ Binding[core.Webhook] = (*WebhookBinding)(nil)
var _ Tester = (*WebhookBinding)(nil)
