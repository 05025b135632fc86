package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-console/core"
)

const (
	TypeUpload        = "console.command.upload"
	TypeCreateProduct = "console.command.product.create"
	TypeUpdateProduct = "console.command.product.update"
	TypeDeleteProduct = "console.command.product.delete"
	TypePurgeProducts = "console.command.product.purge"
	TypeCreateWebhook = "console.command.webhook.create"
	TypeUpdateWebhook = "console.command.webhook.update"
	TypeDeleteWebhook = "console.command.webhook.delete"
	TypeTestWebhook   = "console.command.webhook.test"
)

type UploadMessage struct {
	Filename string
	File     io.Reader
}

func (UploadMessage) Type() string { return TypeUpload }

func (m UploadMessage) Validate() error {
	if strings.TrimSpace(m.Filename) == "" {
		return fmt.Errorf("command: filename is required")
	}
	if m.File == nil {
		return fmt.Errorf("command: file contents are required")
	}
	return nil
}

type CreateProductMessage struct {
	Input core.ProductInput
}

func (CreateProductMessage) Type() string { return TypeCreateProduct }

func (m CreateProductMessage) Validate() error {
	if strings.TrimSpace(m.Input.SKU) == "" {
		return fmt.Errorf("command: sku is required")
	}
	return nil
}

type UpdateProductMessage struct {
	ProductID int64
	Input     core.ProductInput
}

func (UpdateProductMessage) Type() string { return TypeUpdateProduct }

func (m UpdateProductMessage) Validate() error {
	if m.ProductID <= 0 {
		return fmt.Errorf("command: product id is required")
	}
	if strings.TrimSpace(m.Input.SKU) == "" {
		return fmt.Errorf("command: sku is required")
	}
	return nil
}

type DeleteProductMessage struct {
	ProductID int64
}

func (DeleteProductMessage) Type() string { return TypeDeleteProduct }

func (m DeleteProductMessage) Validate() error {
	if m.ProductID <= 0 {
		return fmt.Errorf("command: product id is required")
	}
	return nil
}

// PurgeProductsMessage carries the bulk-delete confirmation. Validation
// enforces the gate so an unconfirmed purge never reaches a handler.
type PurgeProductsMessage struct {
	Confirm bool
}

func (PurgeProductsMessage) Type() string { return TypePurgeProducts }

func (m PurgeProductsMessage) Validate() error {
	if !m.Confirm {
		return fmt.Errorf("command: purge requires explicit confirmation")
	}
	return nil
}

type CreateWebhookMessage struct {
	Input core.WebhookInput
}

func (CreateWebhookMessage) Type() string { return TypeCreateWebhook }

func (m CreateWebhookMessage) Validate() error {
	return validateWebhookInput(m.Input)
}

type UpdateWebhookMessage struct {
	WebhookID int64
	Input     core.WebhookInput
}

func (UpdateWebhookMessage) Type() string { return TypeUpdateWebhook }

func (m UpdateWebhookMessage) Validate() error {
	if m.WebhookID <= 0 {
		return fmt.Errorf("command: webhook id is required")
	}
	return validateWebhookInput(m.Input)
}

type DeleteWebhookMessage struct {
	WebhookID int64
}

func (DeleteWebhookMessage) Type() string { return TypeDeleteWebhook }

func (m DeleteWebhookMessage) Validate() error {
	if m.WebhookID <= 0 {
		return fmt.Errorf("command: webhook id is required")
	}
	return nil
}

type TestWebhookMessage struct {
	WebhookID int64
}

func (TestWebhookMessage) Type() string { return TypeTestWebhook }

func (m TestWebhookMessage) Validate() error {
	if m.WebhookID <= 0 {
		return fmt.Errorf("command: webhook id is required")
	}
	return nil
}

func validateWebhookInput(input core.WebhookInput) error {
	if strings.TrimSpace(input.URL) == "" {
		return fmt.Errorf("command: webhook url is required")
	}
	if strings.TrimSpace(input.EventType) == "" {
		return fmt.Errorf("command: webhook event type is required")
	}
	return nil
}
