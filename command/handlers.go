package command

import (
	"context"
	"io"

	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-console/core"
)

// MutatingService is the write surface the commands delegate to; the
// transport client satisfies it.
type MutatingService interface {
	Upload(ctx context.Context, filename string, file io.Reader) (core.UploadTask, error)
	CreateProduct(ctx context.Context, input core.ProductInput) (core.Product, error)
	UpdateProduct(ctx context.Context, id int64, input core.ProductInput) (core.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	DeleteAllProducts(ctx context.Context) (int, error)
	CreateWebhook(ctx context.Context, input core.WebhookInput) (core.Webhook, error)
	UpdateWebhook(ctx context.Context, id int64, input core.WebhookInput) (core.Webhook, error)
	DeleteWebhook(ctx context.Context, id int64) error
	TestWebhook(ctx context.Context, id int64) (string, error)
}

type UploadCommand struct {
	service MutatingService
}

func NewUploadCommand(service MutatingService) *UploadCommand {
	return &UploadCommand{service: service}
}

func (c *UploadCommand) Execute(ctx context.Context, msg UploadMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: upload service is required")
	}
	out, err := c.service.Upload(ctx, msg.Filename, msg.File)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type CreateProductCommand struct {
	service MutatingService
}

func NewCreateProductCommand(service MutatingService) *CreateProductCommand {
	return &CreateProductCommand{service: service}
}

func (c *CreateProductCommand) Execute(ctx context.Context, msg CreateProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product service is required")
	}
	out, err := c.service.CreateProduct(ctx, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateProductCommand struct {
	service MutatingService
}

func NewUpdateProductCommand(service MutatingService) *UpdateProductCommand {
	return &UpdateProductCommand{service: service}
}

func (c *UpdateProductCommand) Execute(ctx context.Context, msg UpdateProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product service is required")
	}
	out, err := c.service.UpdateProduct(ctx, msg.ProductID, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteProductCommand struct {
	service MutatingService
}

func NewDeleteProductCommand(service MutatingService) *DeleteProductCommand {
	return &DeleteProductCommand{service: service}
}

func (c *DeleteProductCommand) Execute(ctx context.Context, msg DeleteProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product service is required")
	}
	return c.service.DeleteProduct(ctx, msg.ProductID)
}

type PurgeProductsCommand struct {
	service MutatingService
}

func NewPurgeProductsCommand(service MutatingService) *PurgeProductsCommand {
	return &PurgeProductsCommand{service: service}
}

func (c *PurgeProductsCommand) Execute(ctx context.Context, msg PurgeProductsMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product service is required")
	}
	if !msg.Confirm {
		return commandInvalidInputError("command: purge requires explicit confirmation")
	}
	deleted, err := c.service.DeleteAllProducts(ctx)
	if err != nil {
		return err
	}
	storeResult(ctx, deleted)
	return nil
}

type CreateWebhookCommand struct {
	service MutatingService
}

func NewCreateWebhookCommand(service MutatingService) *CreateWebhookCommand {
	return &CreateWebhookCommand{service: service}
}

func (c *CreateWebhookCommand) Execute(ctx context.Context, msg CreateWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: webhook service is required")
	}
	out, err := c.service.CreateWebhook(ctx, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateWebhookCommand struct {
	service MutatingService
}

func NewUpdateWebhookCommand(service MutatingService) *UpdateWebhookCommand {
	return &UpdateWebhookCommand{service: service}
}

func (c *UpdateWebhookCommand) Execute(ctx context.Context, msg UpdateWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: webhook service is required")
	}
	out, err := c.service.UpdateWebhook(ctx, msg.WebhookID, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteWebhookCommand struct {
	service MutatingService
}

func NewDeleteWebhookCommand(service MutatingService) *DeleteWebhookCommand {
	return &DeleteWebhookCommand{service: service}
}

func (c *DeleteWebhookCommand) Execute(ctx context.Context, msg DeleteWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: webhook service is required")
	}
	return c.service.DeleteWebhook(ctx, msg.WebhookID)
}

type TestWebhookCommand struct {
	service MutatingService
}

func NewTestWebhookCommand(service MutatingService) *TestWebhookCommand {
	return &TestWebhookCommand{service: service}
}

func (c *TestWebhookCommand) Execute(ctx context.Context, msg TestWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: webhook service is required")
	}
	taskID, err := c.service.TestWebhook(ctx, msg.WebhookID)
	if err != nil {
		return err
	}
	storeResult(ctx, taskID)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
