package console

import (
	"fmt"

	consolecommand "github.com/goliatone/go-console/command"
	"github.com/goliatone/go-console/core"
	consolequery "github.com/goliatone/go-console/query"
)

// CommandQueryService is the full surface the facade dispatches against;
// the transport client satisfies it.
type CommandQueryService interface {
	consolecommand.MutatingService
	consolequery.ProductReader
	consolequery.WebhookReader
	consolequery.UploadStatusReader
}

type Commands struct {
	Upload        *consolecommand.UploadCommand
	CreateProduct *consolecommand.CreateProductCommand
	UpdateProduct *consolecommand.UpdateProductCommand
	DeleteProduct *consolecommand.DeleteProductCommand
	PurgeProducts *consolecommand.PurgeProductsCommand
	CreateWebhook *consolecommand.CreateWebhookCommand
	UpdateWebhook *consolecommand.UpdateWebhookCommand
	DeleteWebhook *consolecommand.DeleteWebhookCommand
	TestWebhook   *consolecommand.TestWebhookCommand
}

type Queries struct {
	ListProducts *consolequery.ListProductsQuery
	ListWebhooks *consolequery.ListWebhooksQuery
	UploadStatus *consolequery.UploadStatusQuery
}

// Facade bundles every command and query handler over one service.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("console: command/query service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		Upload:        consolecommand.NewUploadCommand(service),
		CreateProduct: consolecommand.NewCreateProductCommand(service),
		UpdateProduct: consolecommand.NewUpdateProductCommand(service),
		DeleteProduct: consolecommand.NewDeleteProductCommand(service),
		PurgeProducts: consolecommand.NewPurgeProductsCommand(service),
		CreateWebhook: consolecommand.NewCreateWebhookCommand(service),
		UpdateWebhook: consolecommand.NewUpdateWebhookCommand(service),
		DeleteWebhook: consolecommand.NewDeleteWebhookCommand(service),
		TestWebhook:   consolecommand.NewTestWebhookCommand(service),
	}
	facade.queries = Queries{
		ListProducts: consolequery.NewListProductsQuery(service),
		ListWebhooks: consolequery.NewListWebhooksQuery(service),
		UploadStatus: consolequery.NewUploadStatusQuery(service),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ CommandQueryService = (core.APIClient)(nil)
