package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[UploadMessage]        = (*UploadCommand)(nil)
	_ gocmd.Commander[CreateProductMessage] = (*CreateProductCommand)(nil)
	_ gocmd.Commander[UpdateProductMessage] = (*UpdateProductCommand)(nil)
	_ gocmd.Commander[DeleteProductMessage] = (*DeleteProductCommand)(nil)
	_ gocmd.Commander[PurgeProductsMessage] = (*PurgeProductsCommand)(nil)
	_ gocmd.Commander[CreateWebhookMessage] = (*CreateWebhookCommand)(nil)
	_ gocmd.Commander[UpdateWebhookMessage] = (*UpdateWebhookCommand)(nil)
	_ gocmd.Commander[DeleteWebhookMessage] = (*DeleteWebhookCommand)(nil)
	_ gocmd.Commander[TestWebhookMessage]   = (*TestWebhookCommand)(nil)
)
