package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-console/core"
)

var (
	_ gocmd.Querier[ListProductsMessage, core.Page[core.Product]] = (*ListProductsQuery)(nil)
	_ gocmd.Querier[ListWebhooksMessage, []core.Webhook]          = (*ListWebhooksQuery)(nil)
	_ gocmd.Querier[UploadStatusMessage, core.UploadTask]         = (*UploadStatusQuery)(nil)
)
