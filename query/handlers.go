package query

import (
	"context"

	"github.com/goliatone/go-console/core"
)

type ProductReader interface {
	ListProducts(ctx context.Context, query core.ListQuery) (core.Page[core.Product], error)
}

type WebhookReader interface {
	ListWebhooks(ctx context.Context) ([]core.Webhook, error)
}

type UploadStatusReader interface {
	UploadStatus(ctx context.Context, taskID string) (core.UploadTask, error)
}

type ListProductsQuery struct {
	reader ProductReader
}

func NewListProductsQuery(reader ProductReader) *ListProductsQuery {
	return &ListProductsQuery{reader: reader}
}

func (q *ListProductsQuery) Query(ctx context.Context, msg ListProductsMessage) (core.Page[core.Product], error) {
	if q == nil || q.reader == nil {
		return core.Page[core.Product]{}, queryDependencyError("query: product reader is required")
	}
	return q.reader.ListProducts(ctx, msg.Query)
}

type ListWebhooksQuery struct {
	reader WebhookReader
}

func NewListWebhooksQuery(reader WebhookReader) *ListWebhooksQuery {
	return &ListWebhooksQuery{reader: reader}
}

func (q *ListWebhooksQuery) Query(ctx context.Context, _ ListWebhooksMessage) ([]core.Webhook, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: webhook reader is required")
	}
	return q.reader.ListWebhooks(ctx)
}

type UploadStatusQuery struct {
	reader UploadStatusReader
}

func NewUploadStatusQuery(reader UploadStatusReader) *UploadStatusQuery {
	return &UploadStatusQuery{reader: reader}
}

func (q *UploadStatusQuery) Query(ctx context.Context, msg UploadStatusMessage) (core.UploadTask, error) {
	if q == nil || q.reader == nil {
		return core.UploadTask{}, queryDependencyError("query: upload status reader is required")
	}
	return q.reader.UploadStatus(ctx, msg.TaskID)
}
