package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/goliatone/go-console/core"
)

type stubReaders struct {
	listProductsFn func(ctx context.Context, query core.ListQuery) (core.Page[core.Product], error)
	listWebhooksFn func(ctx context.Context) ([]core.Webhook, error)
	uploadStatusFn func(ctx context.Context, taskID string) (core.UploadTask, error)
}

func (s stubReaders) ListProducts(ctx context.Context, query core.ListQuery) (core.Page[core.Product], error) {
	if s.listProductsFn == nil {
		return core.Page[core.Product]{}, fmt.Errorf("unexpected ListProducts call")
	}
	return s.listProductsFn(ctx, query)
}

func (s stubReaders) ListWebhooks(ctx context.Context) ([]core.Webhook, error) {
	if s.listWebhooksFn == nil {
		return nil, fmt.Errorf("unexpected ListWebhooks call")
	}
	return s.listWebhooksFn(ctx)
}

func (s stubReaders) UploadStatus(ctx context.Context, taskID string) (core.UploadTask, error) {
	if s.uploadStatusFn == nil {
		return core.UploadTask{}, fmt.Errorf("unexpected UploadStatus call")
	}
	return s.uploadStatusFn(ctx, taskID)
}

func TestListProductsQuery_DelegatesToReader(t *testing.T) {
	reader := stubReaders{
		listProductsFn: func(_ context.Context, query core.ListQuery) (core.Page[core.Product], error) {
			if query.SKU != "abc" || query.Page != 2 {
				t.Fatalf("unexpected query %#v", query)
			}
			return core.Page[core.Product]{Page: 2, TotalPages: 3}, nil
		},
	}
	q := NewListProductsQuery(reader)

	page, err := q.Query(context.Background(), ListProductsMessage{Query: core.ListQuery{SKU: "abc", Page: 2, Limit: 10}})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Page != 2 || page.TotalPages != 3 {
		t.Fatalf("unexpected page %#v", page)
	}
}

func TestListProductsQuery_NilReaderFails(t *testing.T) {
	q := NewListProductsQuery(nil)
	if _, err := q.Query(context.Background(), ListProductsMessage{}); err == nil {
		t.Fatalf("expected dependency error")
	}
}

func TestUploadStatusQuery_DelegatesToReader(t *testing.T) {
	reader := stubReaders{
		uploadStatusFn: func(_ context.Context, taskID string) (core.UploadTask, error) {
			if taskID != "t-9" {
				t.Fatalf("unexpected task id %q", taskID)
			}
			return core.UploadTask{TaskID: taskID, Status: core.TaskStatusCompleted, Percent: 100}, nil
		},
	}
	q := NewUploadStatusQuery(reader)

	task, err := q.Query(context.Background(), UploadStatusMessage{TaskID: "t-9"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if task.Status != core.TaskStatusCompleted {
		t.Fatalf("unexpected task %#v", task)
	}
}

func TestListWebhooksQuery_DelegatesToReader(t *testing.T) {
	reader := stubReaders{
		listWebhooksFn: func(_ context.Context) ([]core.Webhook, error) {
			return []core.Webhook{{ID: 1, URL: "https://example.com/hook", EventType: "product.created"}}, nil
		},
	}
	q := NewListWebhooksQuery(reader)

	webhooks, err := q.Query(context.Background(), ListWebhooksMessage{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(webhooks) != 1 || webhooks[0].ID != 1 {
		t.Fatalf("unexpected webhooks %#v", webhooks)
	}
}

func TestQueryMessages_Validate(t *testing.T) {
	cases := []struct {
		name    string
		msg     interface{ Validate() error }
		wantErr bool
	}{
		{"list products ok", ListProductsMessage{Query: core.ListQuery{Page: 1, Limit: 10}}, false},
		{"list products negative page", ListProductsMessage{Query: core.ListQuery{Page: -1}}, true},
		{"list products oversized limit", ListProductsMessage{Query: core.ListQuery{Limit: 1000}}, true},
		{"list webhooks ok", ListWebhooksMessage{}, false},
		{"upload status ok", UploadStatusMessage{TaskID: "t-1"}, false},
		{"upload status missing id", UploadStatusMessage{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
