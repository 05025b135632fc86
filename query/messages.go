package query

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-console/core"
)

const (
	TypeListProducts = "console.query.product.list"
	TypeListWebhooks = "console.query.webhook.list"
	TypeUploadStatus = "console.query.upload.status"
)

const maxPageLimit = 100

type ListProductsMessage struct {
	Query core.ListQuery
}

func (ListProductsMessage) Type() string { return TypeListProducts }

func (m ListProductsMessage) Validate() error {
	if m.Query.Page < 0 {
		return fmt.Errorf("query: page must be >= 0")
	}
	if m.Query.Limit < 0 {
		return fmt.Errorf("query: limit must be >= 0")
	}
	if m.Query.Limit > maxPageLimit {
		return fmt.Errorf("query: limit must be <= %d", maxPageLimit)
	}
	return nil
}

type ListWebhooksMessage struct{}

func (ListWebhooksMessage) Type() string { return TypeListWebhooks }

func (ListWebhooksMessage) Validate() error { return nil }

type UploadStatusMessage struct {
	TaskID string
}

func (UploadStatusMessage) Type() string { return TypeUploadStatus }

func (m UploadStatusMessage) Validate() error {
	if strings.TrimSpace(m.TaskID) == "" {
		return fmt.Errorf("query: task id is required")
	}
	return nil
}
