package core

import (
	"context"
	"io"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// UploadClient submits files and reads background-task progress.
type UploadClient interface {
	Upload(ctx context.Context, filename string, file io.Reader) (UploadTask, error)
	UploadStatus(ctx context.Context, taskID string) (UploadTask, error)
}

// ProductClient covers the product resource family. DeleteProduct is
// fire-and-forget: success carries no body. DeleteAllProducts returns the
// number of rows the server removed.
type ProductClient interface {
	ListProducts(ctx context.Context, query ListQuery) (Page[Product], error)
	CreateProduct(ctx context.Context, input ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	DeleteAllProducts(ctx context.Context) (int, error)
}

// WebhookClient covers the webhook resource family. TestWebhook returns
// the id of the fire-and-forget delivery task the server created.
type WebhookClient interface {
	ListWebhooks(ctx context.Context) ([]Webhook, error)
	CreateWebhook(ctx context.Context, input WebhookInput) (Webhook, error)
	UpdateWebhook(ctx context.Context, id int64, input WebhookInput) (Webhook, error)
	DeleteWebhook(ctx context.Context, id int64) error
	TestWebhook(ctx context.Context, id int64) (string, error)
}

// APIClient is the full transport surface the console drives.
type APIClient interface {
	UploadClient
	ProductClient
	WebhookClient
}

// ProgressSink receives upload-tracker render calls. Implementations own
// the actual presentation; the tracker only decides what is shown when.
type ProgressSink interface {
	// TaskAccepted reveals the status panel for a freshly created task and
	// clears any previous submit error.
	TaskAccepted(taskID string)
	// Progress renders a successfully fetched status payload.
	Progress(task UploadTask)
	// ProgressMessage replaces the message field only; the panel and its
	// numeric fields stay as last rendered.
	ProgressMessage(message string)
	// SubmitFailed renders the inline upload error. No task was created.
	SubmitFailed(message string)
}

// AlertSink renders one-off operator notices (bulk delete results,
// confirmation warnings, test-webhook acknowledgments).
type AlertSink interface {
	Alert(message string, severity AlertSeverity)
}

// FormData is a flat form record as read from an input surface, prior to
// any coercion. Values are raw strings; absence and empty string are
// equivalent.
type FormData map[string]string

func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for key, value := range f {
		out[key] = value
	}
	return out
}

func (f FormData) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}
