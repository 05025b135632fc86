package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-console/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

// Operation fallback messages, shown when the server response carries no
// detail field.
const (
	fallbackUpload        = "Upload failed"
	fallbackUploadStatus  = "Unable to fetch status"
	fallbackListProducts  = "Failed to fetch products"
	fallbackCreateProduct = "Failed to create product"
	fallbackUpdateProduct = "Failed to update product"
	fallbackDeleteProduct = "Failed to delete product"
	fallbackPurgeProducts = "Delete failed"
	fallbackListWebhooks  = "Failed to fetch webhooks"
	fallbackCreateWebhook = "Failed to create webhook"
	fallbackUpdateWebhook = "Failed to update webhook"
	fallbackDeleteWebhook = "Failed to delete webhook"
	fallbackTestWebhook   = "Failed to trigger test webhook"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the typed REST surface over the console API. Exactly one
// network call per operation; no retries, no client-side timeout beyond
// whatever the injected HTTPDoer enforces.
type Client struct {
	BaseURL              string
	HTTP                 HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
	// RequestID mints the X-Request-ID correlation value per request.
	RequestID func() string
}

func New(baseURL string, client HTTPDoer) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &Client{
		BaseURL:              strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:                 client,
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
		RequestID:            uuid.NewString,
	}
}

func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (core.UploadTask, error) {
	const operation = "upload"
	filename = strings.TrimSpace(filename)
	if filename == "" || file == nil {
		return core.UploadTask{}, transportError(operation, "No file selected.", goerrors.CategoryBadInput)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return core.UploadTask{}, transportError(operation, "Only CSV files are accepted.", goerrors.CategoryBadInput)
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile("file", filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	var payload struct {
		TaskID string `json:"task_id"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/upload",
		body:        pr,
		contentType: form.FormDataContentType(),
		operation:   operation,
		fallback:    fallbackUpload,
	}, &payload)
	if err != nil {
		return core.UploadTask{}, err
	}
	return core.UploadTask{TaskID: payload.TaskID, Status: core.TaskStatusQueued}, nil
}

func (c *Client) UploadStatus(ctx context.Context, taskID string) (core.UploadTask, error) {
	const operation = "upload_status"
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return core.UploadTask{}, transportError(operation, "transport: task id is required", goerrors.CategoryBadInput)
	}
	var task core.UploadTask
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/upload/status/" + url.PathEscape(taskID),
		operation: operation,
		fallback:  fallbackUploadStatus,
	}, &task)
	if err != nil {
		return core.UploadTask{}, err
	}
	task.TaskID = taskID
	return task, nil
}

func (c *Client) ListProducts(ctx context.Context, query core.ListQuery) (core.Page[core.Product], error) {
	var page core.Page[core.Product]
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/products",
		query:     query.Values(),
		operation: "list_products",
		fallback:  fallbackListProducts,
	}, &page)
	if err != nil {
		return core.Page[core.Product]{}, err
	}
	return page, nil
}

func (c *Client) CreateProduct(ctx context.Context, input core.ProductInput) (core.Product, error) {
	const operation = "create_product"
	body, contentType, err := jsonBody(operation, input)
	if err != nil {
		return core.Product{}, err
	}
	var product core.Product
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/products",
		body:        body,
		contentType: contentType,
		operation:   operation,
		fallback:    fallbackCreateProduct,
	}, &product)
	if err != nil {
		return core.Product{}, err
	}
	return product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input core.ProductInput) (core.Product, error) {
	const operation = "update_product"
	body, contentType, err := jsonBody(operation, input)
	if err != nil {
		return core.Product{}, err
	}
	var product core.Product
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/products/" + strconv.FormatInt(id, 10),
		body:        body,
		contentType: contentType,
		operation:   operation,
		fallback:    fallbackUpdateProduct,
	}, &product)
	if err != nil {
		return core.Product{}, err
	}
	return product, nil
}

// DeleteProduct is fire-and-forget: a success response carries no body.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/products/" + strconv.FormatInt(id, 10),
		operation: "delete_product",
		fallback:  fallbackDeleteProduct,
	}, nil)
}

func (c *Client) DeleteAllProducts(ctx context.Context) (int, error) {
	var payload struct {
		Deleted int `json:"deleted"`
	}
	err := c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/products",
		query:     map[string]string{"confirm": "true"},
		operation: "delete_all_products",
		fallback:  fallbackPurgeProducts,
	}, &payload)
	if err != nil {
		return 0, err
	}
	return payload.Deleted, nil
}

func (c *Client) ListWebhooks(ctx context.Context) ([]core.Webhook, error) {
	var webhooks []core.Webhook
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/webhooks",
		operation: "list_webhooks",
		fallback:  fallbackListWebhooks,
	}, &webhooks)
	if err != nil {
		return nil, err
	}
	return webhooks, nil
}

func (c *Client) CreateWebhook(ctx context.Context, input core.WebhookInput) (core.Webhook, error) {
	const operation = "create_webhook"
	body, contentType, err := jsonBody(operation, input)
	if err != nil {
		return core.Webhook{}, err
	}
	var webhook core.Webhook
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/webhooks",
		body:        body,
		contentType: contentType,
		operation:   operation,
		fallback:    fallbackCreateWebhook,
	}, &webhook)
	if err != nil {
		return core.Webhook{}, err
	}
	return webhook, nil
}

func (c *Client) UpdateWebhook(ctx context.Context, id int64, input core.WebhookInput) (core.Webhook, error) {
	const operation = "update_webhook"
	body, contentType, err := jsonBody(operation, input)
	if err != nil {
		return core.Webhook{}, err
	}
	var webhook core.Webhook
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/webhooks/" + strconv.FormatInt(id, 10),
		body:        body,
		contentType: contentType,
		operation:   operation,
		fallback:    fallbackUpdateWebhook,
	}, &webhook)
	if err != nil {
		return core.Webhook{}, err
	}
	return webhook, nil
}

func (c *Client) DeleteWebhook(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/webhooks/" + strconv.FormatInt(id, 10),
		operation: "delete_webhook",
		fallback:  fallbackDeleteWebhook,
	}, nil)
}

func (c *Client) TestWebhook(ctx context.Context, id int64) (string, error) {
	var payload struct {
		TaskID string `json:"task_id"`
	}
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/webhooks/test/" + strconv.FormatInt(id, 10),
		operation: "test_webhook",
		fallback:  fallbackTestWebhook,
	}, &payload)
	if err != nil {
		return "", err
	}
	return payload.TaskID, nil
}

type request struct {
	method      string
	path        string
	query       map[string]string
	body        io.Reader
	contentType string
	operation   string
	fallback    string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	if c == nil || c.HTTP == nil {
		return transportError(req.operation, "transport: client requires an http doer", goerrors.CategoryInternal)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	parsedURL, err := url.Parse(c.BaseURL + req.path)
	if err != nil {
		return transportError(req.operation, fmt.Sprintf("transport: invalid request url %q", c.BaseURL+req.path), goerrors.CategoryBadInput)
	}
	if len(req.query) > 0 {
		values := parsedURL.Query()
		for key, value := range req.query {
			values.Set(key, value)
		}
		parsedURL.RawQuery = values.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, parsedURL.String(), req.body)
	if err != nil {
		return transportWrapError(req.operation, err, req.fallback)
	}
	for key, value := range c.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(key, value)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.RequestID != nil {
		if id := strings.TrimSpace(c.RequestID()); id != "" {
			httpReq.Header.Set("X-Request-ID", id)
		}
	}

	httpRes, err := c.HTTP.Do(httpReq)
	if err != nil {
		return transportWrapError(req.operation, err, req.fallback)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := c.MaxResponseBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultResponseBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return transportWrapError(req.operation, err, req.fallback)
	}
	if int64(len(body)) > maxBodyBytes {
		return transportError(req.operation,
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal)
	}

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		return responseError(req.operation, req.fallback, httpRes.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return transportWrapError(req.operation, err, "Unexpected response from server.")
	}
	return nil
}

func jsonBody(operation string, payload any) (io.Reader, string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", transportError(operation, "transport: encode request payload", goerrors.CategoryInternal)
	}
	return bytes.NewReader(encoded), "application/json", nil
}

var _ core.APIClient = (*Client)(nil)
