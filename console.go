// Package console wires the transport client, the upload tracker, and the
// resource list controllers into one entry point for library consumers
// and the CLI.
package console

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-console/core"
	"github.com/goliatone/go-console/listview"
	"github.com/goliatone/go-console/progress"
	"github.com/goliatone/go-console/transport"
)

// Console composes one API client with constructors for every view
// surface. Controllers and trackers built from the same Console share the
// client but hold independent view state.
type Console struct {
	config core.Config
	client *transport.Client
	facade *Facade
	logger core.Logger
}

type Option func(*consoleOptions)

type consoleOptions struct {
	logger    core.Logger
	http      transport.HTTPDoer
	headers   map[string]string
	requestID func() string
}

func WithLogger(logger core.Logger) Option {
	return func(options *consoleOptions) {
		options.logger = logger
	}
}

// WithHTTPClient swaps the underlying HTTP doer; the configured request
// timeout is ignored in that case.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return func(options *consoleOptions) {
		options.http = client
	}
}

// WithHeaders adds default headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(options *consoleOptions) {
		options.headers = headers
	}
}

// WithRequestID overrides the correlation id generator.
func WithRequestID(generator func() string) Option {
	return func(options *consoleOptions) {
		options.requestID = generator
	}
}

func New(cfg core.Config, opts ...Option) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, core.WrapConsoleError(err, goerrors.CategoryBadInput, "console: invalid configuration")
	}

	options := consoleOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}

	doer := options.http
	if doer == nil {
		doer = &http.Client{Timeout: cfg.RequestTimeout}
	}
	client := transport.New(cfg.BaseURL, doer)
	for key, value := range options.headers {
		client.DefaultHeaders[key] = value
	}
	if options.requestID != nil {
		client.RequestID = options.requestID
	}

	facade, err := NewFacade(client)
	if err != nil {
		return nil, err
	}

	_, logger := glog.Resolve("console", nil, options.logger)
	return &Console{
		config: cfg,
		client: client,
		facade: facade,
		logger: logger,
	}, nil
}

func (c *Console) Config() core.Config {
	if c == nil {
		return core.Config{}
	}
	return c.config
}

// Client exposes the raw transport surface.
func (c *Console) Client() core.APIClient {
	if c == nil {
		return nil
	}
	return c.client
}

func (c *Console) Facade() *Facade {
	if c == nil {
		return nil
	}
	return c.facade
}

// Uploads builds an upload tracker polling at the configured interval.
func (c *Console) Uploads(sink core.ProgressSink) *progress.Tracker {
	if c == nil {
		return nil
	}
	tracker := progress.NewTracker(c.client, sink)
	tracker.Interval = c.config.PollInterval
	tracker.Logger = c.logger
	return tracker
}

// Products builds the paginated product table controller.
func (c *Console) Products(sink listview.TableSink[core.Product], filters listview.FilterSource) *listview.Controller[core.Product] {
	if c == nil {
		return nil
	}
	controller := listview.NewController[core.Product](listview.NewProductBinding(c.client), sink, filters)
	controller.PageSize = c.config.PageSize
	return controller
}

// Webhooks builds the webhook table controller. The collection is
// unpaginated, so the page size has no effect.
func (c *Console) Webhooks(sink listview.TableSink[core.Webhook], filters listview.FilterSource) *listview.Controller[core.Webhook] {
	if c == nil {
		return nil
	}
	return listview.NewController[core.Webhook](listview.NewWebhookBinding(c.client), sink, filters)
}

// Purger builds the confirmation-gated bulk product delete.
func (c *Console) Purger(sink core.AlertSink) *listview.Purge {
	if c == nil {
		return nil
	}
	purge := listview.NewPurge(c.client, sink)
	purge.Logger = c.logger
	return purge
}
