// Package listview drives a paginated, filterable resource table with a
// create/edit modal. The controller is generic; resource families plug in
// through a Binding.
package listview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-console/core"
)

const defaultPageSize = 10

// Binding adapts one resource family to the controller: wire calls plus
// the form codec for that resource. Controller-level ids are strings;
// the binding owns the conversion to whatever the wire uses.
type Binding[T any] interface {
	// Label names the resource family for logs.
	Label() string
	// EmptyMessage is the single-row text shown for an empty page.
	EmptyMessage() string
	List(ctx context.Context, query core.ListQuery) (core.Page[T], error)
	Create(ctx context.Context, form core.FormData) (T, error)
	Update(ctx context.Context, id string, form core.FormData) (T, error)
	Delete(ctx context.Context, id string) error
	// ID extracts the row identity used for edit/delete actions.
	ID(item T) string
	// Prefill renders an item back into form fields for the edit modal.
	Prefill(item T) core.FormData
}

// Tester is implemented by bindings whose resource supports a
// fire-and-forget test delivery.
type Tester interface {
	Test(ctx context.Context, id string) (string, error)
}

// TableSink receives render calls. RenderMessage replaces the table body
// with a single full-width row; pagination is rendered separately so a
// failed fetch can leave it untouched.
type TableSink[T any] interface {
	RenderRows(items []T)
	RenderMessage(message string)
	RenderPagination(page, totalPages int)
	ShowModal(session core.ModalSession, form core.FormData)
	HideModal()
	Alert(message string, severity core.AlertSeverity)
}

// FilterSource is the live filter surface. Read is called fresh on every
// fetch so edits between fetches always take effect.
type FilterSource interface {
	Read() core.FormData
	Reset()
}

// StaticFilters is a FilterSource over an in-memory form, for surfaces
// without a persistent filter widget (CLI, tests).
type StaticFilters struct {
	mu   sync.Mutex
	form core.FormData
}

func NewStaticFilters(form core.FormData) *StaticFilters {
	return &StaticFilters{form: form.Clone()}
}

func (f *StaticFilters) Read() core.FormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.Clone()
}

func (f *StaticFilters) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = core.FormData{}
}

func (f *StaticFilters) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.form == nil {
		f.form = core.FormData{}
	}
	f.form[key] = value
}

// Controller owns the view state of one resource table: current page,
// total pages, the modal session, and a side table of the last rendered
// entities keyed by id (edit pre-fill reads from here, never from
// rendered output).
type Controller[T any] struct {
	Binding  Binding[T]
	Sink     TableSink[T]
	Filters  FilterSource
	PageSize int
	Logger   core.Logger
	// SessionID mints modal session ids.
	SessionID func() string

	mu         sync.Mutex
	page       int
	totalPages int
	entities   map[string]T
	modal      *core.ModalSession
	seq        uint64
	rendered   uint64
}

func NewController[T any](binding Binding[T], sink TableSink[T], filters FilterSource) *Controller[T] {
	name := "listview"
	if binding != nil {
		name = "listview." + binding.Label()
	}
	_, logger := glog.Resolve(name, nil, nil)
	return &Controller[T]{
		Binding:    binding,
		Sink:       sink,
		Filters:    filters,
		PageSize:   defaultPageSize,
		Logger:     logger,
		SessionID:  uuid.NewString,
		page:       1,
		totalPages: 1,
		entities:   map[string]T{},
	}
}

func (c *Controller[T]) guard() error {
	if c == nil || c.Binding == nil || c.Sink == nil {
		return core.NewConsoleError("listview: controller requires a binding and a sink", goerrors.CategoryInternal)
	}
	return nil
}

// LoadPage reads the filters fresh, fetches the current page, and renders
// rows or the empty-row message. On failure it renders a single message
// row and leaves pagination state untouched. Responses are sequenced so a
// slow fetch never overwrites the render of a later one.
func (c *Controller[T]) LoadPage(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	query := c.buildQueryLocked()
	c.mu.Unlock()

	page, err := c.Binding.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.rendered {
		return nil
	}
	c.rendered = seq

	if err != nil {
		if c.Logger != nil {
			c.Logger.Error("list fetch failed", "resource", c.Binding.Label(), "error", err)
		}
		c.Sink.RenderMessage(core.DisplayMessage(err))
		return err
	}

	if page.Page > 0 {
		c.page = page.Page
	}
	c.totalPages = page.TotalPages
	if c.totalPages < 1 {
		c.totalPages = 1
	}

	c.entities = make(map[string]T, len(page.Items))
	for _, item := range page.Items {
		c.entities[c.Binding.ID(item)] = item
	}

	if len(page.Items) == 0 {
		c.Sink.RenderMessage(c.Binding.EmptyMessage())
	} else {
		c.Sink.RenderRows(page.Items)
	}
	c.Sink.RenderPagination(c.page, c.totalPages)
	return nil
}

// buildQueryLocked merges the live filter values with pagination state.
// An empty active filter stays unset so the server shows all rows.
func (c *Controller[T]) buildQueryLocked() core.ListQuery {
	form := core.FormData{}
	if c.Filters != nil {
		form = c.Filters.Read()
	}
	limit := c.PageSize
	if limit <= 0 {
		limit = defaultPageSize
	}
	return core.ListQuery{
		SKU:         strings.TrimSpace(form.Get("sku")),
		Name:        strings.TrimSpace(form.Get("name")),
		Description: strings.TrimSpace(form.Get("description")),
		Active:      core.ParseOptionalBool(form.Get("active")),
		Page:        c.page,
		Limit:       limit,
	}
}

// SubmitFilters applies the current filter values from page one.
func (c *Controller[T]) SubmitFilters(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.mu.Lock()
	c.page = 1
	c.mu.Unlock()
	return c.LoadPage(ctx)
}

// ResetFilters clears the filter surface and reloads from page one.
func (c *Controller[T]) ResetFilters(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	if c.Filters != nil {
		c.Filters.Reset()
	}
	c.mu.Lock()
	c.page = 1
	c.mu.Unlock()
	return c.LoadPage(ctx)
}

// ChangePage moves one page in either direction. At a boundary the call
// is a no-op: no state change and no fetch.
func (c *Controller[T]) ChangePage(ctx context.Context, turn core.PageTurn) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := turn.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	target := c.page
	switch turn {
	case core.PageTurnPrev:
		target--
	case core.PageTurnNext:
		target++
	}
	if target < 1 || target > c.totalPages {
		c.mu.Unlock()
		return nil
	}
	c.page = target
	c.mu.Unlock()
	return c.LoadPage(ctx)
}

// Page reports the current pagination state.
func (c *Controller[T]) Page() (page, totalPages int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page, c.totalPages
}

// OpenCreate starts a create session with a blank form.
func (c *Controller[T]) OpenCreate() error {
	if err := c.guard(); err != nil {
		return err
	}
	session := core.ModalSession{SessionID: c.sessionID(), Mode: core.ModalModeCreate}
	c.mu.Lock()
	c.modal = &session
	c.mu.Unlock()
	c.Sink.ShowModal(session, core.FormData{})
	return nil
}

// OpenEdit starts an edit session pre-filled from the cached entity. The
// id must belong to a row rendered by the last successful fetch.
func (c *Controller[T]) OpenEdit(id string) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.mu.Lock()
	item, ok := c.entities[id]
	c.mu.Unlock()
	if !ok {
		return core.NewConsoleError(fmt.Sprintf("listview: unknown row id %q", id), goerrors.CategoryNotFound)
	}

	session := core.ModalSession{SessionID: c.sessionID(), Mode: core.ModalModeEdit, TargetID: id}
	c.mu.Lock()
	c.modal = &session
	c.mu.Unlock()
	c.Sink.ShowModal(session, c.Binding.Prefill(item))
	return nil
}

// CloseModal hides the dialog without confirmation and ends the session.
func (c *Controller[T]) CloseModal() {
	if c == nil || c.Sink == nil {
		return
	}
	c.mu.Lock()
	c.modal = nil
	c.mu.Unlock()
	c.Sink.HideModal()
}

// SubmitForm dispatches the modal form by mode. On success the modal
// closes and the current page reloads; on failure the modal stays open
// and the error is surfaced through the sink.
func (c *Controller[T]) SubmitForm(ctx context.Context, form core.FormData) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.mu.Lock()
	modal := c.modal
	c.mu.Unlock()
	if modal == nil {
		return core.NewConsoleError("listview: no open modal session", goerrors.CategoryBadInput)
	}

	var err error
	switch modal.Mode {
	case core.ModalModeEdit:
		_, err = c.Binding.Update(ctx, modal.TargetID, form)
	default:
		_, err = c.Binding.Create(ctx, form)
	}
	if err != nil {
		if c.Logger != nil {
			c.Logger.Error("form submit failed", "resource", c.Binding.Label(), "mode", string(modal.Mode), "error", err)
		}
		c.Sink.Alert(core.DisplayMessage(err), core.AlertError)
		return err
	}

	c.CloseModal()
	return c.LoadPage(ctx)
}

// Delete removes one row and reloads the page.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := c.Binding.Delete(ctx, id); err != nil {
		c.Sink.Alert(core.DisplayMessage(err), core.AlertError)
		return err
	}
	return c.LoadPage(ctx)
}

// TestItem triggers a fire-and-forget test delivery for one row. The
// returned task id is announced but never polled.
func (c *Controller[T]) TestItem(ctx context.Context, id string) error {
	if err := c.guard(); err != nil {
		return err
	}
	tester, ok := any(c.Binding).(Tester)
	if !ok {
		return core.NewConsoleError(
			fmt.Sprintf("listview: %s does not support test deliveries", c.Binding.Label()),
			goerrors.CategoryBadInput)
	}
	taskID, err := tester.Test(ctx, id)
	if err != nil {
		c.Sink.Alert(core.DisplayMessage(err), core.AlertError)
		return err
	}
	c.Sink.Alert("Test triggered. Task ID: "+taskID, core.AlertInfo)
	return nil
}

func (c *Controller[T]) sessionID() string {
	if c.SessionID != nil {
		return c.SessionID()
	}
	return uuid.NewString()
}
