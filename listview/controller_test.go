package listview

import (
	"context"
	"strings"
	"sync"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-console/core"
)

type fakeProductClient struct {
	mu        sync.Mutex
	listFn    func(query core.ListQuery) (core.Page[core.Product], error)
	queries   []core.ListQuery
	created   []core.ProductInput
	createErr error
	updates   map[int64]core.ProductInput
	updateErr error
	deleted   []int64
	purged    int
	purgeErr  error
}

func (c *fakeProductClient) ListProducts(_ context.Context, query core.ListQuery) (core.Page[core.Product], error) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	listFn := c.listFn
	c.mu.Unlock()
	if listFn != nil {
		return listFn(query)
	}
	return core.Page[core.Product]{Items: nil, Page: query.Page, TotalPages: 1, Limit: query.Limit}, nil
}

func (c *fakeProductClient) CreateProduct(_ context.Context, input core.ProductInput) (core.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.createErr != nil {
		return core.Product{}, c.createErr
	}
	c.created = append(c.created, input)
	return core.Product{ID: 1, SKU: input.SKU, Active: true}, nil
}

func (c *fakeProductClient) UpdateProduct(_ context.Context, id int64, input core.ProductInput) (core.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.updateErr != nil {
		return core.Product{}, c.updateErr
	}
	if c.updates == nil {
		c.updates = map[int64]core.ProductInput{}
	}
	c.updates[id] = input
	return core.Product{ID: id, SKU: input.SKU, Active: true}, nil
}

func (c *fakeProductClient) DeleteProduct(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *fakeProductClient) DeleteAllProducts(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.purgeErr != nil {
		return 0, c.purgeErr
	}
	return c.purged, nil
}

func (c *fakeProductClient) listCalls() []core.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.ListQuery(nil), c.queries...)
}

type recordingTableSink[T any] struct {
	mu         sync.Mutex
	rows       [][]T
	messages   []string
	pagination [][2]int
	sessions   []core.ModalSession
	forms      []core.FormData
	hides      int
	alerts     []string
	severities []core.AlertSeverity
}

func (s *recordingTableSink[T]) RenderRows(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, append([]T(nil), items...))
}

func (s *recordingTableSink[T]) RenderMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *recordingTableSink[T]) RenderPagination(page, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination = append(s.pagination, [2]int{page, totalPages})
}

func (s *recordingTableSink[T]) ShowModal(session core.ModalSession, form core.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	s.forms = append(s.forms, form.Clone())
}

func (s *recordingTableSink[T]) HideModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hides++
}

func (s *recordingTableSink[T]) Alert(message string, severity core.AlertSeverity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, message)
	s.severities = append(s.severities, severity)
}

func productPage(products []core.Product, page, totalPages int) core.Page[core.Product] {
	return core.Page[core.Product]{
		Items:      products,
		Total:      len(products),
		Page:       page,
		TotalPages: totalPages,
		Limit:      10,
	}
}

func sampleProduct(id int64, sku string) core.Product {
	name := strings.ToUpper(sku)
	price := 9.5
	return core.Product{ID: id, SKU: sku, Name: &name, Price: &price, Active: true}
}

func newProductController(client *fakeProductClient) (*Controller[core.Product], *recordingTableSink[core.Product], *StaticFilters) {
	sink := &recordingTableSink[core.Product]{}
	filters := NewStaticFilters(nil)
	controller := NewController[core.Product](NewProductBinding(client), sink, filters)
	return controller, sink, filters
}

func TestController_LoadPageRendersRowsAndPagination(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return productPage([]core.Product{sampleProduct(1, "abc"), sampleProduct(2, "def")}, 1, 3), nil
	}}
	controller, sink, _ := newProductController(client)

	if err := controller.LoadPage(context.Background()); err != nil {
		t.Fatalf("load page: %v", err)
	}

	if len(sink.rows) != 1 || len(sink.rows[0]) != 2 {
		t.Fatalf("unexpected rows %v", sink.rows)
	}
	if len(sink.pagination) != 1 || sink.pagination[0] != [2]int{1, 3} {
		t.Fatalf("unexpected pagination %v", sink.pagination)
	}
	if page, totalPages := controller.Page(); page != 1 || totalPages != 3 {
		t.Fatalf("unexpected state %d/%d", page, totalPages)
	}
}

func TestController_LoadPageEmptyRendersPlaceholderRow(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return productPage(nil, 1, 1), nil
	}}
	controller, sink, _ := newProductController(client)

	if err := controller.LoadPage(context.Background()); err != nil {
		t.Fatalf("load page: %v", err)
	}

	if len(sink.rows) != 0 {
		t.Fatalf("no rows expected, got %v", sink.rows)
	}
	if len(sink.messages) != 1 || sink.messages[0] != "No products found." {
		t.Fatalf("unexpected message %v", sink.messages)
	}
	if len(sink.pagination) != 1 || sink.pagination[0] != [2]int{1, 1} {
		t.Fatalf("unexpected pagination %v", sink.pagination)
	}
}

func TestController_LoadPageFailureLeavesPaginationUntouched(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return core.Page[core.Product]{}, core.NewConsoleError("Failed to fetch products", goerrors.CategoryExternal)
	}}
	controller, sink, _ := newProductController(client)

	if err := controller.LoadPage(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}

	if len(sink.messages) != 1 || sink.messages[0] != "Failed to fetch products" {
		t.Fatalf("unexpected message %v", sink.messages)
	}
	if len(sink.pagination) != 0 {
		t.Fatalf("pagination must not render on failure, got %v", sink.pagination)
	}
}

func TestController_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0
	client := &fakeProductClient{}
	client.listFn = func(query core.ListQuery) (core.Page[core.Product], error) {
		client.mu.Lock()
		calls++
		call := calls
		client.mu.Unlock()
		if call == 1 {
			close(started)
			<-release
			return productPage([]core.Product{sampleProduct(1, "stale")}, 1, 1), nil
		}
		return productPage([]core.Product{sampleProduct(2, "fresh")}, 1, 1), nil
	}
	controller, sink, _ := newProductController(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = controller.LoadPage(context.Background())
	}()
	<-started

	if err := controller.LoadPage(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	close(release)
	wg.Wait()

	if len(sink.rows) != 1 {
		t.Fatalf("expected exactly one render, got %d", len(sink.rows))
	}
	if sink.rows[0][0].SKU != "fresh" {
		t.Fatalf("stale response overwrote the fresh render: %v", sink.rows[0])
	}
}

func TestController_ChangePageStopsAtBoundaries(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return productPage([]core.Product{sampleProduct(1, "abc")}, query.Page, 2), nil
	}}
	controller, _, _ := newProductController(client)
	ctx := context.Background()

	if err := controller.LoadPage(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := controller.ChangePage(ctx, core.PageTurnPrev); err != nil {
		t.Fatalf("prev at first page: %v", err)
	}
	if calls := client.listCalls(); len(calls) != 1 {
		t.Fatalf("boundary turn must not fetch, got %d calls", len(calls))
	}

	if err := controller.ChangePage(ctx, core.PageTurnNext); err != nil {
		t.Fatalf("next: %v", err)
	}
	if page, _ := controller.Page(); page != 2 {
		t.Fatalf("expected page 2, got %d", page)
	}

	if err := controller.ChangePage(ctx, core.PageTurnNext); err != nil {
		t.Fatalf("next at last page: %v", err)
	}
	if calls := client.listCalls(); len(calls) != 2 {
		t.Fatalf("expected two fetches, got %d", len(calls))
	}

	if err := controller.ChangePage(ctx, core.PageTurn("sideways")); err == nil {
		t.Fatalf("expected error for unknown turn")
	}
}

func TestController_SubmitFiltersResetsToPageOne(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return productPage([]core.Product{sampleProduct(1, "abc")}, query.Page, 5), nil
	}}
	controller, _, filters := newProductController(client)
	ctx := context.Background()

	if err := controller.LoadPage(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := controller.ChangePage(ctx, core.PageTurnNext); err != nil {
		t.Fatalf("next: %v", err)
	}

	filters.Set("sku", "abc")
	filters.Set("active", "false")
	if err := controller.SubmitFilters(ctx); err != nil {
		t.Fatalf("submit filters: %v", err)
	}

	calls := client.listCalls()
	last := calls[len(calls)-1]
	if last.Page != 1 {
		t.Fatalf("filter submit must restart from page 1, got %d", last.Page)
	}
	if last.SKU != "abc" {
		t.Fatalf("expected sku filter, got %q", last.SKU)
	}
	if last.Active == nil || *last.Active {
		t.Fatalf("expected active=false filter, got %v", last.Active)
	}

	if err := controller.ResetFilters(ctx); err != nil {
		t.Fatalf("reset filters: %v", err)
	}
	calls = client.listCalls()
	last = calls[len(calls)-1]
	if last.Page != 1 || last.SKU != "" || last.Active != nil {
		t.Fatalf("reset must issue a filter-free page-1 query, got %#v", last)
	}
}

func TestController_EditPrefillComesFromCachedEntity(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		description := "A widget"
		product := sampleProduct(7, "abc")
		product.Description = &description
		return productPage([]core.Product{product}, 1, 1), nil
	}}
	controller, sink, _ := newProductController(client)
	ctx := context.Background()

	if err := controller.LoadPage(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := controller.OpenEdit("7"); err != nil {
		t.Fatalf("open edit: %v", err)
	}

	if len(sink.sessions) != 1 || sink.sessions[0].Mode != core.ModalModeEdit || sink.sessions[0].TargetID != "7" {
		t.Fatalf("unexpected session %v", sink.sessions)
	}
	form := sink.forms[0]
	if form.Get("sku") != "abc" || form.Get("name") != "ABC" || form.Get("description") != "A widget" {
		t.Fatalf("unexpected prefill %v", form)
	}
	if form.Get("price") != "9.5" || form.Get("active") != "true" {
		t.Fatalf("unexpected prefill %v", form)
	}
	if _, ok := form["id"]; ok {
		t.Fatalf("prefill must not carry the id field")
	}

	if err := controller.OpenEdit("999"); err == nil {
		t.Fatalf("expected error for unknown row id")
	}
}

func TestController_SubmitFormCreateClosesModalAndReloads(t *testing.T) {
	client := &fakeProductClient{}
	controller, sink, _ := newProductController(client)
	ctx := context.Background()

	if err := controller.OpenCreate(); err != nil {
		t.Fatalf("open create: %v", err)
	}
	form := core.FormData{"sku": "abc", "name": "Widget", "price": "", "active": ""}
	if err := controller.SubmitForm(ctx, form); err != nil {
		t.Fatalf("submit form: %v", err)
	}

	if len(client.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(client.created))
	}
	input := client.created[0]
	if input.SKU != "abc" || input.Name == nil || *input.Name != "Widget" {
		t.Fatalf("unexpected input %#v", input)
	}
	if input.Price != nil {
		t.Fatalf("empty price must decode to nil, got %v", *input.Price)
	}
	if input.Active != nil {
		t.Fatalf("empty active must stay unset, got %v", *input.Active)
	}
	if sink.hides != 1 {
		t.Fatalf("modal must close on success, hides=%d", sink.hides)
	}
	if calls := client.listCalls(); len(calls) != 1 {
		t.Fatalf("expected a reload after submit, got %d fetches", len(calls))
	}
}

func TestController_SubmitFormFailureKeepsModalOpen(t *testing.T) {
	client := &fakeProductClient{createErr: core.NewConsoleError("SKU already exists.", goerrors.CategoryConflict)}
	controller, sink, _ := newProductController(client)
	ctx := context.Background()

	if err := controller.OpenCreate(); err != nil {
		t.Fatalf("open create: %v", err)
	}
	err := controller.SubmitForm(ctx, core.FormData{"sku": "abc"})
	if err == nil {
		t.Fatalf("expected submit error")
	}

	if sink.hides != 0 {
		t.Fatalf("modal must stay open on failure")
	}
	if len(sink.alerts) != 1 || sink.alerts[0] != "SKU already exists." {
		t.Fatalf("unexpected alerts %v", sink.alerts)
	}
	if calls := client.listCalls(); len(calls) != 0 {
		t.Fatalf("no reload may happen on failure, got %d fetches", len(calls))
	}
}

func TestController_SubmitFormEditTargetsModalRow(t *testing.T) {
	client := &fakeProductClient{listFn: func(query core.ListQuery) (core.Page[core.Product], error) {
		return productPage([]core.Product{sampleProduct(7, "abc")}, 1, 1), nil
	}}
	controller, _, _ := newProductController(client)
	ctx := context.Background()

	if err := controller.LoadPage(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := controller.OpenEdit("7"); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if err := controller.SubmitForm(ctx, core.FormData{"sku": "abc", "price": "12.5"}); err != nil {
		t.Fatalf("submit form: %v", err)
	}

	input, ok := client.updates[7]
	if !ok {
		t.Fatalf("expected update for row 7, got %v", client.updates)
	}
	if input.Price == nil || *input.Price != 12.5 {
		t.Fatalf("unexpected price %v", input.Price)
	}
}

func TestController_SubmitFormWithoutOpenModalFails(t *testing.T) {
	client := &fakeProductClient{}
	controller, _, _ := newProductController(client)

	if err := controller.SubmitForm(context.Background(), core.FormData{"sku": "abc"}); err == nil {
		t.Fatalf("expected error without a modal session")
	}
	if len(client.created) != 0 {
		t.Fatalf("no mutation may happen without a session")
	}
}

func TestController_DeleteReloadsPage(t *testing.T) {
	client := &fakeProductClient{}
	controller, _, _ := newProductController(client)

	if err := controller.Delete(context.Background(), "3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != 3 {
		t.Fatalf("unexpected deletes %v", client.deleted)
	}
	if calls := client.listCalls(); len(calls) != 1 {
		t.Fatalf("expected a reload after delete, got %d fetches", len(calls))
	}
}

func TestDecodeProductForm_RequiresSKUAndRejectsBadPrice(t *testing.T) {
	if _, err := decodeProductForm(core.FormData{"name": "Widget"}); err == nil {
		t.Fatalf("expected error for missing sku")
	}
	_, err := decodeProductForm(core.FormData{"sku": "abc", "price": "not-a-number"})
	if err == nil {
		t.Fatalf("expected error for unparsable price")
	}
	if got := core.DisplayMessage(err); got != "Price must be a number." {
		t.Fatalf("unexpected message %q", got)
	}
}
