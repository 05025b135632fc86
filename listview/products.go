package listview

import (
	"context"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-console/core"
)

// ProductBinding adapts the product resource family to the controller.
type ProductBinding struct {
	Client core.ProductClient
}

func NewProductBinding(client core.ProductClient) *ProductBinding {
	return &ProductBinding{Client: client}
}

func (b *ProductBinding) Label() string { return "products" }

func (b *ProductBinding) EmptyMessage() string { return "No products found." }

func (b *ProductBinding) List(ctx context.Context, query core.ListQuery) (core.Page[core.Product], error) {
	if b == nil || b.Client == nil {
		return core.Page[core.Product]{}, bindingError("listview: product binding requires a client")
	}
	return b.Client.ListProducts(ctx, query)
}

func (b *ProductBinding) Create(ctx context.Context, form core.FormData) (core.Product, error) {
	if b == nil || b.Client == nil {
		return core.Product{}, bindingError("listview: product binding requires a client")
	}
	input, err := decodeProductForm(form)
	if err != nil {
		return core.Product{}, err
	}
	return b.Client.CreateProduct(ctx, input)
}

func (b *ProductBinding) Update(ctx context.Context, id string, form core.FormData) (core.Product, error) {
	if b == nil || b.Client == nil {
		return core.Product{}, bindingError("listview: product binding requires a client")
	}
	productID, err := parseRowID(id)
	if err != nil {
		return core.Product{}, err
	}
	input, err := decodeProductForm(form)
	if err != nil {
		return core.Product{}, err
	}
	return b.Client.UpdateProduct(ctx, productID, input)
}

func (b *ProductBinding) Delete(ctx context.Context, id string) error {
	if b == nil || b.Client == nil {
		return bindingError("listview: product binding requires a client")
	}
	productID, err := parseRowID(id)
	if err != nil {
		return err
	}
	return b.Client.DeleteProduct(ctx, productID)
}

func (b *ProductBinding) ID(item core.Product) string {
	return strconv.FormatInt(item.ID, 10)
}

// Prefill renders a product into edit-form fields. Nullable fields become
// empty strings; the boolean is normalized to "true"/"false".
func (b *ProductBinding) Prefill(item core.Product) core.FormData {
	return core.FormData{
		"sku":         item.SKU,
		"name":        core.StringOrEmpty(item.Name),
		"description": core.StringOrEmpty(item.Description),
		"price":       core.FormatOptionalPrice(item.Price),
		"active":      core.FormatOptionalBool(item.Active),
	}
}

// decodeProductForm coerces raw form values into the wire payload. The id
// never travels in the body; an empty price becomes an explicit null.
func decodeProductForm(form core.FormData) (core.ProductInput, error) {
	sku := strings.TrimSpace(form.Get("sku"))
	if sku == "" {
		return core.ProductInput{}, core.NewConsoleError("SKU is required.", goerrors.CategoryBadInput)
	}
	price, err := core.ParseOptionalPrice(form.Get("price"))
	if err != nil {
		return core.ProductInput{}, err
	}
	return core.ProductInput{
		SKU:         sku,
		Name:        core.OptionalString(form.Get("name")),
		Description: core.OptionalString(form.Get("description")),
		Price:       price,
		Active:      core.ParseOptionalBool(form.Get("active")),
	}, nil
}

func parseRowID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, core.NewConsoleError("listview: row id must be numeric", goerrors.CategoryBadInput)
	}
	return parsed, nil
}

func bindingError(message string) error {
	return core.NewConsoleError(message, goerrors.CategoryInternal)
}

var _ Binding[core.Product] = (*ProductBinding)(nil)
