package catalog

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

// SelectionType tells the UI whether a category takes one choice or many.
type SelectionType string

const (
	SelectionSingle SelectionType = "single"
	SelectionMulti  SelectionType = "multi"
)

// Option is one choice inside a category. Default options are already
// folded into the product's base price.
type Option struct {
	ID      string
	Label   string
	Price   decimal.Decimal
	Default bool
}

type Category struct {
	ID      string
	Label   string
	Type    SelectionType
	Options []Option
}

// Option looks up an option by id.
func (c Category) Option(id string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Product is an immutable menu entry. BasePrice is the price with every
// default option applied.
type Product struct {
	ID         string
	Name       string
	BasePrice  decimal.Decimal
	Categories []Category
}

// Category looks up a category by id.
func (p *Product) Category(id string) (Category, bool) {
	for _, cat := range p.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Catalog is the read-only set of products offered by the menu.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New builds a catalog from already-mapped products, enforcing unique ids.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, pkgerrors.Newf(pkgerrors.CodeConfig, "duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	for i := range c.products {
		out[i] = &c.products[i]
	}
	return out
}

func (c *Catalog) Product(id string) (*Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %q not found", id).
			WithDetails(map[string]any{"product_id": id})
	}
	return &c.products[idx], nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}
