// Package configurator backs a product card: it holds the customer's option
// choices and amount for one product and keeps its price current.
package configurator

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/pricing"
	"github.com/angelmondragon/menucart/internal/quantity"
)

// BuildLineItem prices product as configured by selected and qty and returns
// a snapshot that does not alias any of its inputs.
func BuildLineItem(product *catalog.Product, selected catalog.Selection, qty *quantity.Control) cart.Summary {
	unit := pricing.ResolveUnitPrice(product, selected)
	amount := qty.Value()
	return cart.Summary{
		ProductID:  product.ID,
		Name:       product.Name,
		UnitPrice:  unit,
		Amount:     amount,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(amount))),
		Params:     summarizeParams(product, selected),
	}
}

func summarizeParams(product *catalog.Product, selected catalog.Selection) cart.Params {
	params := make(cart.Params, len(product.Categories))
	for _, cat := range product.Categories {
		chosen := map[string]string{}
		for _, opt := range cat.Options {
			if selected.Contains(cat.ID, opt.ID) {
				chosen[opt.ID] = opt.Label
			}
		}
		params[cat.ID] = cart.Param{Label: cat.Label, Options: chosen}
	}
	return params
}

type Configurator struct {
	product   *catalog.Product
	selection catalog.Selection
	quantity  *quantity.Control

	unitPrice decimal.Decimal
	price     decimal.Decimal
}

// New starts a configurator on the catalog defaults with a fresh quantity control.
func New(product *catalog.Product, bounds quantity.Bounds) (*Configurator, error) {
	qty, err := quantity.New(bounds)
	if err != nil {
		return nil, err
	}
	c := &Configurator{
		product:   product,
		selection: catalog.DefaultSelection(product),
		quantity:  qty,
	}
	qty.OnUpdated(func(int) { c.reprice() })
	c.reprice()
	return c, nil
}

// Select replaces the current choices after checking them against the product.
func (c *Configurator) Select(selection catalog.Selection) error {
	if err := catalog.ValidateSelection(c.product, selection); err != nil {
		return err
	}
	c.selection = selection.Clone()
	c.reprice()
	return nil
}

// SetAmount forwards raw input to the quantity control.
func (c *Configurator) SetAmount(raw string) bool {
	return c.quantity.SetRaw(raw)
}

func (c *Configurator) Quantity() *quantity.Control {
	return c.quantity
}

func (c *Configurator) Product() *catalog.Product {
	return c.product
}

func (c *Configurator) Selection() catalog.Selection {
	return c.selection.Clone()
}

func (c *Configurator) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Price is the unit price times the current amount.
func (c *Configurator) Price() decimal.Decimal {
	return c.price
}

func (c *Configurator) Markers() []pricing.OptionRef {
	return pricing.VisibleOptionMarkers(c.product, c.selection)
}

func (c *Configurator) LineItem() cart.Summary {
	return BuildLineItem(c.product, c.selection, c.quantity)
}

func (c *Configurator) reprice() {
	c.unitPrice = pricing.ResolveUnitPrice(c.product, c.selection)
	c.price = c.unitPrice.Mul(decimal.NewFromInt(int64(c.quantity.Value())))
}

// Merge replaces the choices of the categories named in partial and keeps the
// rest. The merged selection is validated as a whole.
func (c *Configurator) Merge(partial catalog.Selection) error {
	merged := c.selection.Clone()
	for catID, ids := range partial {
		merged[catID] = append([]string(nil), ids...)
	}
	return c.Select(merged)
}
