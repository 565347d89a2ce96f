package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/menucart/internal/quantity"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

// Options configures a cart: the flat delivery fee charged on non-empty carts
// and the bounds given to every line item's quantity control.
type Options struct {
	DeliveryFee decimal.Decimal
	Quantity    quantity.Bounds
}

// Totals are derived from the line items and never edited directly.
type Totals struct {
	ItemCount   int
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	GrandTotal  decimal.Decimal
}

// Cart aggregates line items. It has a single writer; callers serialise access.
type Cart struct {
	opts      Options
	items     []*LineItem
	totals    Totals
	listeners []func(Totals)
}

func New(opts Options) (*Cart, error) {
	if opts.DeliveryFee.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeConfig, "delivery fee must not be negative")
	}
	if err := opts.Quantity.Validate(); err != nil {
		return nil, err
	}
	c := &Cart{opts: opts}
	c.ComputeTotals()
	return c, nil
}

// OnTotalsChanged registers fn to run after every mutation settles.
func (c *Cart) OnTotalsChanged(fn func(Totals)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// AddItem appends a copy of s and never rejects it. The item gets its own
// quantity control starting at s.Amount clamped into the cart's bounds, and its
// total is derived from that clamped amount.
func (c *Cart) AddItem(s Summary) *LineItem {
	bounds := c.opts.Quantity
	bounds.Default = bounds.Clamp(s.Amount)

	li := newLineItem(s, quantity.MustNew(bounds))
	li.onChange = c.refresh
	li.onRemove = c.RemoveItem

	c.items = append(c.items, li)
	c.refresh()
	return li
}

func (c *Cart) RemoveItem(id uuid.UUID) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return errNotFound(id)
	}
	li := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	li.detach()
	c.refresh()
	return nil
}

// UpdateItemQuantity hands raw to the item's quantity control. Rejected input
// leaves the item and the totals untouched and reports false.
func (c *Cart) UpdateItemQuantity(id uuid.UUID, raw string) (bool, error) {
	li, err := c.Item(id)
	if err != nil {
		return false, err
	}
	return li.quantity.SetRaw(raw), nil
}

func (c *Cart) Item(id uuid.UUID) (*LineItem, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, errNotFound(id)
	}
	return c.items[idx], nil
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.totals.ItemCount == 0
}

func (c *Cart) Totals() Totals {
	return c.totals
}

func (c *Cart) DeliveryFeeBase() decimal.Decimal {
	return c.opts.DeliveryFee
}

func (c *Cart) QuantityBounds() quantity.Bounds {
	return c.opts.Quantity
}

// ComputeTotals rebuilds the derived totals from the current line items.
func (c *Cart) ComputeTotals() Totals {
	t := Totals{
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		GrandTotal:  decimal.Zero,
	}
	for _, li := range c.items {
		t.ItemCount += li.Amount()
		t.Subtotal = t.Subtotal.Add(li.TotalPrice())
	}
	if t.ItemCount > 0 {
		t.DeliveryFee = c.opts.DeliveryFee
		t.GrandTotal = t.Subtotal.Add(t.DeliveryFee)
	}
	c.totals = t
	return t
}

func (c *Cart) refresh() {
	totals := c.ComputeTotals()
	for _, fn := range c.listeners {
		fn(totals)
	}
}

func (c *Cart) indexOf(id uuid.UUID) int {
	for i, li := range c.items {
		if li.id == id {
			return i
		}
	}
	return -1
}

func errNotFound(id uuid.UUID) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "line item %s not found", id).
		WithDetails(map[string]any{"line_item_id": id.String()})
}

func errDetached(id uuid.UUID) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "line item %s is not in a cart", id).
		WithDetails(map[string]any{"line_item_id": id.String()})
}
