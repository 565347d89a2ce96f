package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/menucart/internal/quantity"
)

// Param is the summary of one option category: its label and the chosen
// options keyed by option id.
type Param struct {
	Label   string            `json:"label"`
	Options map[string]string `json:"options"`
}

// Params keys Param by category id. Categories with nothing chosen keep an
// empty Options map.
type Params map[string]Param

func (p Params) Clone() Params {
	out := make(Params, len(p))
	for id, param := range p {
		opts := make(map[string]string, len(param.Options))
		for k, v := range param.Options {
			opts[k] = v
		}
		out[id] = Param{Label: param.Label, Options: opts}
	}
	return out
}

// Summary is the add-time snapshot of a configured product.
type Summary struct {
	ProductID  string
	Name       string
	UnitPrice  decimal.Decimal
	Amount     int
	TotalPrice decimal.Decimal
	Params     Params
}

// LineItem is one configured product resident in a cart. Its options and unit
// price are locked at add time; only its amount stays editable.
type LineItem struct {
	id         uuid.UUID
	productID  string
	name       string
	unitPrice  decimal.Decimal
	totalPrice decimal.Decimal
	params     Params
	quantity   *quantity.Control

	onChange func()
	onRemove func(uuid.UUID) error
}

func newLineItem(s Summary, qty *quantity.Control) *LineItem {
	li := &LineItem{
		id:        uuid.New(),
		productID: s.ProductID,
		name:      s.Name,
		unitPrice: s.UnitPrice,
		params:    s.Params.Clone(),
		quantity:  qty,
	}
	li.recompute()
	qty.OnUpdated(func(int) {
		li.recompute()
		if li.onChange != nil {
			li.onChange()
		}
	})
	return li
}

func (li *LineItem) recompute() {
	li.totalPrice = li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity.Value())))
}

func (li *LineItem) ID() uuid.UUID              { return li.id }
func (li *LineItem) ProductID() string          { return li.productID }
func (li *LineItem) Name() string               { return li.name }
func (li *LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }
func (li *LineItem) Amount() int                { return li.quantity.Value() }

func (li *LineItem) TotalPrice() decimal.Decimal { return li.totalPrice }

func (li *LineItem) Params() Params {
	return li.params.Clone()
}

// Quantity exposes the item's own stepper; accepted changes re-price the item
// and the owning cart.
func (li *LineItem) Quantity() *quantity.Control {
	return li.quantity
}

// Remove asks the owning cart to drop this item.
func (li *LineItem) Remove() error {
	if li.onRemove == nil {
		return errDetached(li.id)
	}
	return li.onRemove(li.id)
}

func (li *LineItem) Summary() Summary {
	return Summary{
		ProductID:  li.productID,
		Name:       li.name,
		UnitPrice:  li.unitPrice,
		Amount:     li.Amount(),
		TotalPrice: li.totalPrice,
		Params:     li.params.Clone(),
	}
}

func (li *LineItem) detach() {
	li.onChange = nil
	li.onRemove = nil
}
