package cartdto

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/orders"
	"github.com/angelmondragon/menucart/pkg/types"
)

// CartView is the API representation of a cart session.
type CartView struct {
	ID     uuid.UUID      `json:"id"`
	Items  []LineItemView `json:"items"`
	Totals TotalsView     `json:"totals"`
	Amount AmountBounds   `json:"amount"`
}

type LineItemView struct {
	ID          uuid.UUID   `json:"id"`
	ProductID   string      `json:"productId"`
	Name        string      `json:"name"`
	Amount      int         `json:"amount"`
	PriceSingle types.Money `json:"priceSingle"`
	Price       types.Money `json:"price"`
	Params      cart.Params `json:"params"`
}

type TotalsView struct {
	ItemCount   int         `json:"itemCount"`
	Subtotal    types.Money `json:"subtotal"`
	DeliveryFee types.Money `json:"deliveryFee"`
	GrandTotal  types.Money `json:"grandTotal"`
}

type AmountBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ItemAdded answers the add-to-cart event with the new line and the cart.
type ItemAdded struct {
	Item LineItemView `json:"item"`
	Cart CartView     `json:"cart"`
}

// QuantityUpdate reports whether the candidate was accepted. A rejected
// candidate leaves the cart as it was.
type QuantityUpdate struct {
	Accepted bool     `json:"accepted"`
	Cart     CartView `json:"cart"`
}

type OrderResult struct {
	Submitted bool              `json:"submitted"`
	Payload   cart.OrderPayload `json:"payload"`
	Receipt   *orders.Receipt   `json:"receipt,omitempty"`
}

func NewCartView(id uuid.UUID, c *cart.Cart) CartView {
	items := c.Items()
	views := make([]LineItemView, 0, len(items))
	for _, li := range items {
		views = append(views, NewLineItemView(li))
	}
	totals := c.Totals()
	bounds := c.QuantityBounds()
	return CartView{
		ID:    id,
		Items: views,
		Totals: TotalsView{
			ItemCount:   totals.ItemCount,
			Subtotal:    types.NewMoney(totals.Subtotal),
			DeliveryFee: types.NewMoney(totals.DeliveryFee),
			GrandTotal:  types.NewMoney(totals.GrandTotal),
		},
		Amount: AmountBounds{Min: bounds.Min, Max: bounds.Max},
	}
}

func NewLineItemView(li *cart.LineItem) LineItemView {
	return LineItemView{
		ID:          li.ID(),
		ProductID:   li.ProductID(),
		Name:        li.Name(),
		Amount:      li.Amount(),
		PriceSingle: types.NewMoney(li.UnitPrice()),
		Price:       types.NewMoney(li.TotalPrice()),
		Params:      li.Params(),
	}
}
