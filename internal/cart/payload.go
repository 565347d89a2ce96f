package cart

import (
	"github.com/angelmondragon/menucart/pkg/types"
)

// CustomerInfo is supplied by the order form.
type CustomerInfo struct {
	Address string
	Phone   string
}

// OrderPayload is the document posted to the order endpoint.
type OrderPayload struct {
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	TotalPrice    types.Money    `json:"totalPrice"`
	SubtotalPrice types.Money    `json:"subtotalPrice"`
	TotalNumber   int            `json:"totalNumber"`
	DeliveryFee   types.Money    `json:"deliveryFee"`
	Products      []OrderProduct `json:"products"`
}

type OrderProduct struct {
	ID          string      `json:"id"`
	Amount      int         `json:"amount"`
	Price       types.Money `json:"price"`
	PriceSingle types.Money `json:"priceSingle"`
	Name        string      `json:"name"`
	Params      Params      `json:"params"`
}

// BuildOrderPayload projects the current cart state; it does not mutate the cart.
func (c *Cart) BuildOrderPayload(info CustomerInfo) OrderPayload {
	totals := c.totals
	payload := OrderPayload{
		Address:       info.Address,
		Phone:         info.Phone,
		TotalPrice:    types.NewMoney(totals.GrandTotal),
		SubtotalPrice: types.NewMoney(totals.Subtotal),
		TotalNumber:   totals.ItemCount,
		DeliveryFee:   types.NewMoney(totals.DeliveryFee),
		Products:      make([]OrderProduct, 0, len(c.items)),
	}
	for _, li := range c.items {
		payload.Products = append(payload.Products, OrderProduct{
			ID:          li.productID,
			Amount:      li.Amount(),
			Price:       types.NewMoney(li.totalPrice),
			PriceSingle: types.NewMoney(li.unitPrice),
			Name:        li.name,
			Params:      li.Params(),
		})
	}
	return payload
}
