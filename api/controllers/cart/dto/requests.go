package cartdto

import "encoding/json"

// AddItemRequest is the add-to-cart event. Options names only the categories
// the customer changed; the rest keep their catalog defaults.
type AddItemRequest struct {
	ProductID string              `json:"productId" validate:"required"`
	Options   map[string][]string `json:"options,omitempty"`
	Amount    json.RawMessage     `json:"amount,omitempty"`
}

// UpdateItemRequest carries the raw quantity candidate typed by the customer.
type UpdateItemRequest struct {
	Amount json.RawMessage `json:"amount" validate:"required"`
}

type OrderRequest struct {
	Address string `json:"address" validate:"required,max=512"`
	Phone   string `json:"phone" validate:"required,max=32"`
}
