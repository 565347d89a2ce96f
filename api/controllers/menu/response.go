package menu

import (
	"github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/configurator"
	"github.com/angelmondragon/menucart/internal/pricing"
	"github.com/angelmondragon/menucart/internal/quantity"
	"github.com/angelmondragon/menucart/pkg/types"
)

type MenuView struct {
	Products []ProductView `json:"products"`
	Amount   AmountView    `json:"amount"`
}

type AmountView struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type ProductView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Price      types.Money    `json:"price"`
	Categories []CategoryView `json:"params"`
}

type CategoryView struct {
	ID      string                `json:"id"`
	Label   string                `json:"label"`
	Type    catalog.SelectionType `json:"type"`
	Options []OptionView          `json:"options"`
}

type OptionView struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Price   types.Money `json:"price"`
	Default bool        `json:"default"`
}

// QuoteView is the state of a configured product card.
type QuoteView struct {
	ProductID string              `json:"productId"`
	Name      string              `json:"name"`
	Amount    int                 `json:"amount"`
	UnitPrice types.Money         `json:"priceSingle"`
	Price     types.Money         `json:"price"`
	Selection catalog.Selection   `json:"options"`
	Markers   []pricing.OptionRef `json:"markers"`
	Params    cart.Params         `json:"params"`
}

func newMenuView(products []*catalog.Product, bounds quantity.Bounds) MenuView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return MenuView{
		Products: views,
		Amount:   AmountView{Min: bounds.Min, Max: bounds.Max, Default: bounds.Default},
	}
}

func newProductView(p *catalog.Product) ProductView {
	cats := make([]CategoryView, 0, len(p.Categories))
	for _, c := range p.Categories {
		opts := make([]OptionView, 0, len(c.Options))
		for _, o := range c.Options {
			opts = append(opts, OptionView{
				ID:      o.ID,
				Label:   o.Label,
				Price:   types.NewMoney(o.Price),
				Default: o.Default,
			})
		}
		cats = append(cats, CategoryView{ID: c.ID, Label: c.Label, Type: c.Type, Options: opts})
	}
	return ProductView{
		ID:         p.ID,
		Name:       p.Name,
		Price:      types.NewMoney(p.BasePrice),
		Categories: cats,
	}
}

func newQuoteView(cfg *configurator.Configurator) QuoteView {
	summary := cfg.LineItem()
	return QuoteView{
		ProductID: summary.ProductID,
		Name:      summary.Name,
		Amount:    summary.Amount,
		UnitPrice: types.NewMoney(cfg.UnitPrice()),
		Price:     types.NewMoney(cfg.Price()),
		Selection: cfg.Selection(),
		Markers:   cfg.Markers(),
		Params:    summary.Params,
	}
}
