// Package pricing turns a product definition and a set of chosen options into a unit price.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/menucart/internal/catalog"
)

// OptionRef identifies one option of one category.
type OptionRef struct {
	CategoryID string `json:"categoryId"`
	OptionID   string `json:"optionId"`
}

// ResolveUnitPrice prices one unit of product configured with selected.
// The base price already includes every default option, so only deviations from
// the defaults move the price: choosing a non-default adds its price, leaving a
// default out subtracts it. The result is recomputed from scratch on every call.
func ResolveUnitPrice(product *catalog.Product, selected catalog.Selection) decimal.Decimal {
	price := product.BasePrice
	for _, cat := range product.Categories {
		for _, opt := range cat.Options {
			chosen := selected.Contains(cat.ID, opt.ID)
			switch {
			case chosen && !opt.Default:
				price = price.Add(opt.Price)
			case !chosen && opt.Default:
				price = price.Sub(opt.Price)
			}
		}
	}
	return price
}

// VisibleOptionMarkers lists the chosen options, in catalog order, whose
// state the UI flags (e.g. by showing the ingredient's image).
func VisibleOptionMarkers(product *catalog.Product, selected catalog.Selection) []OptionRef {
	markers := []OptionRef{}
	for _, cat := range product.Categories {
		for _, opt := range cat.Options {
			if selected.Contains(cat.ID, opt.ID) {
				markers = append(markers, OptionRef{CategoryID: cat.ID, OptionID: opt.ID})
			}
		}
	}
	return markers
}
