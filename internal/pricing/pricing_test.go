package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/menucart/internal/catalog"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func scenarioProduct() *catalog.Product {
	return &catalog.Product{
		ID:        "pizza",
		Name:      "Pizza",
		BasePrice: dec("20"),
		Categories: []catalog.Category{
			{
				ID:    "size",
				Label: "Size",
				Type:  catalog.SelectionSingle,
				Options: []catalog.Option{
					{ID: "small", Label: "Small", Price: dec("0"), Default: true},
					{ID: "large", Label: "Large", Price: dec("5")},
				},
			},
		},
	}
}

func toppingsProduct() *catalog.Product {
	return &catalog.Product{
		ID:        "salad",
		Name:      "Salad",
		BasePrice: dec("9"),
		Categories: []catalog.Category{
			{
				ID:   "ingredients",
				Type: catalog.SelectionMulti,
				Options: []catalog.Option{
					{ID: "cucumber", Price: dec("1"), Default: true},
					{ID: "feta", Price: dec("1.25"), Default: true},
					{ID: "tuna", Price: dec("3.5")},
				},
			},
			{
				ID:   "dressing",
				Type: catalog.SelectionSingle,
				Options: []catalog.Option{
					{ID: "oil", Price: dec("0"), Default: true},
					{ID: "caesar", Price: dec("1.5")},
				},
			},
		},
	}
}

func TestDefaultSelectionYieldsBasePrice(t *testing.T) {
	for _, p := range []*catalog.Product{scenarioProduct(), toppingsProduct()} {
		got := ResolveUnitPrice(p, catalog.DefaultSelection(p))
		assert.True(t, got.Equal(p.BasePrice), "%s: expected %s got %s", p.ID, p.BasePrice, got)
	}
}

func TestScenarioALargeSize(t *testing.T) {
	got := ResolveUnitPrice(scenarioProduct(), catalog.Selection{"size": {"large"}})
	assert.Equal(t, "25", got.String())
}

func TestSelectingNonDefaultRoundTripIsNetZero(t *testing.T) {
	p := toppingsProduct()
	sel := catalog.DefaultSelection(p)
	base := ResolveUnitPrice(p, sel)

	sel["ingredients"] = append(sel["ingredients"], "tuna")
	with := ResolveUnitPrice(p, sel)
	assert.Equal(t, "3.5", with.Sub(base).String())

	sel["ingredients"] = sel["ingredients"][:len(sel["ingredients"])-1]
	assert.True(t, ResolveUnitPrice(p, sel).Equal(base))
}

func TestDeselectingDefaultSubtracts(t *testing.T) {
	p := toppingsProduct()
	got := ResolveUnitPrice(p, catalog.Selection{
		"ingredients": {"cucumber"},
		"dressing":    {"oil"},
	})
	assert.Equal(t, "7.75", got.String())
}

func TestMissingCategoryDropsItsDefaults(t *testing.T) {
	p := toppingsProduct()
	got := ResolveUnitPrice(p, catalog.Selection{"dressing": {"caesar"}})
	// 9 - 1 - 1.25 (defaults absent) + 1.5 (caesar) - 0 (oil)
	assert.Equal(t, "8.25", got.String())
}

func TestResolveIgnoresUnknownIDs(t *testing.T) {
	p := scenarioProduct()
	got := ResolveUnitPrice(p, catalog.Selection{"size": {"small", "huge"}, "crust": {"thin"}})
	assert.True(t, got.Equal(p.BasePrice))
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	p := toppingsProduct()
	sel := catalog.Selection{"ingredients": {"tuna"}}
	first := ResolveUnitPrice(p, sel)
	second := ResolveUnitPrice(p, sel)
	assert.True(t, first.Equal(second))
	assert.Equal(t, "9", p.BasePrice.String())
}

func TestVisibleOptionMarkersFollowCatalogOrder(t *testing.T) {
	p := toppingsProduct()
	markers := VisibleOptionMarkers(p, catalog.Selection{
		"dressing":    {"caesar"},
		"ingredients": {"tuna", "cucumber"},
	})
	assert.Equal(t, []OptionRef{
		{CategoryID: "ingredients", OptionID: "cucumber"},
		{CategoryID: "ingredients", OptionID: "tuna"},
		{CategoryID: "dressing", OptionID: "caesar"},
	}, markers)

	assert.Empty(t, VisibleOptionMarkers(p, nil))
}
