package configurator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/pricing"
	"github.com/angelmondragon/menucart/internal/quantity"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

var defaultBounds = quantity.Bounds{Min: 1, Max: 9, Default: 1}

func pizza() *catalog.Product {
	return &catalog.Product{
		ID:        "pizza",
		Name:      "Pizza",
		BasePrice: decimal.NewFromInt(20),
		Categories: []catalog.Category{
			{
				ID:    "size",
				Label: "Size",
				Type:  catalog.SelectionSingle,
				Options: []catalog.Option{
					{ID: "small", Label: "Small", Price: decimal.Zero, Default: true},
					{ID: "large", Label: "Large", Price: decimal.NewFromInt(5)},
				},
			},
			{
				ID:    "extras",
				Label: "Extras",
				Type:  catalog.SelectionMulti,
				Options: []catalog.Option{
					{ID: "cheese", Label: "Extra cheese", Price: decimal.RequireFromString("1.5")},
				},
			},
		},
	}
}

func TestBuildLineItemScenarioA(t *testing.T) {
	qty, err := quantity.New(defaultBounds)
	require.NoError(t, err)
	require.True(t, qty.SetValue(2))

	s := BuildLineItem(pizza(), catalog.Selection{"size": {"large"}}, qty)

	assert.Equal(t, "pizza", s.ProductID)
	assert.Equal(t, "Pizza", s.Name)
	assert.Equal(t, "25", s.UnitPrice.String())
	assert.Equal(t, 2, s.Amount)
	assert.Equal(t, "50", s.TotalPrice.String())
	assert.Equal(t, cart.Params{
		"size":   {Label: "Size", Options: map[string]string{"large": "Large"}},
		"extras": {Label: "Extras", Options: map[string]string{}},
	}, s.Params)
}

func TestConfiguratorStartsOnDefaults(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)

	assert.Equal(t, "20", c.UnitPrice().String())
	assert.Equal(t, "20", c.Price().String())
	assert.Equal(t, []pricing.OptionRef{{CategoryID: "size", OptionID: "small"}}, c.Markers())
}

func TestConfiguratorRepricesOnQuantityAndOptions(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)

	require.NoError(t, c.Select(catalog.Selection{"size": {"large"}, "extras": {"cheese"}}))
	assert.Equal(t, "26.5", c.UnitPrice().String())

	assert.True(t, c.SetAmount("3"))
	assert.Equal(t, "79.5", c.Price().String())

	c.Quantity().Decrement()
	assert.Equal(t, "53", c.Price().String())

	assert.False(t, c.SetAmount("ten"))
	assert.Equal(t, "53", c.Price().String())

	require.NoError(t, c.Select(catalog.Selection{"size": {"small"}}))
	assert.Equal(t, "40", c.Price().String())
}

func TestConfiguratorRejectsInvalidSelection(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)

	err = c.Select(catalog.Selection{"size": {"small", "large"}})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, "20", c.UnitPrice().String(), "rejected selection must not change the price")
}

func TestConfiguratorBadBounds(t *testing.T) {
	_, err := New(pizza(), quantity.Bounds{Min: 2, Max: 1, Default: 1})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeConfig))
}

func TestLineItemSnapshotIsDetached(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)
	require.NoError(t, c.Select(catalog.Selection{"size": {"large"}}))

	s := c.LineItem()
	require.NoError(t, c.Select(catalog.Selection{"size": {"small"}}))
	c.SetAmount("4")

	assert.Equal(t, "25", s.UnitPrice.String())
	assert.Equal(t, 1, s.Amount)
	assert.Equal(t, map[string]string{"large": "Large"}, s.Params["size"].Options)
}

func TestConfiguredItemFlowsIntoCart(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)
	require.NoError(t, c.Select(catalog.Selection{"size": {"large"}}))
	c.SetAmount("2")

	shop, err := cart.New(cart.Options{DeliveryFee: decimal.NewFromInt(10), Quantity: defaultBounds})
	require.NoError(t, err)
	li := shop.AddItem(c.LineItem())

	assert.Equal(t, "50", li.TotalPrice().String())
	assert.Equal(t, "60", shop.Totals().GrandTotal.String())
}

func TestConfiguratorMergeKeepsUntouchedCategories(t *testing.T) {
	c, err := New(pizza(), defaultBounds)
	require.NoError(t, err)

	require.NoError(t, c.Merge(catalog.Selection{"size": {"large"}}))
	assert.True(t, c.UnitPrice().Equal(decimal.NewFromInt(25)))

	require.NoError(t, c.Merge(catalog.Selection{"extras": {"cheese"}}))
	assert.True(t, c.UnitPrice().Equal(decimal.RequireFromString("26.5")))
	assert.Equal(t, []string{"large"}, c.Selection()["size"])

	err = c.Merge(catalog.Selection{"bogus": {"x"}})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.True(t, c.UnitPrice().Equal(decimal.RequireFromString("26.5")))
}
