package menu

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/menucart/api/responses"
	"github.com/angelmondragon/menucart/api/validators"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/configurator"
	"github.com/angelmondragon/menucart/internal/quantity"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
	"github.com/angelmondragon/menucart/pkg/logger"
	"github.com/angelmondragon/menucart/pkg/metrics"
)

// Catalog is the read side of the menu.
type Catalog interface {
	Products() []*catalog.Product
	Product(id string) (*catalog.Product, error)
}

// QuoteRequest configures a product card. Options names only the categories
// that differ from the catalog defaults.
type QuoteRequest struct {
	Options map[string][]string `json:"options,omitempty"`
	Amount  json.RawMessage     `json:"amount,omitempty"`
}

func MenuList(menu Catalog, bounds quantity.Bounds, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newMenuView(menu.Products(), bounds))
	}
}

// MenuQuote prices a product as the customer configured it without touching
// any cart.
func MenuQuote(menu Catalog, bounds quantity.Bounds, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := menu.Product(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cfg, err := configurator.New(product, bounds)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := cfg.Merge(catalog.Selection(payload.Options)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if raw, ok := validators.RawAmount(payload.Amount); ok && !cfg.SetAmount(raw) {
			m.IncQuantityRejected(metrics.OpQuote)
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Newf(pkgerrors.CodeValidation, "amount must be a whole number between %d and %d", bounds.Min, bounds.Max).
					WithDetails(map[string]string{"amount": "out of range"}))
			return
		}

		responses.WriteSuccess(w, newQuoteView(cfg))
	}
}
