package cart

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	cartdto "github.com/angelmondragon/menucart/api/controllers/cart/dto"
	"github.com/angelmondragon/menucart/api/responses"
	"github.com/angelmondragon/menucart/api/validators"
	cartsvc "github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/configurator"
	"github.com/angelmondragon/menucart/internal/orders"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
	"github.com/angelmondragon/menucart/pkg/logger"
	"github.com/angelmondragon/menucart/pkg/metrics"
)

// Sessions is the cart session store the handlers work against.
type Sessions interface {
	Create() (uuid.UUID, error)
	With(id uuid.UUID, fn func(*cartsvc.Cart) error) error
	Delete(id uuid.UUID) error
}

// Menu resolves products by id.
type Menu interface {
	Product(id string) (*catalog.Product, error)
}

// OrderSubmitter forwards an order payload downstream.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload cartsvc.OrderPayload) (*orders.Receipt, error)
}

// CartCreate opens a new cart session.
func CartCreate(sessions Sessions, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessions.Create()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		m.IncMutation(metrics.OpCreate)

		var view cartdto.CartView
		err = sessions.With(id, func(c *cartsvc.Cart) error {
			view = cartdto.NewCartView(id, c)
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if logg != nil {
			logg.Info(logg.WithCartID(r.Context(), id.String()), "cart.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

func CartFetch(sessions Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view cartdto.CartView
		err = sessions.With(cartID, func(c *cartsvc.Cart) error {
			view = cartdto.NewCartView(cartID, c)
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartDelete closes a cart session.
func CartDelete(sessions Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := sessions.Delete(cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// CartAddItem configures the requested product and appends it to the cart.
// The unit price is fixed from the catalog at this point.
func CartAddItem(sessions Sessions, menu Menu, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := menu.Product(payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var result cartdto.ItemAdded
		err = sessions.With(cartID, func(c *cartsvc.Cart) error {
			cfg, err := configurator.New(product, c.QuantityBounds())
			if err != nil {
				return err
			}
			if err := cfg.Merge(catalog.Selection(payload.Options)); err != nil {
				return err
			}
			if raw, ok := validators.RawAmount(payload.Amount); ok && !cfg.SetAmount(raw) {
				m.IncQuantityRejected(metrics.OpAdd)
				bounds := cfg.Quantity().Bounds()
				return pkgerrors.Newf(pkgerrors.CodeValidation, "amount must be a whole number between %d and %d", bounds.Min, bounds.Max).
					WithDetails(map[string]string{"amount": "out of range"})
			}

			li := c.AddItem(cfg.LineItem())
			result = cartdto.ItemAdded{
				Item: cartdto.NewLineItemView(li),
				Cart: cartdto.NewCartView(cartID, c),
			}
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncMutation(metrics.OpAdd)
		if logg != nil {
			ctx = logg.WithCartID(ctx, cartID.String())
			ctx = logg.WithLineItemID(ctx, result.Item.ID.String())
			logg.Info(logg.WithField(ctx, "product_id", product.ID), "cart.item_added")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CartUpdateItem hands the raw amount to the item's quantity control. A
// rejected candidate is not an error: the response reports accepted=false
// with the unchanged cart.
func CartUpdateItem(sessions Sessions, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		itemID, err := uuidParam(r, "itemID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload cartdto.UpdateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		raw, _ := validators.RawAmount(payload.Amount)

		var result cartdto.QuantityUpdate
		err = sessions.With(cartID, func(c *cartsvc.Cart) error {
			accepted, err := c.UpdateItemQuantity(itemID, raw)
			if err != nil {
				return err
			}
			result = cartdto.QuantityUpdate{Accepted: accepted, Cart: cartdto.NewCartView(cartID, c)}
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if result.Accepted {
			m.IncMutation(metrics.OpUpdate)
		} else {
			m.IncQuantityRejected(metrics.OpUpdate)
			if logg != nil {
				ctx = logg.WithLineItemID(logg.WithCartID(ctx, cartID.String()), itemID.String())
				logg.Debug(logg.WithField(ctx, "candidate", raw), "cart.quantity_rejected")
			}
		}
		responses.WriteSuccess(w, result)
	}
}

func CartRemoveItem(sessions Sessions, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		itemID, err := uuidParam(r, "itemID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var view cartdto.CartView
		err = sessions.With(cartID, func(c *cartsvc.Cart) error {
			li, err := c.Item(itemID)
			if err != nil {
				return err
			}
			if err := li.Remove(); err != nil {
				return err
			}
			view = cartdto.NewCartView(cartID, c)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncMutation(metrics.OpRemove)
		responses.WriteSuccess(w, view)
	}
}

// CartSubmitOrder builds the order payload from the cart and forwards it when
// a submitter is configured. The payload is built under the session lock and
// sent after it is released; the cart itself is never modified.
func CartSubmitOrder(sessions Sessions, submitter OrderSubmitter, m *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID, err := uuidParam(r, "cartID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if logg != nil {
			ctx = logg.WithCartID(ctx, cartID.String())
		}

		var payload cartdto.OrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		info := cartsvc.CustomerInfo{
			Address: validators.SanitizeString(payload.Address, 512),
			Phone:   validators.SanitizeString(payload.Phone, 32),
		}
		if err := requireContact(info); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var order cartsvc.OrderPayload
		err = sessions.With(cartID, func(c *cartsvc.Cart) error {
			if c.IsEmpty() {
				return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
			}
			order = c.BuildOrderPayload(info)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result := cartdto.OrderResult{Payload: order}
		if submitter == nil {
			m.ObserveSubmission(metrics.OutcomeSkipped, 0)
			m.IncMutation(metrics.OpOrder)
			responses.WriteSuccess(w, result)
			return
		}

		start := time.Now()
		receipt, err := submitter.Submit(ctx, order)
		if err != nil {
			m.ObserveSubmission(metrics.OutcomeFailed, time.Since(start))
			responses.WriteError(ctx, logg, w, err)
			return
		}
		m.ObserveSubmission(metrics.OutcomeSubmitted, time.Since(start))
		m.IncMutation(metrics.OpOrder)

		result.Submitted = true
		result.Receipt = receipt
		if logg != nil {
			logg.Info(logg.WithFields(ctx, map[string]any{
				"total_number": order.TotalNumber,
				"total_price":  order.TotalPrice.String(),
			}), "order.submitted")
		}
		responses.WriteSuccess(w, result)
	}
}
