package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/menucart/api/controllers"
	cartcontrollers "github.com/angelmondragon/menucart/api/controllers/cart"
	menucontrollers "github.com/angelmondragon/menucart/api/controllers/menu"
	"github.com/angelmondragon/menucart/api/middleware"
	"github.com/angelmondragon/menucart/internal/quantity"
	"github.com/angelmondragon/menucart/pkg/config"
	"github.com/angelmondragon/menucart/pkg/logger"
	"github.com/angelmondragon/menucart/pkg/metrics"
	"github.com/angelmondragon/menucart/pkg/redis"
)

// NewRouter wires every HTTP route. redisClient and submitter are optional;
// a nil value disables idempotency and order forwarding respectively.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	menu menucontrollers.Catalog,
	sessions cartcontrollers.Sessions,
	submitter cartcontrollers.OrderSubmitter,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	cartMetrics *metrics.CartMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	var (
		pinger controllers.Pinger
		store  redis.IdempotencyStore
	)
	if redisClient != nil {
		pinger = redisClient
		store = redisClient
	}

	bounds := quantity.Bounds{
		Min:     cfg.Amount.Min,
		Max:     cfg.Amount.Max,
		Default: cfg.Amount.Default,
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pinger))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/menu", func(r chi.Router) {
		r.Get("/", menucontrollers.MenuList(menu, bounds, logg))
		r.Post("/{productID}/quote", menucontrollers.MenuQuote(menu, bounds, cartMetrics, logg))
	})

	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Post("/", cartcontrollers.CartCreate(sessions, cartMetrics, logg))
		r.Route("/{cartID}", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(sessions, logg))
			r.Delete("/", cartcontrollers.CartDelete(sessions, logg))
			r.Post("/items", cartcontrollers.CartAddItem(sessions, menu, cartMetrics, logg))
			r.Patch("/items/{itemID}", cartcontrollers.CartUpdateItem(sessions, cartMetrics, logg))
			r.Delete("/items/{itemID}", cartcontrollers.CartRemoveItem(sessions, cartMetrics, logg))
			r.With(middleware.Idempotency(store, cfg.Redis.IdempotencyTTL, logg)).
				Post("/order", cartcontrollers.CartSubmitOrder(sessions, submitter, cartMetrics, logg))
		})
	})

	return r
}
