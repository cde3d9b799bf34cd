package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/inventory-backend/api/controllers"
	"github.com/angelmondragon/inventory-backend/api/middleware"
	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/pkg/config"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
	"github.com/angelmondragon/inventory-backend/pkg/metrics"
	pkgredis "github.com/angelmondragon/inventory-backend/pkg/redis"
)

// NewRouter wires the HTTP surface. idempotencyStore and redisPinger are nil
// when redis is not configured; gatherer is nil when metrics are disabled.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svc inventory.Service,
	idempotencyStore pkgredis.IdempotencyStore,
	redisPinger pkgredis.Pinger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
		middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisPinger, logg))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svc, logg))
			r.Post("/", controllers.CreateProduct(svc, logg))
			r.Get("/search", controllers.SearchProducts(svc, logg))
			r.Route("/{productId}", func(r chi.Router) {
				r.Get("/", controllers.GetProduct(svc, logg))
				r.Delete("/", controllers.DeleteProduct(svc, logg))
				r.Put("/quantity", controllers.UpdateProductQuantity(svc, logg))
				r.Post("/restock", controllers.RestockProduct(svc, logg))
				r.Post("/withdraw", controllers.WithdrawProduct(svc, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListProcessedOrders(svc, logg))
			r.Post("/", controllers.CreateOrder(svc, logg))
			r.Get("/next", controllers.PeekNextOrder(svc, logg))
			r.Post("/process", controllers.ProcessNextOrder(svc, logg))
		})

		r.Get("/report", controllers.Report(svc, logg))
		r.Get("/stats", controllers.Stats(svc, logg))

		if !cfg.App.IsProd() {
			r.Post("/admin/reset", controllers.AdminReset(cfg, svc, logg))
		}
	})

	return r
}
