package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-delivery/internal/http/handlers"
	"campus-delivery/internal/http/middleware"
	"campus-delivery/internal/http/middleware/ratelimit"
	"campus-delivery/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	assignments *handlers.AssignmentHandler,
	quotes *handlers.QuoteHandler,
	profiles *handlers.ProfileHandler,
	limiter *ratelimit.Middleware,
	logger logx.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}
	r.Use(chimw.Timeout(15 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/orders/available", assignments.AvailableOrders)
	r.Post("/orders/{order_id}/accept", assignments.AcceptOrder)
	r.Post("/delivery/{id}/accept", assignments.ClaimDelivery)
	r.Post("/delivery/calculate-fee", quotes.CalculateFee)
	r.Post("/delivery/geocode", quotes.Geocode)

	r.Route("/profile/{agent_id}", func(r chi.Router) {
		r.Post("/toggle-status", profiles.ToggleStatus)
		r.Get("/dashboard", profiles.Dashboard)
		r.Get("/earnings", profiles.Earnings)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
