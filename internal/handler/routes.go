package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register mounts the pool API and the metrics endpoint on r.
func Register(r fiber.Router, h *PoolHandler, gatherer prometheus.Gatherer) {
	r.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.Post("/pools", h.Create())
	r.Post("/pools/seed", h.Seed())
	r.Get("/pools", h.List())
	r.Get("/pools/:id", h.Get())
	r.Get("/pools/:id/quote", h.Quote())
	r.Post("/pools/:id/swap", h.Swap())
	r.Post("/pools/:id/fund", h.Fund())
	r.Post("/pools/:id/withdraw", h.Withdraw())
}
