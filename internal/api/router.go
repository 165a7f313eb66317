package api

import (
	_ "fintrack/docs"
	"fintrack/internal/metrics"
	ratehandler "fintrack/internal/rate/handler"
	settingshandler "fintrack/internal/settings/handler"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(
	rateHandler *ratehandler.Handler,
	settingsHandler *settingshandler.Handler,
	m *metrics.Metrics,
	metricsHandler http.Handler,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", metricsHandler)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(instrument(m))

		r.Get("/currencies", rateHandler.ListCurrencies)
		r.Get("/currencies/{code}", rateHandler.GetCurrency)
		r.Get("/currencies/{code}/format", rateHandler.FormatAmount)

		r.Get("/rates", rateHandler.GetRates)
		r.Post("/rates/refresh", rateHandler.RefreshRates)
		r.Get("/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", rateHandler.GetRate)

		r.Post("/conversions", rateHandler.Convert)
		r.Post("/conversions/batch", rateHandler.ConvertBatch)

		r.Post("/transactions/convert", rateHandler.ConvertTransactions)

		r.Get("/users/{id}/settings", settingsHandler.GetSettings)
		r.Patch("/users/{id}/settings", settingsHandler.UpdateSettings)
	})
	return router
}

// instrument records request count and latency per route pattern and logs each request.
func instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			elapsed := time.Since(start)
			m.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
			m.HTTPRequestsTotal.WithLabelValues(route, r.Method, fmt.Sprintf("%dxx", status/100)).Inc()

			logrus.WithFields(logrus.Fields{
				"method":   r.Method,
				"route":    route,
				"query":    r.URL.RawQuery,
				"status":   status,
				"duration": elapsed,
			}).Debug("HTTP request")
		})
	}
}
