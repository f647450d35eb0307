package server

import (
	"encoding/json"
	"net/http"
	"time"

	authctrl "stockroom/internal/auth/controller"
	authmw "stockroom/internal/auth/middleware"
	orderctrl "stockroom/internal/order/controller"
	productctrl "stockroom/internal/product/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	productCtrl *productctrl.ProductsController,
	orderCtrl *orderctrl.OrdersController,
	authCtrl *authctrl.AuthController,
	gate *authmw.Middleware,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productCtrl.List)
			r.Get("/available", productCtrl.AvailableStock)
			r.Get("/{id}", productCtrl.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.Get("/alerts/low-stock", productCtrl.LowStockAlerts)
				r.Get("/alerts/low-demand", productCtrl.LowDemandProducts)
				r.Get("/analytics/summary", productCtrl.Analytics)
			})

			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate, gate.RequireAdmin)
				r.Post("/", productCtrl.Create)
				r.Put("/{id}", productCtrl.Update)
				r.Delete("/{id}", productCtrl.Delete)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authCtrl.Register)
			r.Post("/login", authCtrl.Login)

			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.Get("/me", authCtrl.Me)
			})

			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate, gate.RequireAdmin)
				r.Get("/users", authCtrl.ListUsers)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.Get("/", orderCtrl.List)
			r.Post("/", orderCtrl.Create)
			r.Get("/{id}", orderCtrl.GetByID)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "Server is running",
		"timestamp": time.Now().UTC(),
	})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
