package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scrapconnect/internal/config"
)

// NewRouter настраивает chi-роутер: глобальные middleware и все маршруты API.
func NewRouter(cfg *config.Config, a *API) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware должны идти перед маршрутами.
	r.Use(middleware.Logger)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(NotFoundHandler)

	r.Get("/", a.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.Health)

		// --- Аутентификация ---
		r.Post("/auth/register", a.Register)
		r.Post("/auth/login", a.Login)
		r.Get("/auth/profile/{mobile}", a.GetProfile)

		// --- Заказы ---
		// Один сегмент {id} обслуживает и мобильный номер (GET),
		// и номер заказа (DELETE/PUT/qr): chi требует одинаковое имя
		// подстановки для одного и того же уровня маршрута.
		r.Post("/orders", a.CreateOrder)
		r.Get("/orders", a.ListAllOrders)
		r.Get("/orders/{id}", a.ListOrdersByMobile)
		r.Delete("/orders/{id}", a.DeleteOrder)
		r.Put("/orders/{id}/status", a.UpdateOrderStatus)
		r.Get("/orders/{id}/qr", a.GetOrderQR)

		// --- Цены ---
		r.Get("/prices", a.ListPrices)
		r.Post("/prices", a.UpsertPrice)

		// --- Администрирование ---
		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", a.ListUsers)
			r.Get("/stats", a.GetStats)
			r.Get("/orders/export", a.ExportOrders)
		})
	})

	return r
}
