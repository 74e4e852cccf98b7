package routes

import (
	"procurement-backend/controllers"
	"procurement-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterOrderRoutes wires the order endpoints and the health probe.
// With protect set, the order endpoints require a bearer token.
func RegisterOrderRoutes(app *fiber.App, orders *controllers.OrderController, protect bool) {
	if protect {
		app.Post("/orders", middleware.JWTMiddleware, orders.CreateOrder)
		app.Get("/orders", middleware.JWTMiddleware, orders.GetOrderHistory)
	} else {
		app.Post("/orders", orders.CreateOrder)
		app.Get("/orders", orders.GetOrderHistory)
	}

	app.Get("/health", orders.HealthCheck)
}
