package routes

import (
	"procurement-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(app *fiber.App, auth *controllers.AuthController) {
	group := app.Group("/auth")
	group.Post("/login", auth.Login)
}
