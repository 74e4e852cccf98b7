package controllers

import (
	"log"
	"time"

	"procurement-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthController exchanges the configured admin credentials for a
// bearer token. Deployments without an admin configured keep the
// order endpoints open and this handler answers 503.
type AuthController struct {
	cfg config.Config
}

func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	if !ctl.cfg.AuthEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"detail": "Login is not configured"})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Username and password are required"})
	}

	if req.Username != ctl.cfg.AdminUsername {
		log.Println("❌ Unknown user:", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid username or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ctl.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		log.Println("❌ Invalid password for user:", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid username or password"})
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"username": req.Username,
		"exp":      expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ctl.cfg.JWTSecret))
	if err != nil {
		log.Printf("❌ Error generating JWT token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Could not generate token"})
	}

	return c.JSON(fiber.Map{"token": tokenString, "user": req.Username})
}
