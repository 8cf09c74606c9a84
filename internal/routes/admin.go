package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/middleware"
	"github.com/stonk-bot/stonk_bot/internal/settlement"
)

// RegisterAdminRoutes wires owner-only commands behind the owner-token guard.
func RegisterAdminRoutes(r fiber.Router, d Deps) {
	h := settlement.NewHandler(d.Settlement)

	admin := r.Group("/admin", middleware.OwnerOnly(d.Cfg.OwnerTokenHash))
	admin.Post("/settle", h.Settle)
}
