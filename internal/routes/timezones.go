package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/timezones"
)

// RegisterTimezoneRoutes wires the timezone assignment commands.
func RegisterTimezoneRoutes(r fiber.Router, d Deps) {
	h := timezones.NewHandler(d.Zones)

	r.Get("/timezones", h.List)
	r.Put("/accounts/:id/timezone", h.Assign)
	r.Get("/accounts/:id/timezone", h.Current)
}
