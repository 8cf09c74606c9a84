package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/market"
)

// RegisterMarketRoutes wires the ticker query commands.
func RegisterMarketRoutes(r fiber.Router, d Deps) {
	h := market.NewHandler(d.Prices)

	r.Get("/tickers/:symbol/close", h.Close)
	r.Get("/tickers/:symbol/open", h.Open)
}
