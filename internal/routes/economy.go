package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/bank"
	"github.com/stonk-bot/stonk_bot/internal/casino"
	"github.com/stonk-bot/stonk_bot/internal/middleware"
	"github.com/stonk-bot/stonk_bot/internal/shop"
)

// RegisterEconomyRoutes wires the currency commands: balance, beg, transfer,
// wallet leaderboard, shop and slots.
func RegisterEconomyRoutes(r fiber.Router, d Deps) {
	bankHandler := bank.NewHandler(d.Banks)
	shopHandler := shop.NewHandler(d.Shop)
	casinoHandler := casino.NewHandler(d.Casino)

	r.Get("/accounts/:id/balance", bankHandler.Balance)
	r.Post("/accounts/:id/beg", middleware.Cooldown(d.Cache, "beg", d.Cfg.BegCooldown), bankHandler.Beg)
	r.Post("/accounts/:id/transfers", bankHandler.Transfer)
	r.Get("/leaderboard", bankHandler.Richest)

	r.Get("/shop", shopHandler.List)
	r.Post("/accounts/:id/purchases", shopHandler.Buy)
	r.Post("/accounts/:id/sales", shopHandler.Sell)
	r.Get("/accounts/:id/inventory", shopHandler.Inventory)

	r.Post("/accounts/:id/slots", casinoHandler.Slots)
}
