package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/stonk-bot/stonk_bot/internal/bank"
	"github.com/stonk-bot/stonk_bot/internal/casino"
	"github.com/stonk-bot/stonk_bot/internal/config"
	"github.com/stonk-bot/stonk_bot/internal/leaderboard"
	"github.com/stonk-bot/stonk_bot/internal/market"
	"github.com/stonk-bot/stonk_bot/internal/middleware"
	"github.com/stonk-bot/stonk_bot/internal/predictions"
	"github.com/stonk-bot/stonk_bot/internal/settlement"
	"github.com/stonk-bot/stonk_bot/internal/shop"
	"github.com/stonk-bot/stonk_bot/internal/timezones"
)

// Deps aggregates the services required to wire the command surface.
type Deps struct {
	Cfg         config.Config
	Cache       *redis.Client // optional
	Logger      *slog.Logger
	Banks       *bank.Service
	Shop        *shop.Service
	Casino      *casino.Service
	Predictions *predictions.Service
	Board       *leaderboard.Service
	Zones       *timezones.Service
	Prices      market.PriceSource
	Settlement  *settlement.Service
}

// Setup configures middlewares and all command routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterEconomyRoutes(api, d)
	RegisterPredictionRoutes(api, d)
	RegisterMarketRoutes(api, d)
	RegisterTimezoneRoutes(api, d)
	RegisterAdminRoutes(api, d)

	return nil
}
