package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/predictions"
)

// RegisterPredictionRoutes wires the prediction-game commands.
func RegisterPredictionRoutes(r fiber.Router, d Deps) {
	h := predictions.NewHandler(d.Predictions, d.Board)

	r.Post("/predictions", h.Submit)
	r.Get("/predictions", h.Open)
	r.Get("/predictions/leaderboard", h.Leaderboard)
}
