package settlement

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/market"
)

// Handler exposes the owner-only force-settle endpoint.
type Handler struct {
	service *Service
}

// NewHandler builds a settlement HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Settle runs one settlement cycle immediately. The owner guard has already
// passed by the time this runs.
func (h *Handler) Settle(c *fiber.Ctx) error {
	report, err := h.service.Settle(c.UserContext())
	if err != nil {
		if errors.Is(err, market.ErrPriceUnavailable) {
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(report)
}
