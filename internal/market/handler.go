package market

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes ticker price queries to the chat gateway.
type Handler struct {
	prices PriceSource
}

// NewHandler builds a market HTTP handler.
func NewHandler(prices PriceSource) *Handler {
	return &Handler{prices: prices}
}

// Close returns the day's closing price for a symbol.
func (h *Handler) Close(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	price, err := h.prices.ClosePrice(c.UserContext(), symbol)
	if err != nil {
		return priceError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"symbol": symbol, "close": price})
}

// Open returns the day's opening price for a symbol.
func (h *Handler) Open(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	price, err := h.prices.OpenPrice(c.UserContext(), symbol)
	if err != nil {
		return priceError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"symbol": symbol, "open": price})
}

func priceError(err error) error {
	if errors.Is(err, ErrPriceUnavailable) {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return fiber.NewError(http.StatusInternalServerError, err.Error())
}
