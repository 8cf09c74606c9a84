package shop

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/bank"
)

// Handler exposes shop endpoints to the chat gateway.
type Handler struct {
	service *Service
}

// NewHandler builds a shop HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the fixed catalog.
func (h *Handler) List(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"items": Catalog()})
}

type tradeRequest struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

// Buy purchases catalog items for the account in the path.
func (h *Handler) Buy(c *fiber.Ctx) error {
	id := c.Params("id")

	req := tradeRequest{Quantity: 1}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Buy(c.UserContext(), id, req.Item, req.Quantity)
	if err != nil {
		return tradeError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"item":     result.Item,
		"quantity": result.Quantity,
		"cost":     result.Cost,
		"wallet":   result.Balance,
	})
}

// Sell sells held items back at the buy-back rate.
func (h *Handler) Sell(c *fiber.Ctx) error {
	id := c.Params("id")

	req := tradeRequest{Quantity: 1}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Sell(c.UserContext(), id, req.Item, req.Quantity)
	if err != nil {
		return tradeError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"item":     result.Item,
		"quantity": result.Quantity,
		"proceeds": result.Proceeds,
		"wallet":   result.Balance,
	})
}

// Inventory lists the account's held items.
func (h *Handler) Inventory(c *fiber.Ctx) error {
	id := c.Params("id")
	items, err := h.service.Inventory(c.UserContext(), id)
	if err != nil {
		return tradeError(err)
	}
	if items == nil {
		items = []bank.Item{}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_id": id,
		"inventory":  items,
	})
}

func tradeError(err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrItemNotHeld), errors.Is(err, ErrInsufficientQuantity):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, bank.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, bank.ErrInsufficientFunds):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
