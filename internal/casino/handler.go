package casino

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/bank"
)

// Handler exposes gamble endpoints to the chat gateway.
type Handler struct {
	service *Service
}

// NewHandler builds a casino HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type slotsRequest struct {
	Amount string `json:"amount"` // integer text, or "all"
}

// Slots spins the slot machine for the account in the path.
func (h *Handler) Slots(c *fiber.Ctx) error {
	id := c.Params("id")

	var req slotsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var (
		result SpinResult
		err    error
	)
	if req.Amount == "all" {
		result, err = h.service.AllIn(c.UserContext(), id)
	} else {
		var amount int64
		amount, err = strconv.ParseInt(req.Amount, 10, 64)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, bank.ErrInvalidAmount.Error())
		}
		result, err = h.service.Slots(c.UserContext(), id, amount)
	}
	if err != nil {
		return spinError(err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"reels":  result.Reels,
		"wager":  result.Wager,
		"payout": result.Payout,
		"won":    result.Won,
		"wallet": result.Balance,
	})
}

func spinError(err error) error {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, bank.ErrInsufficientFunds):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
