package bank

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes account and transfer endpoints to the chat gateway.
type Handler struct {
	service *Service
}

// NewHandler builds a bank HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balance returns the wallet balance for an account.
func (h *Handler) Balance(c *fiber.Ctx) error {
	id := c.Params("id")
	balance, err := h.service.Balance(c.UserContext(), id)
	if err != nil {
		return statusError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_id": id,
		"wallet":     balance,
	})
}

// Beg grants the random beg reward. The cooldown middleware has already
// passed by the time this runs.
func (h *Handler) Beg(c *fiber.Ctx) error {
	id := c.Params("id")
	result, err := h.service.Beg(c.UserContext(), id)
	if err != nil {
		return statusError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_id": id,
		"earnings":   result.Earnings,
		"wallet":     result.Balance,
	})
}

type transferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"` // integer text, or "all"
}

// Transfer moves coins from the account in the path to another account.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	from := c.Params("id")

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.To == "" {
		return fiber.NewError(http.StatusBadRequest, "to is required")
	}

	amount, err := h.resolveAmount(c, from, req.Amount)
	if err != nil {
		return statusError(err)
	}

	result, err := h.service.Transfer(c.UserContext(), from, req.To, amount)
	if err != nil {
		return statusError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"transaction_id": result.TransactionID,
		"amount":         result.Amount,
		"from_wallet":    result.FromBalance,
		"to_wallet":      result.ToBalance,
		"completed_at":   result.CompletedAt,
	})
}

// Richest returns the top-n wallet leaderboard.
func (h *Handler) Richest(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 10)
	entries, err := h.service.Richest(c.UserContext(), n)
	if err != nil {
		return statusError(err)
	}

	rows := make([]fiber.Map, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, fiber.Map{
			"position":   i + 1,
			"account_id": entry.ID,
			"wallet":     entry.Score,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"leaderboard": rows})
}

// resolveAmount parses an integer amount, honoring the "all" shortcut.
func (h *Handler) resolveAmount(c *fiber.Ctx, id, raw string) (int64, error) {
	if raw == "all" {
		return h.service.Balance(c.UserContext(), id)
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

func statusError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInsufficientFunds):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrUnknownAccount):
		return fiber.NewError(http.StatusNotFound, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
