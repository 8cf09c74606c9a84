package predictions

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/leaderboard"
)

// Handler exposes prediction endpoints to the chat gateway.
type Handler struct {
	service *Service
	board   *leaderboard.Service
}

// NewHandler builds a predictions HTTP handler.
func NewHandler(service *Service, board *leaderboard.Service) *Handler {
	return &Handler{service: service, board: board}
}

type submitRequest struct {
	AccountID string  `json:"account_id"`
	Value     float64 `json:"value"`
	Method    string  `json:"method"`
}

// Submit records a prediction for the current window.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.AccountID == "" || req.Method == "" {
		return fiber.NewError(http.StatusBadRequest, "account_id and method are required")
	}

	err := h.service.Submit(c.UserContext(), Prediction{
		AccountID: req.AccountID,
		Value:     req.Value,
		Method:    req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionsClosed):
			return fiber.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrMethodAlreadyUsed), errors.Is(err, ErrPredictionLimit):
			return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"account_id": req.AccountID,
		"value":      req.Value,
		"method":     req.Method,
	})
}

// Open lists the open predictions.
func (h *Handler) Open(c *fiber.Ctx) error {
	open, err := h.service.Open(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"predictions": open})
}

// Leaderboard returns the all-time prediction prize leaderboard.
func (h *Handler) Leaderboard(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 10)
	rows, err := h.board.Top(c.UserContext(), n)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"leaderboard": rows})
}
