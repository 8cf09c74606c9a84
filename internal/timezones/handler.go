package timezones

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes timezone assignment endpoints to the chat gateway.
type Handler struct {
	service *Service
}

// NewHandler builds a timezones HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all assignable zones.
func (h *Handler) List(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"zones": List()})
}

type assignRequest struct {
	Code string `json:"code"`
}

// Assign sets the timezone for the account in the path and reports the
// previous zone so the gateway can swap roles.
func (h *Handler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")

	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.service.Assign(c.UserContext(), id, req.Code)
	if err != nil {
		if errors.Is(err, ErrUnknownZone) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	resp := fiber.Map{"account_id": id, "zone": assignment.Zone}
	if assignment.Previous != nil {
		resp["previous"] = *assignment.Previous
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// Current returns the zone assigned to the account in the path.
func (h *Handler) Current(c *fiber.Ctx) error {
	id := c.Params("id")
	zone, err := h.service.Current(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNoAssignment) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"account_id": id, "zone": zone})
}
