package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type ChannelHandler struct {
	s service.CompanyService
}

func NewChannelHandler(s service.CompanyService) *ChannelHandler {
	return &ChannelHandler{s: s}
}

func (h *ChannelHandler) GetChannelConfig(c *fiber.Ctx) error {
	config, err := h.s.GetChannelConfig(c.Context(), c.Params("company_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(config)
}

func (h *ChannelHandler) SetChannelConfig(c *fiber.Ctx) error {
	var cu transfer.ChannelConfigUpdate
	if err := c.BodyParser(&cu); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.s.SetChannelConfig(c.Context(), c.Params("company_id"), &cu); err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Channel config updated successfully",
	})
}
