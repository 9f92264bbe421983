package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/service"
)

// GetChannel reads and validates the :channel route param. Second return is
// false when the handler already wrote the 400 response.
func GetChannel(c *fiber.Ctx) (string, bool) {
	channel := c.Params("channel")
	if !models.IsValidChannel(channel) {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown channel: " + channel,
		})
		return "", false
	}
	return channel, true
}

// ServiceError maps service failures to HTTP responses.
func ServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrPublished), errors.Is(err, service.ErrCompanyExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
