package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type NewsletterHandler struct {
	s service.ContentService
}

func NewNewsletterHandler(s service.ContentService) *NewsletterHandler {
	return &NewsletterHandler{s: s}
}

func (h *NewsletterHandler) GenerateNewsletter(c *fiber.Ctx) error {
	var sc transfer.ScheduleCreation
	if err := c.BodyParser(&sc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	newsletter, err := h.s.GenerateNewsletter(c.Context(), c.Params("company_id"), &sc)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(newsletter)
}

func (h *NewsletterHandler) ListNewsletters(c *fiber.Ctx) error {
	newsletters, err := h.s.ListNewsletters(c.Context(), c.Params("company_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(newsletters)
}

func (h *NewsletterHandler) GetNewsletter(c *fiber.Ctx) error {
	newsletter, err := h.s.GetNewsletter(c.Context(), c.Params("company_id"), c.Params("newsletter_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(newsletter)
}
