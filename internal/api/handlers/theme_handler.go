package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type ThemeHandler struct {
	s service.ThemeService
}

func NewThemeHandler(s service.ThemeService) *ThemeHandler {
	return &ThemeHandler{s: s}
}

func (h *ThemeHandler) GenerateThemes(c *fiber.Ctx) error {
	var tg transfer.ThemeGeneration
	if err := c.BodyParser(&tg); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	themeSet, err := h.s.GenerateThemes(c.Context(), c.Params("company_id"), &tg)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(themeSet)
}

func (h *ThemeHandler) ListThemes(c *fiber.Ctx) error {
	themes, err := h.s.ListThemes(c.Context(), c.Params("company_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(themes)
}
