package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type BlogHandler struct {
	s service.ContentService
}

func NewBlogHandler(s service.ContentService) *BlogHandler {
	return &BlogHandler{s: s}
}

func (h *BlogHandler) GenerateBlog(c *fiber.Ctx) error {
	var sc transfer.ScheduleCreation
	if err := c.BodyParser(&sc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	blog, err := h.s.GenerateBlog(c.Context(), c.Params("company_id"), &sc)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	blogs, err := h.s.ListBlogs(c.Context(), c.Params("company_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blogs)
}

func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	blog, err := h.s.GetBlog(c.Context(), c.Params("company_id"), c.Params("blog_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}
