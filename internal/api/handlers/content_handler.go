package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type ContentHandler struct {
	scheduler service.SchedulerService
	content   service.ContentService
}

func NewContentHandler(scheduler service.SchedulerService, content service.ContentService) *ContentHandler {
	return &ContentHandler{scheduler: scheduler, content: content}
}

// CreateSchedule runs one full generation cycle for a company: every
// configured channel generates its posts, then each batch is spread across
// the target month.
func (h *ContentHandler) CreateSchedule(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var sc transfer.ScheduleCreation
	if err := c.BodyParser(&sc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if sc.Theme == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "theme is required",
		})
	}
	if sc.MonthID < 1 || sc.MonthID > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "month_id must be between 1 and 12",
		})
	}

	result, err := h.scheduler.GenerateScheduledPosts(c.Context(), companyID, &sc)
	if err != nil {
		if result != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":    err.Error(),
				"channels": result.Channels,
			})
		}
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	channel, ok := GetChannel(c)
	if !ok {
		return nil
	}
	companyID := c.Params("company_id")

	posts, err := h.content.ListPosts(c.Context(), channel, companyID)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *ContentHandler) GetPost(c *fiber.Ctx) error {
	channel, ok := GetChannel(c)
	if !ok {
		return nil
	}
	companyID := c.Params("company_id")
	postID := c.Params("post_id")

	post, err := h.content.GetPost(c.Context(), channel, companyID, postID)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *ContentHandler) UpdatePost(c *fiber.Ctx) error {
	channel, ok := GetChannel(c)
	if !ok {
		return nil
	}
	companyID := c.Params("company_id")
	postID := c.Params("post_id")

	var pu transfer.PostUpdate
	if err := c.BodyParser(&pu); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.content.UpdatePost(c.Context(), channel, companyID, postID, &pu); err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post updated successfully",
	})
}

func (h *ContentHandler) RemovePost(c *fiber.Ctx) error {
	channel, ok := GetChannel(c)
	if !ok {
		return nil
	}
	companyID := c.Params("company_id")
	postID := c.Params("post_id")

	if err := h.content.RemovePost(c.Context(), channel, companyID, postID); err != nil {
		return ServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
