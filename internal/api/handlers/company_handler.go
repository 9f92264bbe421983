package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type CompanyHandler struct {
	s service.CompanyService
}

func NewCompanyHandler(s service.CompanyService) *CompanyHandler {
	return &CompanyHandler{s: s}
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var cc transfer.CompanyCreation
	if err := c.BodyParser(&cc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	companyID, err := h.s.CreateCompany(c.Context(), &cc)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"company_id": companyID,
	})
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.s.GetCompany(c.Context(), c.Params("company_id"))
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(company)
}

func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	companies, err := h.s.ListCompanies(c.Context(), page, limit)
	if err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(companies)
}

func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.s.UpdateCompany(c.Context(), c.Params("company_id"), fields); err != nil {
		return ServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Company updated successfully",
	})
}

func (h *CompanyHandler) RemoveCompany(c *fiber.Ctx) error {
	if err := h.s.RemoveCompany(c.Context(), c.Params("company_id")); err != nil {
		return ServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
