package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type ThemeService interface {
	GenerateThemes(ctx context.Context, companyID string, tg *transfer.ThemeGeneration) (*models.ThemeSet, error)
	ListThemes(ctx context.Context, companyID string) ([]*models.ThemeSet, error)
}

type themeService struct {
	cr     repository.CompanyRepository
	tr     repository.ThemeRepository
	writer TextWriter
}

func NewThemeService(cr repository.CompanyRepository, tr repository.ThemeRepository, writer TextWriter) ThemeService {
	return &themeService{cr: cr, tr: tr, writer: writer}
}

// GenerateThemes asks the writer for a fresh pair of monthly themes, feeding
// it the titles already used so repeats are avoided, and persists the result.
func (s *themeService) GenerateThemes(ctx context.Context, companyID string, tg *transfer.ThemeGeneration) (*models.ThemeSet, error) {
	if tg.Month == "" {
		return nil, fmt.Errorf("month is required")
	}

	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	existing, err := s.tr.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	var usedTitles []string
	for _, set := range existing {
		for _, theme := range set.Themes {
			usedTitles = append(usedTitles, theme.Title)
		}
	}

	themeSet, err := s.writer.GenerateThemes(ctx, company, tg.Month, usedTitles)
	if err != nil {
		return nil, fmt.Errorf("generating themes: %w", err)
	}

	themeSet.Month = tg.Month
	themeSet.CompanyID = companyID
	if err := s.tr.Save(ctx, themeSet); err != nil {
		return nil, fmt.Errorf("saving themes: %w", err)
	}

	return themeSet, nil
}

func (s *themeService) ListThemes(ctx context.Context, companyID string) ([]*models.ThemeSet, error) {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}
	return s.tr.ListByCompany(ctx, companyID)
}
