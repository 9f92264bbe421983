package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

// ErrCompanyExists is returned when a create collides with an existing
// company name.
var ErrCompanyExists = errors.New("company already exists")

type CompanyService interface {
	CreateCompany(ctx context.Context, cc *transfer.CompanyCreation) (string, error)
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)
	ListCompanies(ctx context.Context, page, limit int) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, companyID string, fields map[string]interface{}) error
	RemoveCompany(ctx context.Context, companyID string) error
	GetChannelConfig(ctx context.Context, companyID string) (*models.ChannelConfig, error)
	SetChannelConfig(ctx context.Context, companyID string, cu *transfer.ChannelConfigUpdate) error
}

type companyService struct {
	cr  repository.CompanyRepository
	ccr repository.ChannelConfigRepository
}

func NewCompanyService(cr repository.CompanyRepository, ccr repository.ChannelConfigRepository) CompanyService {
	return &companyService{cr: cr, ccr: ccr}
}

func (s *companyService) CreateCompany(ctx context.Context, cc *transfer.CompanyCreation) (string, error) {
	if cc.CompanyName == "" {
		return "", fmt.Errorf("company_name is required")
	}

	exists, err := s.cr.ExistsByName(ctx, cc.CompanyName)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrCompanyExists
	}

	company := &models.Company{
		CompanyName:       cc.CompanyName,
		CompanyURL:        cc.CompanyURL,
		CompanyInfo:       cc.CompanyInfo,
		Address:           cc.Address,
		Industry:          cc.Industry,
		Keywords:          cc.Keywords,
		TargetGroup:       cc.TargetGroup,
		ToneAnalysis:      cc.ToneAnalysis,
		Products:          cc.Products,
		ProductCategories: cc.ProductCategories,
		ThemeColors:       cc.ThemeColors,
		LogoURL:           cc.LogoURL,
		FaviconURL:        cc.FaviconURL,
	}

	return s.cr.Create(ctx, company)
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, page, limit int) ([]*models.Company, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.cr.List(ctx, page, limit)
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, fields map[string]interface{}) error {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}
	if len(fields) == 0 {
		return nil
	}
	return s.cr.Update(ctx, companyID, fields)
}

func (s *companyService) RemoveCompany(ctx context.Context, companyID string) error {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}
	return s.cr.Remove(ctx, companyID)
}

func (s *companyService) GetChannelConfig(ctx context.Context, companyID string) (*models.ChannelConfig, error) {
	config, err := s.ccr.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("channel config for company %s: %w", companyID, ErrNotFound)
	}
	return config, nil
}

func (s *companyService) SetChannelConfig(ctx context.Context, companyID string, cu *transfer.ChannelConfigUpdate) error {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	config := &models.ChannelConfig{
		CompanyID:           companyID,
		InstagramPostCount:  cu.InstagramPostCount,
		FacebookPostCount:   cu.FacebookPostCount,
		LinkedinPostCount:   cu.LinkedinPostCount,
		NewsletterPostCount: cu.NewsletterPostCount,
		BlogPostCount:       cu.BlogPostCount,
		InstagramActive:     cu.InstagramActive,
		FacebookActive:      cu.FacebookActive,
		LinkedinActive:      cu.LinkedinActive,
		NewsletterActive:    cu.NewsletterActive,
		BlogActive:          cu.BlogActive,
	}

	return s.ccr.Set(ctx, config)
}
