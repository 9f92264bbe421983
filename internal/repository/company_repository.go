package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (string, error)
	GetByID(ctx context.Context, companyID string) (*models.Company, error)
	List(ctx context.Context, page, limit int) ([]*models.Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, companyID string, fields map[string]interface{}) error
	Remove(ctx context.Context, companyID string) error
}

type companyRepository struct {
	client *firestore.Client
}

func NewCompanyRepository(client *firestore.Client) CompanyRepository {
	return &companyRepository{client: client}
}

func (r *companyRepository) companies() *firestore.CollectionRef {
	return r.client.Collection("companies")
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) (string, error) {
	ref, _, err := r.companies().Add(ctx, company)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return ref.ID, nil
}

func (r *companyRepository) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	doc, err := r.companies().Doc(companyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var company models.Company
	if err := doc.DataTo(&company); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	company.ID = doc.Ref.ID

	return &company, nil
}

func (r *companyRepository) List(ctx context.Context, page, limit int) ([]*models.Company, error) {
	if page < 1 {
		page = 1
	}
	iter := r.companies().Offset((page - 1) * limit).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var companies []*models.Company
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var company models.Company
		if err := doc.DataTo(&company); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		company.ID = doc.Ref.ID
		companies = append(companies, &company)
	}
	return companies, nil
}

func (r *companyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	iter := r.companies().Where("company_name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return true, nil
}

func (r *companyRepository) Update(ctx context.Context, companyID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: firestore.ServerTimestamp})

	_, err := r.companies().Doc(companyID).Update(ctx, updates)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *companyRepository) Remove(ctx context.Context, companyID string) error {
	_, err := r.companies().Doc(companyID).Delete(ctx)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
