package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

type ThemeRepository interface {
	Save(ctx context.Context, themeSet *models.ThemeSet) error
	ListByCompany(ctx context.Context, companyID string) ([]*models.ThemeSet, error)
}

type themeRepository struct {
	client *firestore.Client
}

func NewThemeRepository(client *firestore.Client) ThemeRepository {
	return &themeRepository{client: client}
}

// Save upserts one month's theme pair, keyed by the month name so a
// regeneration replaces the previous pair.
func (r *themeRepository) Save(ctx context.Context, themeSet *models.ThemeSet) error {
	_, err := r.client.Collection("themes").Doc(themeSet.CompanyID).
		Collection("months").Doc(themeSet.Month).Set(ctx, themeSet)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *themeRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.ThemeSet, error) {
	iter := r.client.Collection("themes").Doc(companyID).Collection("months").Documents(ctx)
	defer iter.Stop()

	var sets []*models.ThemeSet
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var themeSet models.ThemeSet
		if err := doc.DataTo(&themeSet); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		sets = append(sets, &themeSet)
	}
	return sets, nil
}
