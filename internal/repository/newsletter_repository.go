package repository

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *models.Newsletter) error
	GetByID(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error)
	ListByCompany(ctx context.Context, companyID string) ([]*models.Newsletter, error)
	SetSchedule(ctx context.Context, companyID, newsletterID string, at time.Time) error
	UpdateStatus(ctx context.Context, companyID, newsletterID, docStatus string) error
	ListDue(ctx context.Context, now time.Time) ([]*models.Newsletter, error)
}

type newsletterRepository struct {
	client *firestore.Client
}

func NewNewsletterRepository(client *firestore.Client) NewsletterRepository {
	return &newsletterRepository{client: client}
}

// newsletters addresses channels/newsletter/companies/{companyID}/newsletters.
func (r *newsletterRepository) newsletters(companyID string) *firestore.CollectionRef {
	return r.client.Collection("channels").Doc("newsletter").
		Collection("companies").Doc(companyID).Collection("newsletters")
}

func (r *newsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter) error {
	_, err := r.newsletters(newsletter.CompanyID).Doc(newsletter.ID).Set(ctx, newsletter)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *newsletterRepository) GetByID(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error) {
	doc, err := r.newsletters(companyID).Doc(newsletterID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var newsletter models.Newsletter
	if err := doc.DataTo(&newsletter); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	newsletter.ID = doc.Ref.ID

	return &newsletter, nil
}

func (r *newsletterRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.Newsletter, error) {
	iter := r.newsletters(companyID).Documents(ctx)
	defer iter.Stop()

	var newsletters []*models.Newsletter
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var newsletter models.Newsletter
		if err := doc.DataTo(&newsletter); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		newsletter.ID = doc.Ref.ID
		newsletters = append(newsletters, &newsletter)
	}
	return newsletters, nil
}

func (r *newsletterRepository) SetSchedule(ctx context.Context, companyID, newsletterID string, at time.Time) error {
	_, err := r.newsletters(companyID).Doc(newsletterID).Update(ctx, []firestore.Update{
		{Path: "scheduled_time", Value: at.Format(time.RFC3339)},
		{Path: "scheduled_datetime", Value: at},
		{Path: "status", Value: models.PostStatusScheduled},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *newsletterRepository) UpdateStatus(ctx context.Context, companyID, newsletterID, docStatus string) error {
	_, err := r.newsletters(companyID).Doc(newsletterID).Update(ctx, []firestore.Update{
		{Path: "status", Value: docStatus},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *newsletterRepository) ListDue(ctx context.Context, now time.Time) ([]*models.Newsletter, error) {
	iter := r.client.CollectionGroup("newsletters").
		Where("status", "==", models.PostStatusScheduled).
		Where("scheduled_datetime", "<=", now).
		Documents(ctx)
	defer iter.Stop()

	var newsletters []*models.Newsletter
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var newsletter models.Newsletter
		if err := doc.DataTo(&newsletter); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		newsletter.ID = doc.Ref.ID
		newsletters = append(newsletters, &newsletter)
	}
	return newsletters, nil
}
