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

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, companyID, blogID string) (*models.Blog, error)
	ListByCompany(ctx context.Context, companyID string) ([]*models.Blog, error)
	SetSchedule(ctx context.Context, companyID, blogID string, at time.Time) error
	UpdateStatus(ctx context.Context, companyID, blogID, docStatus string) error
	ListDue(ctx context.Context, now time.Time) ([]*models.Blog, error)
}

type blogRepository struct {
	client *firestore.Client
}

func NewBlogRepository(client *firestore.Client) BlogRepository {
	return &blogRepository{client: client}
}

// blogs addresses channels/blog/companies/{companyID}/blogs.
func (r *blogRepository) blogs(companyID string) *firestore.CollectionRef {
	return r.client.Collection("channels").Doc("blog").
		Collection("companies").Doc(companyID).Collection("blogs")
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	_, err := r.blogs(blog.CompanyID).Doc(blog.ID).Set(ctx, blog)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, companyID, blogID string) (*models.Blog, error) {
	doc, err := r.blogs(companyID).Doc(blogID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var blog models.Blog
	if err := doc.DataTo(&blog); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	blog.ID = doc.Ref.ID

	return &blog, nil
}

func (r *blogRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.Blog, error) {
	iter := r.blogs(companyID).Documents(ctx)
	defer iter.Stop()

	var blogs []*models.Blog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var blog models.Blog
		if err := doc.DataTo(&blog); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		blog.ID = doc.Ref.ID
		blogs = append(blogs, &blog)
	}
	return blogs, nil
}

func (r *blogRepository) SetSchedule(ctx context.Context, companyID, blogID string, at time.Time) error {
	_, err := r.blogs(companyID).Doc(blogID).Update(ctx, []firestore.Update{
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

func (r *blogRepository) UpdateStatus(ctx context.Context, companyID, blogID, docStatus string) error {
	_, err := r.blogs(companyID).Doc(blogID).Update(ctx, []firestore.Update{
		{Path: "status", Value: docStatus},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *blogRepository) ListDue(ctx context.Context, now time.Time) ([]*models.Blog, error) {
	iter := r.client.CollectionGroup("blogs").
		Where("status", "==", models.PostStatusScheduled).
		Where("scheduled_datetime", "<=", now).
		Documents(ctx)
	defer iter.Stop()

	var blogs []*models.Blog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var blog models.Blog
		if err := doc.DataTo(&blog); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		blog.ID = doc.Ref.ID
		blogs = append(blogs, &blog)
	}
	return blogs, nil
}
