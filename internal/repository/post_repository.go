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

type PostRepository interface {
	Create(ctx context.Context, channel string, post *models.Post) (string, error)
	GetByID(ctx context.Context, channel, companyID, postID string) (*models.Post, error)
	ListByCompany(ctx context.Context, channel, companyID string) ([]*models.Post, error)
	CountByTheme(ctx context.Context, channel, companyID string, monthID, themeIndex int) (int, error)
	SetSchedule(ctx context.Context, channel, companyID, postID string, at time.Time) error
	UpdateStatus(ctx context.Context, channel, companyID, postID, postStatus string) error
	Update(ctx context.Context, channel, companyID, postID string, fields map[string]interface{}) error
	Remove(ctx context.Context, channel, companyID, postID string) error
	ListDue(ctx context.Context, now time.Time) ([]*models.Post, error)
}

type postRepository struct {
	client *firestore.Client
}

func NewPostRepository(client *firestore.Client) PostRepository {
	return &postRepository{client: client}
}

// posts addresses {channel}_posts/{companyID}/posts, the per-channel
// subcollection holding one document per post.
func (r *postRepository) posts(channel, companyID string) *firestore.CollectionRef {
	return r.client.Collection(channel + "_posts").Doc(companyID).Collection("posts")
}

func (r *postRepository) Create(ctx context.Context, channel string, post *models.Post) (string, error) {
	ref, _, err := r.posts(channel, post.CompanyID).Add(ctx, post)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return ref.ID, nil
}

func (r *postRepository) GetByID(ctx context.Context, channel, companyID, postID string) (*models.Post, error) {
	doc, err := r.posts(channel, companyID).Doc(postID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var post models.Post
	if err := doc.DataTo(&post); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

func (r *postRepository) ListByCompany(ctx context.Context, channel, companyID string) ([]*models.Post, error) {
	iter := r.posts(channel, companyID).Documents(ctx)
	defer iter.Stop()

	var posts []*models.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var post models.Post
		if err := doc.DataTo(&post); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}
	return posts, nil
}

// CountByTheme counts the posts already persisted for one
// (company, month, theme) group within a channel's collection.
func (r *postRepository) CountByTheme(ctx context.Context, channel, companyID string, monthID, themeIndex int) (int, error) {
	iter := r.posts(channel, companyID).
		Where("month_id", "==", monthID).
		Where("theme_index", "==", themeIndex).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return 0, err
		}
		count++
	}
	return count, nil
}

func (r *postRepository) SetSchedule(ctx context.Context, channel, companyID, postID string, at time.Time) error {
	_, err := r.posts(channel, companyID).Doc(postID).Update(ctx, []firestore.Update{
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

func (r *postRepository) UpdateStatus(ctx context.Context, channel, companyID, postID, postStatus string) error {
	_, err := r.posts(channel, companyID).Doc(postID).Update(ctx, []firestore.Update{
		{Path: "status", Value: postStatus},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, channel, companyID, postID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: firestore.ServerTimestamp})

	_, err := r.posts(channel, companyID).Doc(postID).Update(ctx, updates)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, channel, companyID, postID string) error {
	_, err := r.posts(channel, companyID).Doc(postID).Delete(ctx)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// ListDue returns scheduled posts across all channels and companies whose
// publish instant has passed. Relies on every channel storing its posts in a
// subcollection named "posts".
func (r *postRepository) ListDue(ctx context.Context, now time.Time) ([]*models.Post, error) {
	iter := r.client.CollectionGroup("posts").
		Where("status", "==", models.PostStatusScheduled).
		Where("scheduled_datetime", "<=", now).
		Documents(ctx)
	defer iter.Stop()

	var posts []*models.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		var post models.Post
		if err := doc.DataTo(&post); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}
	return posts, nil
}
