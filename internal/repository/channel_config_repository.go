package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

type ChannelConfigRepository interface {
	Get(ctx context.Context, companyID string) (*models.ChannelConfig, error)
	Set(ctx context.Context, config *models.ChannelConfig) error
}

type channelConfigRepository struct {
	client *firestore.Client
}

func NewChannelConfigRepository(client *firestore.Client) ChannelConfigRepository {
	return &channelConfigRepository{client: client}
}

func (r *channelConfigRepository) Get(ctx context.Context, companyID string) (*models.ChannelConfig, error) {
	doc, err := r.client.Collection("channel_config").Doc(companyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var config models.ChannelConfig
	if err := doc.DataTo(&config); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	config.CompanyID = doc.Ref.ID

	return &config, nil
}

func (r *channelConfigRepository) Set(ctx context.Context, config *models.ChannelConfig) error {
	// MergeAll needs map data, so absent counts stay untouched rather than
	// being overwritten with nulls.
	data := map[string]interface{}{
		"company_id":        config.CompanyID,
		"instagram_active":  config.InstagramActive,
		"facebook_active":   config.FacebookActive,
		"linkedin_active":   config.LinkedinActive,
		"newsletter_active": config.NewsletterActive,
		"blog_active":       config.BlogActive,
		"updated_at":        firestore.ServerTimestamp,
	}
	counts := map[string]*int{
		"instagram_post_count":  config.InstagramPostCount,
		"facebook_post_count":   config.FacebookPostCount,
		"linkedin_post_count":   config.LinkedinPostCount,
		"newsletter_post_count": config.NewsletterPostCount,
		"blog_post_count":       config.BlogPostCount,
	}
	for field, v := range counts {
		if v != nil {
			data[field] = *v
		}
	}

	_, err := r.client.Collection("channel_config").Doc(config.CompanyID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
