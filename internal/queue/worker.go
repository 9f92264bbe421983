package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/marketing-planner/internal/models"
)

func (j *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.PublishDocument(ctx, payload)
}

// PublishDocument flips one scheduled document to published. Documents that
// were deleted or moved off the scheduled status since enqueue are skipped.
func (j *Queue) PublishDocument(ctx context.Context, payload PublishPostPayload) error {
	switch payload.Channel {
	case models.ChannelNewsletter:
		newsletter, err := j.nr.GetByID(ctx, payload.CompanyID, payload.PostID)
		if err != nil {
			return err
		}
		if newsletter == nil || newsletter.Status != models.PostStatusScheduled {
			slog.Info("skipping publish, newsletter no longer scheduled", "newsletter_id", payload.PostID)
			return nil
		}
		return j.nr.UpdateStatus(ctx, payload.CompanyID, payload.PostID, models.PostStatusPublished)
	case models.ChannelBlog:
		blog, err := j.br.GetByID(ctx, payload.CompanyID, payload.PostID)
		if err != nil {
			return err
		}
		if blog == nil || blog.Status != models.PostStatusScheduled {
			slog.Info("skipping publish, blog no longer scheduled", "blog_id", payload.PostID)
			return nil
		}
		return j.br.UpdateStatus(ctx, payload.CompanyID, payload.PostID, models.PostStatusPublished)
	default:
		post, err := j.pr.GetByID(ctx, payload.Channel, payload.CompanyID, payload.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.Status != models.PostStatusScheduled {
			slog.Info("skipping publish, post no longer scheduled", "channel", payload.Channel, "post_id", payload.PostID)
			return nil
		}
		return j.pr.UpdateStatus(ctx, payload.Channel, payload.CompanyID, payload.PostID, models.PostStatusPublished)
	}
}
