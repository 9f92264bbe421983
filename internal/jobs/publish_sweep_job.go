package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
)

// PublishSweepJob is the cron safety net behind the publish queue: it marks
// any scheduled document whose publish instant has passed as published, so a
// missed or dropped queue task never leaves content stuck in scheduled.
type PublishSweepJob struct {
	pr repository.PostRepository
	nr repository.NewsletterRepository
	br repository.BlogRepository
}

func NewPublishSweepJob(
	pr repository.PostRepository,
	nr repository.NewsletterRepository,
	br repository.BlogRepository) *PublishSweepJob {
	return &PublishSweepJob{
		pr: pr,
		nr: nr,
		br: br,
	}
}

func (c *PublishSweepJob) Run() {
	ctx := context.Background()
	now := time.Now().UTC()

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	posts, err := c.pr.ListDue(ctx, now)
	if err != nil {
		slog.Info(err.Error())
	}
	for _, post := range posts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(post *models.Post) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.pr.UpdateStatus(ctx, post.Channel, post.CompanyID, post.ID, models.PostStatusPublished); err != nil {
				slog.Info("Unable to publish post", "channel", post.Channel, "post_id", post.ID)
			}
		}(post)
	}

	newsletters, err := c.nr.ListDue(ctx, now)
	if err != nil {
		slog.Info(err.Error())
	}
	for _, newsletter := range newsletters {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(newsletter *models.Newsletter) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.nr.UpdateStatus(ctx, newsletter.CompanyID, newsletter.ID, models.PostStatusPublished); err != nil {
				slog.Info("Unable to publish newsletter", "newsletter_id", newsletter.ID)
			}
		}(newsletter)
	}

	blogs, err := c.br.ListDue(ctx, now)
	if err != nil {
		slog.Info(err.Error())
	}
	for _, blog := range blogs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(blog *models.Blog) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.br.UpdateStatus(ctx, blog.CompanyID, blog.ID, models.PostStatusPublished); err != nil {
				slog.Info("Unable to publish blog", "blog_id", blog.ID)
			}
		}(blog)
	}

	wg.Wait()
}
