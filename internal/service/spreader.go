package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
)

// PublishScheduler enqueues a deferred publish for one document. Enqueue
// failures are logged by the spreader; the cron sweep picks up anything the
// queue missed.
type PublishScheduler interface {
	SchedulePublish(companyID, channel, docID string, at time.Time) error
}

type Spreader interface {
	SpreadPostsOverMonth(ctx context.Context, postIDs []string, monthID int, channel, companyID string) error
}

// monthDays is indexed by month number; February is treated as 28 days in
// every year so slot math stays identical across years.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const publishHour = 10

type spreader struct {
	pr    repository.PostRepository
	nr    repository.NewsletterRepository
	br    repository.BlogRepository
	queue PublishScheduler

	now        func() time.Time
	writeDelay time.Duration
}

func NewSpreader(pr repository.PostRepository, nr repository.NewsletterRepository, br repository.BlogRepository, queue PublishScheduler) Spreader {
	return &spreader{
		pr:         pr,
		nr:         nr,
		br:         br,
		queue:      queue,
		now:        time.Now,
		writeDelay: 100 * time.Millisecond,
	}
}

// SpreadPostsOverMonth distributes the documents evenly across the target
// month at 10:00 UTC and flips each one to scheduled. The i-th of k documents
// lands on day floor(i*totalDays/k)+1, clamped to the month's last day. A
// month earlier than the current one targets next year.
func (s *spreader) SpreadPostsOverMonth(ctx context.Context, postIDs []string, monthID int, channel, companyID string) error {
	if len(postIDs) == 0 {
		return nil
	}
	if monthID < 1 || monthID > 12 {
		return fmt.Errorf("invalid month %d", monthID)
	}

	now := s.now()
	year := now.Year()
	if monthID < int(now.Month()) {
		year++
	}

	totalDays := monthDays[monthID]
	spacing := float64(totalDays) / float64(len(postIDs))

	for i, postID := range postIDs {
		day := int(float64(i)*spacing) + 1
		if day > totalDays {
			day = totalDays
		}
		at := time.Date(year, time.Month(monthID), day, publishHour, 0, 0, 0, time.UTC)

		var err error
		switch channel {
		case models.ChannelNewsletter:
			err = s.nr.SetSchedule(ctx, companyID, postID, at)
		case models.ChannelBlog:
			err = s.br.SetSchedule(ctx, companyID, postID, at)
		default:
			err = s.pr.SetSchedule(ctx, channel, companyID, postID, at)
		}
		if err != nil {
			return fmt.Errorf("scheduling %s post %s: %w", channel, postID, err)
		}

		if s.queue != nil {
			if err := s.queue.SchedulePublish(companyID, channel, postID, at); err != nil {
				slog.Error("enqueue publish failed", "channel", channel, "post_id", postID, "error", err)
			}
		}

		if s.writeDelay > 0 && i < len(postIDs)-1 {
			time.Sleep(s.writeDelay)
		}
	}

	return nil
}
