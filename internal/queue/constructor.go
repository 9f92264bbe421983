package queue

import (
	"github.com/hibiken/asynq"

	"github.com/maheshrc27/marketing-planner/internal/repository"
)

type Queue struct {
	pr repository.PostRepository
	nr repository.NewsletterRepository
	br repository.BlogRepository
}

func NewQueue(
	pr repository.PostRepository,
	nr repository.NewsletterRepository,
	br repository.BlogRepository) *Queue {
	return &Queue{
		pr: pr,
		nr: nr,
		br: br,
	}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	CompanyID string `json:"company_id"`
	Channel   string `json:"channel"`
	PostID    string `json:"post_id"`
}

// Enqueuer wraps an asynq client so the spreader can schedule deferred
// publish tasks without knowing about asynq.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}
