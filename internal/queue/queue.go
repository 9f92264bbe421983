package queue

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

func EnqueuePublish(asynqClient *asynq.Client, payload PublishPostPayload, at time.Time) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessAt(at))
	if err != nil {
		return err
	}

	slog.Info("publish task scheduled", "channel", payload.Channel, "post_id", payload.PostID, "at", at)
	return nil
}

// SchedulePublish satisfies the spreader's enqueue hook.
func (e *Enqueuer) SchedulePublish(companyID, channel, docID string, at time.Time) error {
	return EnqueuePublish(e.client, PublishPostPayload{
		CompanyID: companyID,
		Channel:   channel,
		PostID:    docID,
	}, at)
}
