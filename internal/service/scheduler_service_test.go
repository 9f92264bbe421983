package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

func intp(v int) *int { return &v }

type schedulerFixture struct {
	*contentFixture
	ccr       *stubChannelConfigRepo
	enqueuer  *stubEnqueuer
	scheduler SchedulerService
}

func newSchedulerFixture(config *models.ChannelConfig) *schedulerFixture {
	cf := newContentFixture()
	f := &schedulerFixture{
		contentFixture: cf,
		ccr:            &stubChannelConfigRepo{config: config},
		enqueuer:       &stubEnqueuer{},
	}
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	spreader := newTestSpreader(cf.pr, cf.nr, cf.br, f.enqueuer, now)
	f.scheduler = NewSchedulerService(cf.cr, f.ccr, cf.svc, spreader)
	return f
}

func TestGenerateScheduledPostsFullCycle(t *testing.T) {
	f := newSchedulerFixture(&models.ChannelConfig{
		CompanyID:           "company-1",
		InstagramPostCount:  intp(2),
		FacebookPostCount:   intp(0),
		LinkedinPostCount:   intp(1),
		NewsletterPostCount: intp(1),
		BlogPostCount:       intp(1),
	})

	result, err := f.scheduler.GenerateScheduledPosts(context.Background(), "company-1", scheduleReq())

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Len(t, result.PostIDs, 5)
	assert.Equal(t, map[string]int{
		models.ChannelInstagram:  2,
		models.ChannelFacebook:   0,
		models.ChannelLinkedin:   1,
		models.ChannelNewsletter: 1,
		models.ChannelBlog:       1,
	}, result.Counts)

	// channel results come back in the fixed channel order
	require.Len(t, result.Channels, 5)
	assert.Equal(t, models.AllChannels(), channelOrder(result.Channels))
	assert.Empty(t, result.Channels[1].PostIDs)

	// every generated document got a schedule write
	assert.Len(t, f.pr.schedules, 3)
	assert.Len(t, f.nr.schedules, 1)
	assert.Len(t, f.br.schedules, 1)
	assert.Len(t, f.enqueuer.tasks, 5)
}

func TestGenerateScheduledPostsDefaultsMissingCountsToOne(t *testing.T) {
	f := newSchedulerFixture(&models.ChannelConfig{CompanyID: "company-1"})

	result, err := f.scheduler.GenerateScheduledPosts(context.Background(), "company-1", scheduleReq())

	require.NoError(t, err)
	assert.Len(t, result.PostIDs, 5)
	for _, channel := range models.AllChannels() {
		assert.Equal(t, 1, result.Counts[channel])
	}
}

func TestGenerateScheduledPostsUnknownCompany(t *testing.T) {
	f := newSchedulerFixture(&models.ChannelConfig{})

	_, err := f.scheduler.GenerateScheduledPosts(context.Background(), "ghost", scheduleReq())

	require.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateScheduledPostsMissingConfig(t *testing.T) {
	f := newSchedulerFixture(nil)

	_, err := f.scheduler.GenerateScheduledPosts(context.Background(), "company-1", scheduleReq())

	require.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateScheduledPostsSiblingFailureSurfaces(t *testing.T) {
	f := newSchedulerFixture(&models.ChannelConfig{
		CompanyID:          "company-1",
		FacebookPostCount:  intp(3),
		InstagramPostCount: intp(1),
	})
	f.planner.failAt[models.ChannelFacebook] = 2

	result, err := f.scheduler.GenerateScheduledPosts(context.Background(), "company-1", scheduleReq())

	require.Error(t, err)
	var plannerErr *PlannerError
	require.ErrorAs(t, err, &plannerErr)
	assert.Equal(t, models.ChannelFacebook, plannerErr.Channel)
	assert.Equal(t, 2, plannerErr.Unit)

	require.NotNil(t, result)
	assert.Equal(t, "error", result.Status)

	// sibling outcomes are still reported
	byChannel := make(map[string]int)
	for _, cr := range result.Channels {
		byChannel[cr.Channel] = len(cr.PostIDs)
	}
	assert.Equal(t, 1, byChannel[models.ChannelInstagram])
	assert.Equal(t, 1, byChannel[models.ChannelFacebook])

	// nothing was spread
	assert.Empty(t, f.pr.schedules)
	assert.Empty(t, f.enqueuer.tasks)
}

func channelOrder(results []transfer.ChannelResult) []string {
	out := make([]string, len(results))
	for i, cr := range results {
		out[i] = cr.Channel
	}
	return out
}
