package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

// SchedulerService orchestrates one generation cycle: every channel generates
// its configured number of documents concurrently, then each channel's batch
// is spread across the target month.
type SchedulerService interface {
	GenerateScheduledPosts(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*transfer.ScheduleResult, error)
}

type schedulerService struct {
	cr       repository.CompanyRepository
	ccr      repository.ChannelConfigRepository
	content  ContentService
	spreader Spreader
}

func NewSchedulerService(cr repository.CompanyRepository, ccr repository.ChannelConfigRepository, content ContentService, spreader Spreader) SchedulerService {
	return &schedulerService{
		cr:       cr,
		ccr:      ccr,
		content:  content,
		spreader: spreader,
	}
}

func (s *schedulerService) GenerateScheduledPosts(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*transfer.ScheduleResult, error) {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching company: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	config, err := s.ccr.Get(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching channel config: %w", err)
	}
	if config == nil {
		return nil, fmt.Errorf("channel config for company %s: %w", companyID, ErrNotFound)
	}

	channels := models.AllChannels()
	counts := make(map[string]int, len(channels))
	for _, channel := range channels {
		counts[channel] = config.Count(channel)
	}

	results := make([]transfer.ChannelResult, len(channels))
	errs := make([]error, len(channels))

	var wg sync.WaitGroup
	for i, channel := range channels {
		wg.Add(1)
		go func(i int, channel string) {
			defer wg.Done()
			batch, err := s.content.GenerateChannelPosts(ctx, channel, counts[channel], companyID, req)
			results[i] = transfer.ChannelResult{
				Channel:          channel,
				PostIDs:          batch.PostIDs,
				CacheInvalidated: batch.CacheInvalidated,
			}
			if err != nil {
				results[i].Error = err.Error()
				errs[i] = err
			}
		}(i, channel)
	}
	wg.Wait()

	result := &transfer.ScheduleResult{
		Counts:   counts,
		Channels: results,
		PostIDs:  []string{},
	}

	for i, channel := range channels {
		if errs[i] != nil {
			result.Status = "error"
			slog.Error("channel generation failed", "channel", channel, "company_id", companyID, "error", errs[i])
			return result, errs[i]
		}
	}

	for i, channel := range channels {
		wg.Add(1)
		go func(i int, channel string) {
			defer wg.Done()
			if err := s.spreader.SpreadPostsOverMonth(ctx, results[i].PostIDs, req.MonthID, channel, companyID); err != nil {
				errs[i] = err
			}
		}(i, channel)
	}
	wg.Wait()

	for i := range channels {
		if errs[i] != nil {
			result.Status = "error"
			return result, errs[i]
		}
	}

	result.Status = "success"
	for i := range channels {
		result.PostIDs = append(result.PostIDs, results[i].PostIDs...)
	}

	return result, nil
}
