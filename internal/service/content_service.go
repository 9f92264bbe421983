package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/maheshrc27/marketing-planner/internal/cache"
	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/repository"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type ContentService interface {
	GenerateChannelPosts(ctx context.Context, channel string, count int, companyID string, req *transfer.ScheduleCreation) (*transfer.ChannelBatch, error)
	GenerateNewsletter(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Newsletter, error)
	GenerateBlog(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Blog, error)
	ListPosts(ctx context.Context, channel, companyID string) ([]*models.Post, error)
	GetPost(ctx context.Context, channel, companyID, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, channel, companyID, postID string, pu *transfer.PostUpdate) error
	RemovePost(ctx context.Context, channel, companyID, postID string) error
	ListNewsletters(ctx context.Context, companyID string) ([]*models.Newsletter, error)
	GetNewsletter(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error)
	ListBlogs(ctx context.Context, companyID string) ([]*models.Blog, error)
	GetBlog(ctx context.Context, companyID, blogID string) (*models.Blog, error)
}

type contentService struct {
	cr      repository.CompanyRepository
	pr      repository.PostRepository
	nr      repository.NewsletterRepository
	br      repository.BlogRepository
	planner Planner
	images  ImageGenerator
	writer  TextWriter
	storage MediaStorage
	cache   Cache

	// variationLocks serializes variation-index assignment per
	// (channel, company, month, theme) group so concurrent runs never hand
	// out the same index twice.
	variationLocks sync.Map
}

func NewContentService(
	cr repository.CompanyRepository,
	pr repository.PostRepository,
	nr repository.NewsletterRepository,
	br repository.BlogRepository,
	planner Planner,
	images ImageGenerator,
	writer TextWriter,
	storage MediaStorage,
	c Cache,
) ContentService {
	return &contentService{
		cr:      cr,
		pr:      pr,
		nr:      nr,
		br:      br,
		planner: planner,
		images:  images,
		writer:  writer,
		storage: storage,
		cache:   c,
	}
}

func (s *contentService) groupLock(channel, companyID string, monthID, themeIndex int) *sync.Mutex {
	key := fmt.Sprintf("%s/%s/%d/%d", channel, companyID, monthID, themeIndex)
	lock, _ := s.variationLocks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// GenerateChannelPosts produces count units for one channel. Social channels
// go through planner, image generation, upload and the posts collection;
// newsletter and blog go through the long-form writer. The batch is
// all-or-nothing: the first failed unit aborts, and the returned error names
// the channel and the 1-based unit. IDs persisted before the failure are still
// returned so callers can report them.
func (s *contentService) GenerateChannelPosts(ctx context.Context, channel string, count int, companyID string, req *transfer.ScheduleCreation) (*transfer.ChannelBatch, error) {
	batch := &transfer.ChannelBatch{PostIDs: []string{}}
	if count <= 0 {
		return batch, nil
	}

	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return batch, fmt.Errorf("fetching company: %w", err)
	}
	if company == nil {
		return batch, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	for unit := 1; unit <= count; unit++ {
		var id string
		var err error
		if models.IsSocialChannel(channel) {
			id, err = s.generateSocialPost(ctx, channel, unit, companyID, company, req)
		} else {
			id, err = s.generateDocument(ctx, channel, unit, companyID, company, req)
		}
		if err != nil {
			return batch, err
		}
		batch.PostIDs = append(batch.PostIDs, id)
	}

	invalidated, err := s.cache.Delete(ctx, cache.PostListKey(channel, companyID))
	if err != nil {
		slog.Error("cache invalidation failed", "channel", channel, "company_id", companyID, "error", err)
	} else {
		batch.CacheInvalidated = invalidated
	}

	return batch, nil
}

func (s *contentService) generateSocialPost(ctx context.Context, channel string, unit int, companyID string, company *models.Company, req *transfer.ScheduleCreation) (string, error) {
	plan, err := s.planner.GeneratePost(ctx, channel, company, req.Theme, req.ThemeDescription)
	if err != nil {
		return "", &PlannerError{Channel: channel, Unit: unit, Err: err}
	}
	if plan.ImagePrompt == "" {
		return "", &PlannerError{Channel: channel, Unit: unit, Err: fmt.Errorf("planner returned no image prompt")}
	}

	image, mimeType, err := s.images.GenerateImage(ctx, plan.ImagePrompt, channel)
	if err != nil {
		return "", &ImageGenerationError{Channel: channel, Unit: unit, Err: err}
	}

	imageURL, err := s.storage.Upload(ctx, image, mimeType)
	if err != nil {
		return "", &ImageGenerationError{Channel: channel, Unit: unit, Err: fmt.Errorf("uploading image: %w", err)}
	}

	lock := s.groupLock(channel, companyID, req.MonthID, req.ThemeIndex)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.pr.CountByTheme(ctx, channel, companyID, req.MonthID, req.ThemeIndex)
	if err != nil {
		return "", fmt.Errorf("counting theme variations: %w", err)
	}

	post := &models.Post{
		CompanyID:      companyID,
		Channel:        channel,
		ImageURL:       imageURL,
		Caption:        plan.Caption,
		Hashtags:       plan.Hashtags,
		OverlayText:    plan.OverlayText,
		Status:         models.PostStatusDraft,
		MonthID:        req.MonthID,
		ThemeIndex:     req.ThemeIndex,
		VariationIndex: existing + 1,
	}

	id, err := s.pr.Create(ctx, channel, post)
	if err != nil {
		return "", fmt.Errorf("saving %s post: %w", channel, err)
	}
	return id, nil
}

func (s *contentService) generateDocument(ctx context.Context, channel string, unit int, companyID string, company *models.Company, req *transfer.ScheduleCreation) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	switch channel {
	case models.ChannelNewsletter:
		content, err := s.writer.GenerateNewsletter(ctx, company, req.Theme, req.ThemeDescription)
		if err != nil {
			return "", &PlannerError{Channel: channel, Unit: unit, Err: err}
		}
		newsletter := &models.Newsletter{
			ID:         id,
			CompanyID:  companyID,
			Channel:    channel,
			Status:     models.PostStatusDraft,
			MonthID:    req.MonthID,
			ThemeIndex: req.ThemeIndex,
			Response:   *content,
		}
		if err := s.nr.Create(ctx, newsletter); err != nil {
			return "", fmt.Errorf("saving newsletter: %w", err)
		}
	case models.ChannelBlog:
		content, err := s.writer.GenerateBlog(ctx, company, req.Theme, req.ThemeDescription)
		if err != nil {
			return "", &PlannerError{Channel: channel, Unit: unit, Err: err}
		}
		blog := &models.Blog{
			ID:         id,
			CompanyID:  companyID,
			Channel:    channel,
			Status:     models.PostStatusDraft,
			MonthID:    req.MonthID,
			ThemeIndex: req.ThemeIndex,
			Response:   *content,
		}
		if err := s.br.Create(ctx, blog); err != nil {
			return "", fmt.Errorf("saving blog: %w", err)
		}
	default:
		return "", fmt.Errorf("unknown channel %q", channel)
	}

	return id, nil
}

// GenerateNewsletter creates a single newsletter outside an orchestration run.
func (s *contentService) GenerateNewsletter(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Newsletter, error) {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	content, err := s.writer.GenerateNewsletter(ctx, company, req.Theme, req.ThemeDescription)
	if err != nil {
		return nil, &PlannerError{Channel: models.ChannelNewsletter, Unit: 1, Err: err}
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		ID:         id,
		CompanyID:  companyID,
		Channel:    models.ChannelNewsletter,
		Status:     models.PostStatusDraft,
		MonthID:    req.MonthID,
		ThemeIndex: req.ThemeIndex,
		Response:   *content,
	}
	if err := s.nr.Create(ctx, newsletter); err != nil {
		return nil, fmt.Errorf("saving newsletter: %w", err)
	}

	s.invalidateList(ctx, models.ChannelNewsletter, companyID)
	return newsletter, nil
}

// GenerateBlog creates a single blog article outside an orchestration run.
func (s *contentService) GenerateBlog(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Blog, error) {
	company, err := s.cr.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
	}

	content, err := s.writer.GenerateBlog(ctx, company, req.Theme, req.ThemeDescription)
	if err != nil {
		return nil, &PlannerError{Channel: models.ChannelBlog, Unit: 1, Err: err}
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:         id,
		CompanyID:  companyID,
		Channel:    models.ChannelBlog,
		Status:     models.PostStatusDraft,
		MonthID:    req.MonthID,
		ThemeIndex: req.ThemeIndex,
		Response:   *content,
	}
	if err := s.br.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("saving blog: %w", err)
	}

	s.invalidateList(ctx, models.ChannelBlog, companyID)
	return blog, nil
}

// ListPosts reads a channel's posts through the list cache. Cache failures
// are logged and the list is served from the store.
func (s *contentService) ListPosts(ctx context.Context, channel, companyID string) ([]*models.Post, error) {
	key := cache.PostListKey(channel, companyID)

	var cached []*models.Post
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		slog.Error("cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	posts, err := s.pr.ListByCompany(ctx, channel, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, posts, cache.DefaultTTL); err != nil {
		slog.Error("cache write failed", "key", key, "error", err)
	}
	return posts, nil
}

func (s *contentService) GetPost(ctx context.Context, channel, companyID, postID string) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, channel, companyID, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	return post, nil
}

func (s *contentService) UpdatePost(ctx context.Context, channel, companyID, postID string, pu *transfer.PostUpdate) error {
	post, err := s.pr.GetByID(ctx, channel, companyID, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}

	fields := make(map[string]interface{})
	if pu.Caption != nil {
		fields["caption"] = *pu.Caption
	}
	if pu.Hashtags != nil {
		fields["hashtags"] = *pu.Hashtags
	}
	if pu.OverlayText != nil {
		fields["overlay_text"] = *pu.OverlayText
	}
	if pu.ImageURL != nil {
		fields["image_url"] = *pu.ImageURL
	}
	if pu.ScheduledTime != nil {
		fields["scheduled_time"] = *pu.ScheduledTime
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.pr.Update(ctx, channel, companyID, postID, fields); err != nil {
		return err
	}

	s.invalidateList(ctx, channel, companyID)
	return nil
}

func (s *contentService) RemovePost(ctx context.Context, channel, companyID, postID string) error {
	post, err := s.pr.GetByID(ctx, channel, companyID, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	if post.Status == models.PostStatusPublished {
		return ErrPublished
	}

	if err := s.pr.Remove(ctx, channel, companyID, postID); err != nil {
		return err
	}

	s.invalidateList(ctx, channel, companyID)
	return nil
}

func (s *contentService) ListNewsletters(ctx context.Context, companyID string) ([]*models.Newsletter, error) {
	key := cache.PostListKey(models.ChannelNewsletter, companyID)

	var cached []*models.Newsletter
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		slog.Error("cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	newsletters, err := s.nr.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, newsletters, cache.DefaultTTL); err != nil {
		slog.Error("cache write failed", "key", key, "error", err)
	}
	return newsletters, nil
}

func (s *contentService) GetNewsletter(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error) {
	newsletter, err := s.nr.GetByID(ctx, companyID, newsletterID)
	if err != nil {
		return nil, err
	}
	if newsletter == nil {
		return nil, fmt.Errorf("newsletter %s: %w", newsletterID, ErrNotFound)
	}
	return newsletter, nil
}

func (s *contentService) ListBlogs(ctx context.Context, companyID string) ([]*models.Blog, error) {
	key := cache.PostListKey(models.ChannelBlog, companyID)

	var cached []*models.Blog
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		slog.Error("cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	blogs, err := s.br.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, blogs, cache.DefaultTTL); err != nil {
		slog.Error("cache write failed", "key", key, "error", err)
	}
	return blogs, nil
}

func (s *contentService) GetBlog(ctx context.Context, companyID, blogID string) (*models.Blog, error) {
	blog, err := s.br.GetByID(ctx, companyID, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("blog %s: %w", blogID, ErrNotFound)
	}
	return blog, nil
}

func (s *contentService) invalidateList(ctx context.Context, channel, companyID string) {
	if _, err := s.cache.Delete(ctx, cache.PostListKey(channel, companyID)); err != nil {
		slog.Error("cache invalidation failed", "channel", channel, "company_id", companyID, "error", err)
	}
}
