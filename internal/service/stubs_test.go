package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

type stubCompanyRepo struct {
	companies map[string]*models.Company
	nameTaken bool
}

func newStubCompanyRepo(ids ...string) *stubCompanyRepo {
	r := &stubCompanyRepo{companies: make(map[string]*models.Company)}
	for _, id := range ids {
		r.companies[id] = &models.Company{ID: id, CompanyName: "Acme " + id, Industry: "retail"}
	}
	return r
}

func (r *stubCompanyRepo) Create(ctx context.Context, company *models.Company) (string, error) {
	id := fmt.Sprintf("company-%d", len(r.companies)+1)
	company.ID = id
	r.companies[id] = company
	return id, nil
}

func (r *stubCompanyRepo) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	return r.companies[companyID], nil
}

func (r *stubCompanyRepo) List(ctx context.Context, page, limit int) ([]*models.Company, error) {
	var out []*models.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCompanyRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.nameTaken, nil
}

func (r *stubCompanyRepo) Update(ctx context.Context, companyID string, fields map[string]interface{}) error {
	return nil
}

func (r *stubCompanyRepo) Remove(ctx context.Context, companyID string) error {
	delete(r.companies, companyID)
	return nil
}

type scheduledWrite struct {
	Channel   string
	CompanyID string
	DocID     string
	At        time.Time
}

type stubPostRepo struct {
	mu        sync.Mutex
	posts     map[string]*models.Post
	nextID    int
	schedules []scheduledWrite
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*models.Post)}
}

func (r *stubPostRepo) Create(ctx context.Context, channel string, post *models.Post) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("%s-post-%d", channel, r.nextID)
	copied := *post
	copied.ID = id
	r.posts[id] = &copied
	return id, nil
}

func (r *stubPostRepo) GetByID(ctx context.Context, channel, companyID, postID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posts[postID], nil
}

func (r *stubPostRepo) ListByCompany(ctx context.Context, channel, companyID string) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Post
	for _, p := range r.posts {
		if p.Channel == channel && p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPostRepo) CountByTheme(ctx context.Context, channel, companyID string, monthID, themeIndex int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, p := range r.posts {
		if p.Channel == channel && p.CompanyID == companyID && p.MonthID == monthID && p.ThemeIndex == themeIndex {
			count++
		}
	}
	return count, nil
}

func (r *stubPostRepo) SetSchedule(ctx context.Context, channel, companyID, postID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, scheduledWrite{Channel: channel, CompanyID: companyID, DocID: postID, At: at})
	if p, ok := r.posts[postID]; ok {
		p.Status = models.PostStatusScheduled
		p.ScheduledDatetime = &at
		p.ScheduledTime = at.Format(time.RFC3339)
	}
	return nil
}

func (r *stubPostRepo) UpdateStatus(ctx context.Context, channel, companyID, postID, postStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[postID]; ok {
		p.Status = postStatus
	}
	return nil
}

func (r *stubPostRepo) Update(ctx context.Context, channel, companyID, postID string, fields map[string]interface{}) error {
	return nil
}

func (r *stubPostRepo) Remove(ctx context.Context, channel, companyID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, postID)
	return nil
}

func (r *stubPostRepo) ListDue(ctx context.Context, now time.Time) ([]*models.Post, error) {
	return nil, nil
}

type stubNewsletterRepo struct {
	mu          sync.Mutex
	newsletters map[string]*models.Newsletter
	schedules   []scheduledWrite
}

func newStubNewsletterRepo() *stubNewsletterRepo {
	return &stubNewsletterRepo{newsletters: make(map[string]*models.Newsletter)}
}

func (r *stubNewsletterRepo) Create(ctx context.Context, newsletter *models.Newsletter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *newsletter
	r.newsletters[newsletter.ID] = &copied
	return nil
}

func (r *stubNewsletterRepo) GetByID(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.newsletters[newsletterID], nil
}

func (r *stubNewsletterRepo) ListByCompany(ctx context.Context, companyID string) ([]*models.Newsletter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Newsletter
	for _, n := range r.newsletters {
		if n.CompanyID == companyID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *stubNewsletterRepo) SetSchedule(ctx context.Context, companyID, newsletterID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, scheduledWrite{Channel: models.ChannelNewsletter, CompanyID: companyID, DocID: newsletterID, At: at})
	return nil
}

func (r *stubNewsletterRepo) UpdateStatus(ctx context.Context, companyID, newsletterID, docStatus string) error {
	return nil
}

func (r *stubNewsletterRepo) ListDue(ctx context.Context, now time.Time) ([]*models.Newsletter, error) {
	return nil, nil
}

type stubBlogRepo struct {
	mu        sync.Mutex
	blogs     map[string]*models.Blog
	schedules []scheduledWrite
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: make(map[string]*models.Blog)}
}

func (r *stubBlogRepo) Create(ctx context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *blog
	r.blogs[blog.ID] = &copied
	return nil
}

func (r *stubBlogRepo) GetByID(ctx context.Context, companyID, blogID string) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blogs[blogID], nil
}

func (r *stubBlogRepo) ListByCompany(ctx context.Context, companyID string) ([]*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Blog
	for _, b := range r.blogs {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBlogRepo) SetSchedule(ctx context.Context, companyID, blogID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, scheduledWrite{Channel: models.ChannelBlog, CompanyID: companyID, DocID: blogID, At: at})
	return nil
}

func (r *stubBlogRepo) UpdateStatus(ctx context.Context, companyID, blogID, docStatus string) error {
	return nil
}

func (r *stubBlogRepo) ListDue(ctx context.Context, now time.Time) ([]*models.Blog, error) {
	return nil, nil
}

type stubChannelConfigRepo struct {
	config *models.ChannelConfig
}

func (r *stubChannelConfigRepo) Get(ctx context.Context, companyID string) (*models.ChannelConfig, error) {
	return r.config, nil
}

func (r *stubChannelConfigRepo) Set(ctx context.Context, config *models.ChannelConfig) error {
	r.config = config
	return nil
}

// stubPlanner counts calls per channel and fails on a chosen unit.
type stubPlanner struct {
	mu         sync.Mutex
	calls      map[string]int
	failAt     map[string]int
	emptyImage bool
}

func newStubPlanner() *stubPlanner {
	return &stubPlanner{calls: make(map[string]int), failAt: make(map[string]int)}
}

func (p *stubPlanner) GeneratePost(ctx context.Context, channel string, company *models.Company, themeTitle, themeDescription string) (*models.PlannerResult, error) {
	p.mu.Lock()
	p.calls[channel]++
	call := p.calls[channel]
	p.mu.Unlock()

	if at, ok := p.failAt[channel]; ok && call >= at {
		return nil, fmt.Errorf("model overloaded")
	}

	result := &models.PlannerResult{
		Channel:     channel,
		Caption:     fmt.Sprintf("%s caption %d for %s", channel, call, themeTitle),
		Hashtags:    []string{"#" + themeTitle},
		OverlayText: themeTitle,
		ImagePrompt: "a product shot",
	}
	if p.emptyImage {
		result.ImagePrompt = ""
	}
	return result, nil
}

type stubImageGen struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *stubImageGen) GenerateImage(ctx context.Context, imagePrompt, channel string) ([]byte, string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.err != nil {
		return nil, "", g.err
	}
	return []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", nil
}

type stubStorage struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubStorage) Upload(ctx context.Context, file []byte, contentType string) (string, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("https://cdn.example.com/img-%d", n), nil
}

type stubWriter struct {
	newsletterErr error
	blogErr       error
}

func (w *stubWriter) GenerateNewsletter(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.NewsletterContent, error) {
	if w.newsletterErr != nil {
		return nil, w.newsletterErr
	}
	return &models.NewsletterContent{SubjectLine: themeTitle, MainContent: themeDescription}, nil
}

func (w *stubWriter) GenerateBlog(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.BlogContent, error) {
	if w.blogErr != nil {
		return nil, w.blogErr
	}
	return &models.BlogContent{Title: themeTitle, Introduction: themeDescription}, nil
}

func (w *stubWriter) GenerateThemes(ctx context.Context, company *models.Company, month string, existingTitles []string) (*models.ThemeSet, error) {
	return &models.ThemeSet{
		Month: month,
		Themes: []models.Theme{
			{Title: "Fresh Starts", Description: "New season, new routines."},
			{Title: "Behind the Scenes", Description: "How the products get made."},
		},
	}, nil
}

type stubCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	deletes []string
	err     error
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]byte)}
}

func (c *stubCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	c.deletes = append(c.deletes, key)
	_, existed := c.store[key]
	delete(c.store, key)
	return existed, nil
}

// stubEnqueuer records deferred publish requests.
type stubEnqueuer struct {
	mu    sync.Mutex
	tasks []scheduledWrite
}

func (e *stubEnqueuer) SchedulePublish(companyID, channel, docID string, at time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks = append(e.tasks, scheduledWrite{Channel: channel, CompanyID: companyID, DocID: docID, At: at})
	return nil
}
