package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/marketing-planner/internal/models"
	"github.com/maheshrc27/marketing-planner/internal/service"
	"github.com/maheshrc27/marketing-planner/internal/transfer"
)

type stubScheduler struct {
	result *transfer.ScheduleResult
	err    error
}

func (s *stubScheduler) GenerateScheduledPosts(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*transfer.ScheduleResult, error) {
	return s.result, s.err
}

type stubContent struct {
	posts map[string]*models.Post
}

func (s *stubContent) GenerateChannelPosts(ctx context.Context, channel string, count int, companyID string, req *transfer.ScheduleCreation) (*transfer.ChannelBatch, error) {
	return &transfer.ChannelBatch{}, nil
}

func (s *stubContent) GenerateNewsletter(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Newsletter, error) {
	return &models.Newsletter{ID: "n1", CompanyID: companyID}, nil
}

func (s *stubContent) GenerateBlog(ctx context.Context, companyID string, req *transfer.ScheduleCreation) (*models.Blog, error) {
	return &models.Blog{ID: "b1", CompanyID: companyID}, nil
}

func (s *stubContent) ListPosts(ctx context.Context, channel, companyID string) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range s.posts {
		if p.Channel == channel {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubContent) GetPost(ctx context.Context, channel, companyID, postID string) (*models.Post, error) {
	post, ok := s.posts[postID]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", postID, service.ErrNotFound)
	}
	return post, nil
}

func (s *stubContent) UpdatePost(ctx context.Context, channel, companyID, postID string, pu *transfer.PostUpdate) error {
	if _, ok := s.posts[postID]; !ok {
		return fmt.Errorf("post %s: %w", postID, service.ErrNotFound)
	}
	return nil
}

func (s *stubContent) RemovePost(ctx context.Context, channel, companyID, postID string) error {
	post, ok := s.posts[postID]
	if !ok {
		return fmt.Errorf("post %s: %w", postID, service.ErrNotFound)
	}
	if post.Status == models.PostStatusPublished {
		return service.ErrPublished
	}
	delete(s.posts, postID)
	return nil
}

func (s *stubContent) ListNewsletters(ctx context.Context, companyID string) ([]*models.Newsletter, error) {
	return nil, nil
}

func (s *stubContent) GetNewsletter(ctx context.Context, companyID, newsletterID string) (*models.Newsletter, error) {
	return nil, fmt.Errorf("newsletter %s: %w", newsletterID, service.ErrNotFound)
}

func (s *stubContent) ListBlogs(ctx context.Context, companyID string) ([]*models.Blog, error) {
	return nil, nil
}

func (s *stubContent) GetBlog(ctx context.Context, companyID, blogID string) (*models.Blog, error) {
	return nil, fmt.Errorf("blog %s: %w", blogID, service.ErrNotFound)
}

func newTestApp(scheduler service.SchedulerService, content service.ContentService) *fiber.App {
	app := fiber.New()
	h := NewContentHandler(scheduler, content)
	api := app.Group("/api/v1")
	api.Post("/content/:company_id/schedule/create", h.CreateSchedule)
	api.Get("/content/:company_id/:channel/posts", h.ListPosts)
	api.Get("/content/:company_id/:channel/posts/:post_id", h.GetPost)
	api.Delete("/content/:company_id/:channel/posts/:post_id", h.RemovePost)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateScheduleSuccess(t *testing.T) {
	scheduler := &stubScheduler{result: &transfer.ScheduleResult{
		Status:  "success",
		PostIDs: []string{"p1", "p2"},
		Counts:  map[string]int{"instagram": 2},
	}}
	app := newTestApp(scheduler, &stubContent{})

	req := jsonRequest(http.MethodPost, "/api/v1/content/c1/schedule/create", transfer.ScheduleCreation{
		Theme:   "Summer Sale",
		MonthID: 6,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result transfer.ScheduleResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "success", result.Status)
	assert.Len(t, result.PostIDs, 2)
}

func TestCreateScheduleMissingTheme(t *testing.T) {
	app := newTestApp(&stubScheduler{}, &stubContent{})

	req := jsonRequest(http.MethodPost, "/api/v1/content/c1/schedule/create", transfer.ScheduleCreation{MonthID: 6})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateScheduleInvalidMonth(t *testing.T) {
	app := newTestApp(&stubScheduler{}, &stubContent{})

	for _, month := range []int{0, 13, -1} {
		req := jsonRequest(http.MethodPost, "/api/v1/content/c1/schedule/create", transfer.ScheduleCreation{
			Theme:   "Summer Sale",
			MonthID: month,
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateScheduleUnknownCompany(t *testing.T) {
	scheduler := &stubScheduler{err: fmt.Errorf("company ghost: %w", service.ErrNotFound)}
	app := newTestApp(scheduler, &stubContent{})

	req := jsonRequest(http.MethodPost, "/api/v1/content/ghost/schedule/create", transfer.ScheduleCreation{
		Theme:   "Summer Sale",
		MonthID: 6,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateScheduleChannelFailureIncludesDetails(t *testing.T) {
	scheduler := &stubScheduler{
		result: &transfer.ScheduleResult{
			Status: "error",
			Channels: []transfer.ChannelResult{
				{Channel: "instagram", PostIDs: []string{"p1"}},
				{Channel: "facebook", Error: "planner failed for facebook post 2: model overloaded"},
			},
		},
		err: &service.PlannerError{Channel: "facebook", Unit: 2, Err: fmt.Errorf("model overloaded")},
	}
	app := newTestApp(scheduler, &stubContent{})

	req := jsonRequest(http.MethodPost, "/api/v1/content/c1/schedule/create", transfer.ScheduleCreation{
		Theme:   "Summer Sale",
		MonthID: 6,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "facebook post 2")
	assert.Contains(t, string(body), "channels")
}

func TestGetPostInvalidChannel(t *testing.T) {
	app := newTestApp(&stubScheduler{}, &stubContent{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/c1/tiktok/posts/p1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPostNotFound(t *testing.T) {
	app := newTestApp(&stubScheduler{}, &stubContent{posts: map[string]*models.Post{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/c1/instagram/posts/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPost(t *testing.T) {
	content := &stubContent{posts: map[string]*models.Post{
		"p1": {ID: "p1", Channel: "instagram", Caption: "hello"},
	}}
	app := newTestApp(&stubScheduler{}, content)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/c1/instagram/posts/p1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	assert.Equal(t, "hello", post.Caption)
}

func TestRemovePublishedPost(t *testing.T) {
	content := &stubContent{posts: map[string]*models.Post{
		"p1": {ID: "p1", Channel: "instagram", Status: models.PostStatusPublished},
	}}
	app := newTestApp(&stubScheduler{}, content)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/content/c1/instagram/posts/p1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
