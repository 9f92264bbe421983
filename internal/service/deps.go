package service

import (
	"context"
	"time"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

// Planner is the per-channel social content generator (caption, hashtags,
// overlay text, image prompt).
type Planner interface {
	GeneratePost(ctx context.Context, channel string, company *models.Company, themeTitle, themeDescription string) (*models.PlannerResult, error)
}

// ImageGenerator renders an image for a planner's image prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, imagePrompt, channel string) ([]byte, string, error)
}

// TextWriter produces long-form documents and monthly themes.
type TextWriter interface {
	GenerateNewsletter(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.NewsletterContent, error)
	GenerateBlog(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.BlogContent, error)
	GenerateThemes(ctx context.Context, company *models.Company, month string, existingTitles []string) (*models.ThemeSet, error)
}

// MediaStorage uploads a generated asset and returns its public URL.
type MediaStorage interface {
	Upload(ctx context.Context, file []byte, contentType string) (string, error)
}

// Cache is the best-effort list cache. Failures are logged by callers, never
// surfaced as request failures.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}
