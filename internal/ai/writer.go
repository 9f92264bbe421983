package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

var (
	newsletterSchema = GenerateSchema[models.NewsletterContent]()
	blogSchema       = GenerateSchema[models.BlogContent]()
	themePairSchema  = GenerateSchema[themePair]()
)

type themePair struct {
	Month  string         `json:"month" jsonschema_description:"The month these themes are for."`
	Themes []models.Theme `json:"themes" jsonschema_description:"Exactly two unique post themes for the month."`
}

// Writer produces long-form documents (newsletters, blog articles) and
// monthly campaign themes.
type Writer struct {
	client openai.Client
}

func NewWriter(apiKey string) *Writer {
	return &Writer{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func companyProfile(company *models.Company) string {
	return fmt.Sprintf(`- Company Name: %s
- Industry: %s
- About: %s
- Location: %s
- Target Audience: %s
- Keywords: %s
- Tone: %s
- Products: %s`,
		company.CompanyName,
		company.Industry,
		company.CompanyInfo,
		company.Address,
		company.TargetGroup,
		strings.Join(company.Keywords, ", "),
		company.ToneAnalysis,
		strings.Join(company.Products, ", "))
}

func (w *Writer) GenerateNewsletter(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.NewsletterContent, error) {
	system := "You are an email marketing expert who writes engaging, conversion-focused newsletters that match the company's brand voice."

	prompt := fmt.Sprintf(`Write a complete marketing newsletter for this company.

COMPANY INFORMATION:
%s

THEME:
- Title: %s
- Description: %s

Determine the regional language from the company's location and write the newsletter in that language. Keep the subject line under 60 characters and make the practical tips genuinely useful for the target audience.`,
		companyProfile(company), themeTitle, themeDescription)

	return getStructuredResponse[models.NewsletterContent](ctx, w.client, system, prompt, newsletterSchema)
}

func (w *Writer) GenerateBlog(ctx context.Context, company *models.Company, themeTitle, themeDescription string) (*models.BlogContent, error) {
	system := "You are a content marketing expert who writes informative, SEO-aware blog articles in the company's brand voice."

	prompt := fmt.Sprintf(`Write a complete blog article for this company.

COMPANY INFORMATION:
%s

THEME:
- Title: %s
- Description: %s

Determine the regional language from the company's location and write the article in that language. Produce 3-5 body sections with clear headings and keep the meta description under 160 characters.`,
		companyProfile(company), themeTitle, themeDescription)

	return getStructuredResponse[models.BlogContent](ctx, w.client, system, prompt, blogSchema)
}

// GenerateThemes produces two campaign themes for one month, avoiding the
// titles already used for that company.
func (w *Writer) GenerateThemes(ctx context.Context, company *models.Company, month string, existingTitles []string) (*models.ThemeSet, error) {
	system := "You are a social media content strategist who generates engaging monthly campaign themes for companies worldwide."

	existing := "- None"
	if len(existingTitles) > 0 {
		existing = "- " + strings.Join(existingTitles, "\n- ")
	}

	prompt := fmt.Sprintf(`Generate two engaging social media post themes for the month of %s.

COMPANY INFORMATION:
%s

Existing theme titles to AVOID repeating:
%s

Determine the company's country from its location and base the themes strictly on local seasonal patterns, festivals, and cultural observances of that country. Exclude holidays not recognized there. Write the themes in the regional language. Each theme needs a concise title and a description of at most 40 words.`,
		month, companyProfile(company), existing)

	pair, err := getStructuredResponse[themePair](ctx, w.client, system, prompt, themePairSchema)
	if err != nil {
		return nil, err
	}
	if len(pair.Themes) == 0 {
		return nil, fmt.Errorf("model returned no themes for %s", month)
	}

	return &models.ThemeSet{Month: month, Themes: pair.Themes}, nil
}
