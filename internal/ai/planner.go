package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

var plannerResultSchema = GenerateSchema[models.PlannerResult]()

// channelBriefs carries the per-channel voice used in the planner prompt.
var channelBriefs = map[string]string{
	models.ChannelInstagram: "Catchy and engaging. Use 3-5 emojis strategically, attention-grabbing hooks, short paragraphs with line breaks, and a clear call-to-action.",
	models.ChannelFacebook:  "Highly conversational and community-focused. Use 4-6 emojis, ask questions to encourage comments, tell a story or share relatable content.",
	models.ChannelLinkedin:  "Professional but engaging. Use 2-4 strategic emojis, open with a thought-provoking question or industry insight, close with a professional call-to-action.",
}

// Planner produces per-channel post content (caption, hashtags, overlay text,
// image prompt) from a campaign theme.
type Planner struct {
	client openai.Client
}

func NewPlanner(apiKey string) *Planner {
	return &Planner{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (p *Planner) GeneratePost(ctx context.Context, channel string, company *models.Company, themeTitle, themeDescription string) (*models.PlannerResult, error) {
	brief, ok := channelBriefs[channel]
	if !ok {
		return nil, fmt.Errorf("no planner brief for channel %s", channel)
	}

	system := fmt.Sprintf("You are a creative marketing expert who generates highly engaging social media content for %s. Stay informative and authentic to the brand.", channel)

	prompt := fmt.Sprintf(`Generate %s-specific social media content.

COMPANY INFORMATION:
- Company Name: %s
- Industry: %s
- About: %s
- Location: %s
- Target Audience: %s
- Keywords: %s
- Tone: %s
- Products: %s

THEME:
- Title: %s
- Description: %s

REQUIREMENTS:
- CAPTION: %s Determine the location from the address and write in the regional language. The caption must not contain hashtags.
- HASHTAGS: 5-8 relevant hashtags in the regional language.
- OVERLAY_TEXT: Concise, impactful text for the image overlay in the native language.
- IMAGE_PROMPT: A realistic photography prompt matching the caption. Describe a photograph, never an illustration or digital art. Use photography terminology (natural daylight, shot on 35mm lens, soft shadows). Never mention AI or generative tools.
- Set the channel field to %q.`,
		channel,
		company.CompanyName,
		company.Industry,
		company.CompanyInfo,
		company.Address,
		company.TargetGroup,
		strings.Join(company.Keywords, ", "),
		company.ToneAnalysis,
		strings.Join(company.Products, ", "),
		themeTitle,
		themeDescription,
		brief,
		channel,
	)

	result, err := getStructuredResponse[models.PlannerResult](ctx, p.client, system, prompt, plannerResultSchema)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Caption) == "" {
		return nil, fmt.Errorf("planner returned empty caption for %s", channel)
	}
	return result, nil
}
