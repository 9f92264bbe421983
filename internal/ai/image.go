package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/maheshrc27/marketing-planner/internal/models"
)

const imageModel = "gemini-2.5-flash-image-preview"

// aspectRatios maps each social channel to its post image format.
var aspectRatios = map[string]string{
	models.ChannelInstagram: "1:1",
	models.ChannelFacebook:  "1.91:1",
	models.ChannelLinkedin:  "1.91:1",
}

// ImageGenerator renders post images with Gemini.
type ImageGenerator struct {
	client *genai.Client
}

func NewImageGenerator(ctx context.Context, apiKey string) (*ImageGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &ImageGenerator{client: client}, nil
}

// GenerateImage renders one image for imagePrompt and returns the raw bytes
// and their mime type.
func (g *ImageGenerator) GenerateImage(ctx context.Context, imagePrompt, channel string) ([]byte, string, error) {
	aspectRatio, ok := aspectRatios[channel]
	if !ok {
		aspectRatio = "1:1"
	}

	prompt := fmt.Sprintf(`Generate a professional and engaging social media image for a %s post.
A high-quality, photorealistic image of: %s.
The image should be captured with professional cinematic lighting and vibrant colors.
The composition should be visually appealing and suitable for a marketing campaign.
The image must have an aspect ratio of %s.`, channel, imagePrompt, aspectRatio)

	if channel == models.ChannelLinkedin {
		prompt += " The style should be corporate and sophisticated."
	}

	resp, err := g.client.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, "", fmt.Errorf("gemini generate content: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no image data in model response")
}
