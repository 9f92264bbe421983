package models

// PlannerResult is the structured output of one planner call: everything
// needed to build a single social post except the rendered image.
type PlannerResult struct {
	Channel     string   `json:"channel" jsonschema_description:"The target channel this content was written for."`
	Caption     string   `json:"caption" jsonschema_description:"The post caption, written in the company's regional language. No hashtags."`
	Hashtags    []string `json:"hashtags" jsonschema_description:"5-8 relevant hashtags including the # prefix."`
	OverlayText string   `json:"overlay_text" jsonschema_description:"Short text to overlay on the post image."`
	ImagePrompt string   `json:"image_prompt" jsonschema_description:"A photorealistic photography prompt for the post image."`
}
