package models

import "time"

type Post struct {
	ID                string     `firestore:"-" json:"post_id"`
	CompanyID         string     `firestore:"company_id" json:"company_id"`
	Channel           string     `firestore:"channel" json:"channel"`
	ImageURL          string     `firestore:"image_url" json:"image_url"`
	Caption           string     `firestore:"caption" json:"caption"`
	Hashtags          []string   `firestore:"hashtags" json:"hashtags"`
	OverlayText       string     `firestore:"overlay_text" json:"overlay_text"`
	Status            string     `firestore:"status" json:"status"` // draft, scheduled, published
	MonthID           int        `firestore:"month_id" json:"month_id"`
	ThemeIndex        int        `firestore:"theme_index" json:"theme_index"`
	VariationIndex    int        `firestore:"variation_index" json:"variation_index"`
	ScheduledTime     string     `firestore:"scheduled_time" json:"scheduled_time"`
	ScheduledDatetime *time.Time `firestore:"scheduled_datetime" json:"scheduled_datetime"`
	CreatedAt         time.Time  `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt         time.Time  `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

const (
	ChannelInstagram  = "instagram"
	ChannelFacebook   = "facebook"
	ChannelLinkedin   = "linkedin"
	ChannelNewsletter = "newsletter"
	ChannelBlog       = "blog"
)

// AllChannels returns every channel in a fixed order. The orchestrator and the
// response counts both depend on this order being stable.
func AllChannels() []string {
	return []string{ChannelInstagram, ChannelFacebook, ChannelLinkedin, ChannelNewsletter, ChannelBlog}
}

// SocialChannels are the channels that go through the planner+image pipeline.
func SocialChannels() []string {
	return []string{ChannelInstagram, ChannelFacebook, ChannelLinkedin}
}

func IsSocialChannel(channel string) bool {
	switch channel {
	case ChannelInstagram, ChannelFacebook, ChannelLinkedin:
		return true
	}
	return false
}

func IsValidChannel(channel string) bool {
	switch channel {
	case ChannelInstagram, ChannelFacebook, ChannelLinkedin, ChannelNewsletter, ChannelBlog:
		return true
	}
	return false
}
