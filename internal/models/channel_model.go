package models

import "time"

// ChannelConfig holds how many posts to generate per channel per cycle.
// Count fields are pointers so a missing field can be told apart from an
// explicit zero: missing defaults to 1, zero disables the channel.
type ChannelConfig struct {
	CompanyID           string    `firestore:"company_id" json:"company_id"`
	InstagramPostCount  *int      `firestore:"instagram_post_count" json:"instagram_post_count"`
	FacebookPostCount   *int      `firestore:"facebook_post_count" json:"facebook_post_count"`
	LinkedinPostCount   *int      `firestore:"linkedin_post_count" json:"linkedin_post_count"`
	NewsletterPostCount *int      `firestore:"newsletter_post_count" json:"newsletter_post_count"`
	BlogPostCount       *int      `firestore:"blog_post_count" json:"blog_post_count"`
	InstagramActive     bool      `firestore:"instagram_active" json:"instagram_active"`
	FacebookActive      bool      `firestore:"facebook_active" json:"facebook_active"`
	LinkedinActive      bool      `firestore:"linkedin_active" json:"linkedin_active"`
	NewsletterActive    bool      `firestore:"newsletter_active" json:"newsletter_active"`
	BlogActive          bool      `firestore:"blog_active" json:"blog_active"`
	CreatedAt           time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt           time.Time `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}

// Count returns the configured post count for a channel, defaulting to 1 when
// the field is absent. Negative values are treated as zero.
func (c *ChannelConfig) Count(channel string) int {
	var v *int
	switch channel {
	case ChannelInstagram:
		v = c.InstagramPostCount
	case ChannelFacebook:
		v = c.FacebookPostCount
	case ChannelLinkedin:
		v = c.LinkedinPostCount
	case ChannelNewsletter:
		v = c.NewsletterPostCount
	case ChannelBlog:
		v = c.BlogPostCount
	}
	if v == nil {
		return 1
	}
	if *v < 0 {
		return 0
	}
	return *v
}
