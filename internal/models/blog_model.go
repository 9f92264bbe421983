package models

import "time"

type BlogSection struct {
	Heading string `firestore:"heading" json:"heading" jsonschema_description:"Section heading."`
	Content string `firestore:"content" json:"content" jsonschema_description:"Section body text."`
}

// BlogContent is the structured article produced by the text generator.
type BlogContent struct {
	Title           string        `firestore:"title" json:"title" jsonschema_description:"The blog post title."`
	MetaDescription string        `firestore:"meta_description" json:"meta_description" jsonschema_description:"SEO meta description, under 160 characters."`
	Introduction    string        `firestore:"introduction" json:"introduction" jsonschema_description:"Opening paragraph."`
	Sections        []BlogSection `firestore:"sections" json:"sections" jsonschema_description:"3-5 body sections with headings."`
	Conclusion      string        `firestore:"conclusion" json:"conclusion" jsonschema_description:"Closing paragraph."`
	CallToAction    string        `firestore:"call_to_action" json:"call_to_action" jsonschema_description:"Final call to action."`
}

type Blog struct {
	ID                string     `firestore:"-" json:"blog_id"`
	CompanyID         string     `firestore:"company_id" json:"company_id"`
	Channel           string     `firestore:"channel" json:"channel"`
	Status            string     `firestore:"status" json:"status"`
	MonthID           int        `firestore:"month_id" json:"month_id"`
	ThemeIndex        int        `firestore:"theme_index" json:"theme_index"`
	ScheduledTime     string     `firestore:"scheduled_time" json:"scheduled_time"`
	ScheduledDatetime *time.Time `firestore:"scheduled_datetime" json:"scheduled_datetime"`
	Response          BlogContent `firestore:"response" json:"response"`
	CreatedAt         time.Time  `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt         time.Time  `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}
