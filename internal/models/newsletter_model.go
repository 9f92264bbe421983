package models

import "time"

// NewsletterContent is the structured body produced by the text generator.
type NewsletterContent struct {
	SubjectLine         string `firestore:"subject_line" json:"subject_line" jsonschema_description:"The email subject line."`
	Preheader           string `firestore:"preheader" json:"preheader" jsonschema_description:"Short preview text shown next to the subject."`
	Greeting            string `firestore:"greeting" json:"greeting" jsonschema_description:"Opening greeting."`
	OpeningParagraph    string `firestore:"opening_paragraph" json:"opening_paragraph" jsonschema_description:"First paragraph hooking the reader."`
	MainContent         string `firestore:"main_content" json:"main_content" jsonschema_description:"The main body of the newsletter."`
	PracticalTipsSection string `firestore:"practical_tips_section" json:"practical_tips_section" jsonschema_description:"A short list of practical tips."`
	CallToAction        string `firestore:"call_to_action" json:"call_to_action" jsonschema_description:"The closing call to action."`
	Closing             string `firestore:"closing" json:"closing" jsonschema_description:"Sign-off line."`
}

type Newsletter struct {
	ID                string            `firestore:"-" json:"newsletter_id"`
	CompanyID         string            `firestore:"company_id" json:"company_id"`
	Channel           string            `firestore:"channel" json:"channel"`
	Status            string            `firestore:"status" json:"status"`
	MonthID           int               `firestore:"month_id" json:"month_id"`
	ThemeIndex        int               `firestore:"theme_index" json:"theme_index"`
	ScheduledTime     string            `firestore:"scheduled_time" json:"scheduled_time"`
	ScheduledDatetime *time.Time        `firestore:"scheduled_datetime" json:"scheduled_datetime"`
	Response          NewsletterContent `firestore:"response" json:"response"`
	CreatedAt         time.Time         `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt         time.Time         `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}
