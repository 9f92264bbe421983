package models

import "time"

type Theme struct {
	Title       string `firestore:"title" json:"title" jsonschema_description:"Concise theme title."`
	Description string `firestore:"description" json:"description" jsonschema_description:"Theme description, at most 40 words."`
}

// ThemeSet is one month's pair of campaign themes for a company.
type ThemeSet struct {
	Month     string    `firestore:"month" json:"month" jsonschema_description:"The month these themes are for."`
	Themes    []Theme   `firestore:"themes" json:"themes" jsonschema_description:"Two unique post themes for the month."`
	CompanyID string    `firestore:"company_id" json:"company_id,omitempty"`
	CreatedAt time.Time `firestore:"created_at,serverTimestamp" json:"created_at,omitempty"`
	UpdatedAt time.Time `firestore:"updated_at,serverTimestamp" json:"updated_at,omitempty"`
}
