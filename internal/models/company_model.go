package models

import "time"

type Company struct {
	ID                string    `firestore:"-" json:"id"`
	CompanyName       string    `firestore:"company_name" json:"company_name"`
	CompanyURL        string    `firestore:"company_url" json:"company_url"`
	CompanyInfo       string    `firestore:"company_info" json:"company_info"`
	Address           string    `firestore:"address" json:"address"`
	Industry          string    `firestore:"industry" json:"industry"`
	Keywords          []string  `firestore:"keywords" json:"keywords"`
	TargetGroup       string    `firestore:"target_group" json:"target_group"`
	ToneAnalysis      string    `firestore:"tone_analysis" json:"tone_analysis"`
	Products          []string  `firestore:"products" json:"products"`
	ProductCategories []string  `firestore:"product_categories" json:"product_categories"`
	ThemeColors       []string  `firestore:"theme_colors" json:"theme_colors"`
	LogoURL           string    `firestore:"logo_url" json:"logo_url"`
	FaviconURL        string    `firestore:"favicon_url" json:"favicon_url"`
	CreatedAt         time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt         time.Time `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}
