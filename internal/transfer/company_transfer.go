package transfer

type CompanyCreation struct {
	CompanyName       string   `json:"company_name"`
	CompanyURL        string   `json:"company_url"`
	CompanyInfo       string   `json:"company_info"`
	Address           string   `json:"address"`
	Industry          string   `json:"industry"`
	Keywords          []string `json:"keywords"`
	TargetGroup       string   `json:"target_group"`
	ToneAnalysis      string   `json:"tone_analysis"`
	Products          []string `json:"products"`
	ProductCategories []string `json:"product_categories"`
	ThemeColors       []string `json:"theme_colors"`
	LogoURL           string   `json:"logo_url"`
	FaviconURL        string   `json:"favicon_url"`
}

type ChannelConfigUpdate struct {
	InstagramPostCount  *int `json:"instagram_post_count"`
	FacebookPostCount   *int `json:"facebook_post_count"`
	LinkedinPostCount   *int `json:"linkedin_post_count"`
	NewsletterPostCount *int `json:"newsletter_post_count"`
	BlogPostCount       *int `json:"blog_post_count"`
	InstagramActive     bool `json:"instagram_active"`
	FacebookActive      bool `json:"facebook_active"`
	LinkedinActive      bool `json:"linkedin_active"`
	NewsletterActive    bool `json:"newsletter_active"`
	BlogActive          bool `json:"blog_active"`
}

type GenerationRequest struct {
	Theme            string `json:"theme"`
	ThemeDescription string `json:"theme_description"`
	RegionalLanguage string `json:"regional_language"`
}

type ThemeGeneration struct {
	Month string `json:"month"`
}
