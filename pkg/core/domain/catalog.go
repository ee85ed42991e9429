package domain

// Store represents a merchant coupons belong to
type Store struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Category represents a topical grouping of coupons, independent of store
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Slug string `json:"slug"`
}
