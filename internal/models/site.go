package models

// SiteSettings holds the site-wide chrome shared by every page.
type SiteSettings struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	LogoText    string    `json:"logo_text" yaml:"logo_text"`
	FooterText  string    `json:"footer_text" yaml:"footer_text"`
	NavItems    []NavItem `json:"nav_items" yaml:"nav_items"`
}

type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}
