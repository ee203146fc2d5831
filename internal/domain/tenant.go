package domain

// TenantTheme holds the per-tenant visual identity injected into the site
// as CSS variables.
type TenantTheme struct {
	ID                 string `json:"id"`
	TenantID           string `json:"tenant_id"`
	LogoText           string `json:"logo_text"`
	PrimaryColor       string `json:"primary_color"`
	PrimaryHoverColor  string `json:"primary_hover_color"`
	SecondaryColor     string `json:"secondary_color"`
	TextColor          string `json:"text_color"`
	TextSecondaryColor string `json:"text_secondary_color"`
	BackgroundColor    string `json:"background_color"`
	FontLogo           string `json:"font_logo"`
	FontBody           string `json:"font_body"`
	SiteName           string `json:"site_name"`
	SiteDescription    string `json:"site_description"`
}

// MenuItem is a navigation entry
type MenuItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FooterLink is a footer navigation entry
type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SocialLink points at a tenant social profile
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// TenantConfig is the full tenant presentation bundle served to the site
type TenantConfig struct {
	Theme       TenantTheme  `json:"theme"`
	MenuItems   []MenuItem   `json:"menu_items"`
	FooterLinks []FooterLink `json:"footer_links"`
	SocialLinks []SocialLink `json:"social_links"`
	Copyright   string       `json:"copyright"`
}

// DefaultTenantTheme is the fallback identity used when no tenant row exists
func DefaultTenantTheme() TenantTheme {
	return TenantTheme{
		ID:                 "default",
		TenantID:           "default",
		LogoText:           "Logo",
		PrimaryColor:       "#18A0FB",
		PrimaryHoverColor:  "#1590E0",
		SecondaryColor:     "#6DE4EA",
		TextColor:          "#000000",
		TextSecondaryColor: "rgba(0, 0, 0, 0.8)",
		BackgroundColor:    "#FFFFFF",
		FontLogo:           "Cinzel Decorative",
		FontBody:           "Montserrat",
		SiteName:           "Dominio Lucrativo",
		SiteDescription:    "Specialized content for growing niche audiences",
	}
}

// DefaultTenantConfig bundles the default theme with the default navigation
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		Theme: DefaultTenantTheme(),
		MenuItems: []MenuItem{
			{Label: "Home", Href: "/"},
			{Label: "Categories", Href: "/categorias"},
			{Label: "About", Href: "/sobre"},
			{Label: "Contact", Href: "/contato"},
		},
		FooterLinks: []FooterLink{
			{Label: "Terms of Use", Href: "/termos"},
			{Label: "Privacy Policy", Href: "/privacidade"},
			{Label: "FAQ", Href: "/faq"},
		},
		SocialLinks: []SocialLink{
			{Platform: "facebook", URL: "https://facebook.com"},
			{Platform: "twitter", URL: "https://twitter.com"},
			{Platform: "instagram", URL: "https://instagram.com"},
		},
		Copyright: "Dominio Lucrativo 2025. All rights reserved.",
	}
}
