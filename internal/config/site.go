package config

// SiteConfig holds the theme declarations handed to the static-site generator.
// JSON tags follow the generator's own config keys.
type SiteConfig struct {
	Title        string        `yaml:"title" json:"title"`
	Tagline      string        `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	URL          string        `yaml:"url" json:"url"`
	BaseURL      string        `yaml:"base_url" json:"baseUrl"`
	Favicon      string        `yaml:"favicon,omitempty" json:"favicon,omitempty"`
	Navbar       NavbarConfig  `yaml:"navbar" json:"navbar"`
	Footer       FooterConfig  `yaml:"footer" json:"footer"`
	LanguageTabs []LanguageTab `yaml:"language_tabs,omitempty" json:"languageTabs,omitempty"`
}

type NavbarConfig struct {
	Title string      `yaml:"title,omitempty" json:"title,omitempty"`
	Logo  *LogoConfig `yaml:"logo,omitempty" json:"logo,omitempty"`
	Items []NavItem   `yaml:"items,omitempty" json:"items"`
}

type LogoConfig struct {
	Alt string `yaml:"alt" json:"alt"`
	Src string `yaml:"src" json:"src"`
}

// NavItem is a navbar entry. Typed items (e.g. docsVersionDropdown) need no label.
type NavItem struct {
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Label    string `yaml:"label,omitempty" json:"label,omitempty"`
	Href     string `yaml:"href,omitempty" json:"href,omitempty"`
	To       string `yaml:"to,omitempty" json:"to,omitempty"`
	Position string `yaml:"position,omitempty" json:"position,omitempty"`
}

type FooterConfig struct {
	Style     string         `yaml:"style,omitempty" json:"style,omitempty"`
	Links     []FooterColumn `yaml:"links,omitempty" json:"links"`
	Copyright string         `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

type FooterColumn struct {
	Title string       `yaml:"title" json:"title"`
	Items []FooterLink `yaml:"items" json:"items"`
}

type FooterLink struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
	To    string `yaml:"to,omitempty" json:"to,omitempty"`
}

// LanguageTab is one request sample language shown on operation pages.
type LanguageTab struct {
	Highlight string `yaml:"highlight" json:"highlight"`
	Language  string `yaml:"language" json:"language"`
	LogoClass string `yaml:"logo_class" json:"logoClass"`
	Variant   string `yaml:"variant,omitempty" json:"variant,omitempty"`
}
