package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

func validConfig() *Config {
	cfg := &Config{
		Version: CurrentVersion,
		Versions: []VersionConfig{
			{Label: "next", SpecPath: "a.yaml", Unreleased: true},
			{Label: "1.0.0", SpecPath: "b.yaml"},
		},
		Site: SiteConfig{Title: "Docs"},
	}
	if err := applyDefaults(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"no versions", func(c *Config) { c.Versions = nil }, "versions"},
		{"empty label", func(c *Config) { c.Versions[1].Label = "" }, "versions[1].label"},
		{"label with slash", func(c *Config) { c.Versions[1].Label = "v1/x" }, "versions[1].label"},
		{"duplicate label", func(c *Config) { c.Versions[1].Label = "next" }, "versions[1].label"},
		{"missing spec", func(c *Config) { c.Versions[0].SpecPath = "" }, "versions[0].spec_path"},
		{"two unreleased", func(c *Config) { c.Versions[1].Unreleased = true }, "versions[1].unreleased"},
		{"shared mount", func(c *Config) { c.Versions[0].Path = "/v"; c.Versions[1].Path = "/v" }, "versions[1].path"},
		{"fingerprint too short", func(c *Config) { c.Docs.FingerprintLength = 2 }, "docs.fingerprint_length"},
		{"fingerprint too long", func(c *Config) { c.Docs.FingerprintLength = 65 }, "docs.fingerprint_length"},
		{"unknown last version", func(c *Config) { c.Docs.LastVersion = "9.9.9" }, "docs.last_version"},
		{"unreleased last version", func(c *Config) { c.Docs.LastVersion = "next" }, "docs.last_version"},
		{"released last version", func(c *Config) { c.Docs.LastVersion = "1.0.0" }, ""},
		{"bad group strategy", func(c *Config) { c.OpenAPI.SidebarOptions.GroupPathsBy = "path" }, "openapi.sidebar_options.group_paths_by"},
		{"bad link source", func(c *Config) { c.OpenAPI.SidebarOptions.CategoryLinkSource = "auto" }, "openapi.sidebar_options.category_link_source"},
		{"relative static page", func(c *Config) { c.StaticPages = []StaticPage{{Path: "terms", Source: "t.md"}} }, "static_pages[0].path"},
		{"static page without source", func(c *Config) { c.StaticPages = []StaticPage{{Path: "/terms"}} }, "static_pages[0].source"},
		{"empty title", func(c *Config) { c.Site.Title = " " }, "site.title"},
		{"bad base url", func(c *Config) { c.Site.BaseURL = "/docs" }, "site.base_url"},
		{"navbar item without target", func(c *Config) { c.Site.Navbar.Items = []NavItem{{Label: "GitHub"}} }, "site.navbar.items[0]"},
		{"navbar item with both targets", func(c *Config) { c.Site.Navbar.Items = []NavItem{{Label: "x", Href: "h", To: "/t"}} }, "site.navbar.items[0]"},
		{"typed navbar item", func(c *Config) { c.Site.Navbar.Items = []NavItem{{Type: "docsVersionDropdown"}} }, ""},
		{"footer link without label", func(c *Config) {
			c.Site.Footer.Links = []FooterColumn{{Title: "More", Items: []FooterLink{{Href: "https://x"}}}}
		}, "site.footer.links[0].items[0].label"},
		{"language tab incomplete", func(c *Config) { c.Site.LanguageTabs = []LanguageTab{{Language: "curl"}} }, "site.language_tabs[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			classified, ok := errors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, errors.CategoryValidation, classified.Category())
			field, _ := classified.Context().GetString("field")
			assert.Equal(t, tt.field, field)
		})
	}
}
