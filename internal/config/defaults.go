package config

import "strings"

const (
	DefaultOutputDirectory   = "./build"
	DefaultSidebarName       = "openApiSidebar"
	DefaultFingerprintLength = 3
	DefaultCategoryLabel     = "default"
	DefaultOpenAPIID         = "api"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		&OutputDefaultApplier{},
		&DocsDefaultApplier{},
		&OpenAPIDefaultApplier{},
		&SiteDefaultApplier{},
		&LoggingDefaultApplier{},
	}
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	return nil
}

// DocsDefaultApplier handles route table defaults.
type DocsDefaultApplier struct{}

func (d *DocsDefaultApplier) Domain() string { return "docs" }

func (d *DocsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Docs.RouteBasePath == "" {
		cfg.Docs.RouteBasePath = "/"
	}
	if cfg.Docs.SidebarName == "" {
		cfg.Docs.SidebarName = DefaultSidebarName
	}
	if cfg.Docs.FingerprintLength == 0 {
		cfg.Docs.FingerprintLength = DefaultFingerprintLength
	}
	gi := &cfg.Docs.GeneratedIndex
	if gi.Enabled == nil {
		enabled := true
		gi.Enabled = &enabled
	}
	if gi.Slug == "" {
		gi.Slug = "/"
	}
	return nil
}

// OpenAPIDefaultApplier handles plugin instance and sidebar option defaults.
type OpenAPIDefaultApplier struct{}

func (o *OpenAPIDefaultApplier) Domain() string { return "openapi" }

func (o *OpenAPIDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.OpenAPI.ID == "" {
		cfg.OpenAPI.ID = DefaultOpenAPIID
	}
	if cfg.OpenAPI.OutputDir == "" {
		cfg.OpenAPI.OutputDir = cfg.OpenAPI.ID
	}
	so := &cfg.OpenAPI.SidebarOptions
	if so.GroupPathsBy == "" {
		so.GroupPathsBy = GroupPathsByTag
	}
	if so.CategoryLinkSource == "" {
		so.CategoryLinkSource = CategoryLinkSourceTag
	}
	if so.DefaultCategory == "" {
		so.DefaultCategory = DefaultCategoryLabel
	}
	if so.InfoPage == nil {
		enabled := true
		so.InfoPage = &enabled
	}
	return nil
}

// SiteDefaultApplier handles site declaration defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "/"
	}
	if cfg.Site.Footer.Style == "" {
		cfg.Site.Footer.Style = "light"
	}
	if cfg.Site.Navbar.Title == "" {
		cfg.Site.Navbar.Title = cfg.Site.Title
	}
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}
