package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// CurrentVersion is the configuration schema version accepted by Load.
const CurrentVersion = "1.0"

// Config is the root of the apidocs configuration file.
type Config struct {
	Version     string          `yaml:"version"`
	Output      OutputConfig    `yaml:"output"`
	Docs        DocsConfig      `yaml:"docs"`
	OpenAPI     OpenAPIConfig   `yaml:"openapi"`
	Versions    []VersionConfig `yaml:"versions"`
	StaticPages []StaticPage    `yaml:"static_pages,omitempty"`
	Site        SiteConfig      `yaml:"site"`
	Logging     LoggingConfig   `yaml:"logging"`
	Metrics     MetricsConfig   `yaml:"metrics,omitempty"`

	// baseDir is the directory of the loaded file; relative input paths resolve against it.
	baseDir string
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// KeepPrevious retains the replaced output as <directory>.prev after promotion.
	KeepPrevious bool `yaml:"keep_previous,omitempty"`
}

// DocsConfig holds the route table settings shared by every version.
type DocsConfig struct {
	RouteBasePath     string               `yaml:"route_base_path"`
	SidebarName       string               `yaml:"sidebar_name"`
	FingerprintLength int                  `yaml:"fingerprint_length"`
	LastVersion       string               `yaml:"last_version,omitempty"`
	GeneratedIndex    GeneratedIndexConfig `yaml:"generated_index"`
}

// GeneratedIndexConfig describes the category page wrapping every API sidebar.
type GeneratedIndexConfig struct {
	Enabled     *bool  `yaml:"enabled,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Slug        string `yaml:"slug,omitempty"`
}

// IsEnabled reports whether the generated index is emitted. Unset means enabled.
func (g GeneratedIndexConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// OpenAPIConfig mirrors one openapi-docs plugin instance.
type OpenAPIConfig struct {
	ID             string         `yaml:"id"`
	OutputDir      string         `yaml:"output_dir"`
	Validate       bool           `yaml:"validate,omitempty"`
	SidebarOptions SidebarOptions `yaml:"sidebar_options"`
}

// VersionConfig declares one documentation version. Declaration order matters:
// it drives mount selection and route tie-breaking.
type VersionConfig struct {
	Label      string `yaml:"label"`
	SpecPath   string `yaml:"spec_path"`
	Unreleased bool   `yaml:"unreleased,omitempty"`
	// Path overrides the computed mount ("/" mounts at the site root).
	Path string `yaml:"path,omitempty"`
}

// StaticPage is a standalone page routed outside the versioned docs.
type StaticPage struct {
	Path   string `yaml:"path"`
	Source string `yaml:"source"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// BaseDir returns the directory relative paths are resolved against.
func (c *Config) BaseDir() string {
	return c.baseDir
}

// ResolvePath resolves p against the configuration file directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// Load reads, normalizes, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			InFile(configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().
			InFile(configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to resolve config directory").Fatal().Build()
	}
	cfg.baseDir = abs
	return cfg, nil
}

// Parse runs the load pipeline on raw YAML bytes. Relative paths resolve
// against the working directory until Load sets the file directory.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	if cfg.Version != CurrentVersion {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %s)", cfg.Version, CurrentVersion)).
			OnField("version").
			Build()
	}

	nres, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range nres.Warnings {
		slog.Warn("config normalization", "warning", w)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			InFile(configPath).
			Build()
	}

	data, err := yaml.Marshal(ExampleConfig())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Fatal().Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().
			InFile(configPath).
			Build()
	}
	return nil
}

// ExampleConfig returns the configuration written by Init.
func ExampleConfig() *Config {
	enabled := true
	return &Config{
		Version: CurrentVersion,
		Output:  OutputConfig{Directory: "./build"},
		Docs: DocsConfig{
			RouteBasePath:     "/",
			SidebarName:       DefaultSidebarName,
			FingerprintLength: DefaultFingerprintLength,
			LastVersion:       "1.0.0",
			GeneratedIndex: GeneratedIndexConfig{
				Enabled:     &enabled,
				Title:       "N2E API",
				Description: "Predict ethnicity from a person's name.",
				Slug:        "/",
			},
		},
		OpenAPI: OpenAPIConfig{
			ID:        "n2e",
			OutputDir: "n2e",
			SidebarOptions: SidebarOptions{
				GroupPathsBy:       GroupPathsByTag,
				CategoryLinkSource: CategoryLinkSourceTag,
				DefaultCategory:    DefaultCategoryLabel,
				InfoPage:           &enabled,
			},
		},
		Versions: []VersionConfig{
			{Label: "next", SpecPath: "openapi/n2e.yaml", Unreleased: true},
			{Label: "1.0.0", SpecPath: "versioned/1.0.0/n2e.yaml"},
			{Label: "0.2.0", SpecPath: "versioned/0.2.0/n2e.yaml"},
		},
		Site: SiteConfig{
			Title:   "name-to-ethnicity",
			Tagline: "API documentation",
			URL:     "https://name-to-ethnicity.com",
			BaseURL: "/",
			Navbar: NavbarConfig{
				Title: "N2E",
				Logo:  &LogoConfig{Alt: "N2E logo", Src: "img/logo.svg"},
				Items: []NavItem{
					{Type: "docsVersionDropdown", Position: "left"},
					{Label: "GitHub", Href: "https://github.com/name-to-ethnicity", Position: "right"},
				},
			},
			Footer: FooterConfig{
				Style:     "dark",
				Copyright: "Copyright name-to-ethnicity",
			},
			LanguageTabs: []LanguageTab{
				{Highlight: "bash", Language: "curl", LogoClass: "bash"},
				{Highlight: "python", Language: "python", LogoClass: "python", Variant: "requests"},
			},
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers() {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "failed to apply defaults").
				Fatal().
				WithContext("domain", applier.Domain()).
				Build()
		}
	}
	return nil
}
