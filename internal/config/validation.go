package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

const (
	minFingerprintLength = 3
	maxFingerprintLength = 64
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	steps := []func() error{
		cv.validateVersions,
		cv.validateDocs,
		cv.validateOpenAPI,
		cv.validateStaticPages,
		cv.validateSite,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return errors.ValidationError(fmt.Sprintf(format, args...)).
		OnField(field).
		Build()
}

func (cv *configurationValidator) validateVersions() error {
	if len(cv.config.Versions) == 0 {
		return invalid("versions", "at least one version must be configured")
	}
	labels := make(map[string]bool, len(cv.config.Versions))
	paths := make(map[string]string)
	unreleased := ""
	for i, v := range cv.config.Versions {
		field := fmt.Sprintf("versions[%d]", i)
		if v.Label == "" {
			return invalid(field+".label", "version label cannot be empty")
		}
		if strings.ContainsAny(v.Label, "/\\") {
			return invalid(field+".label", "version label %q must not contain path separators", v.Label)
		}
		if labels[v.Label] {
			return invalid(field+".label", "duplicate version label: %s", v.Label)
		}
		labels[v.Label] = true
		if v.SpecPath == "" {
			return invalid(field+".spec_path", "spec_path is required for version %s", v.Label)
		}
		if v.Unreleased {
			if unreleased != "" {
				return invalid(field+".unreleased", "only one unreleased version allowed (%s and %s)", unreleased, v.Label)
			}
			unreleased = v.Label
		}
		if v.Path != "" {
			if other, ok := paths[v.Path]; ok {
				return invalid(field+".path", "versions %s and %s share mount path %s", other, v.Label, v.Path)
			}
			paths[v.Path] = v.Label
		}
	}
	return nil
}

func (cv *configurationValidator) validateDocs() error {
	d := cv.config.Docs
	if d.FingerprintLength < minFingerprintLength || d.FingerprintLength > maxFingerprintLength {
		return invalid("docs.fingerprint_length", "fingerprint_length must be between %d and %d, got %d",
			minFingerprintLength, maxFingerprintLength, d.FingerprintLength)
	}
	if !strings.HasPrefix(d.RouteBasePath, "/") {
		return invalid("docs.route_base_path", "route_base_path must be absolute: %q", d.RouteBasePath)
	}
	if d.LastVersion != "" {
		found := false
		for _, v := range cv.config.Versions {
			if v.Label != d.LastVersion {
				continue
			}
			if v.Unreleased {
				return invalid("docs.last_version", "last_version %s is unreleased", d.LastVersion)
			}
			found = true
		}
		if !found {
			return invalid("docs.last_version", "last_version %s is not a configured version", d.LastVersion)
		}
	}
	return nil
}

func (cv *configurationValidator) validateOpenAPI() error {
	o := cv.config.OpenAPI
	if strings.ContainsAny(o.ID, "/\\ ") {
		return invalid("openapi.id", "plugin id %q must be a single path segment", o.ID)
	}
	if o.SidebarOptions.GroupPathsBy != GroupPathsByTag {
		return invalid("openapi.sidebar_options.group_paths_by", "unsupported group_paths_by %q, valid options: %v",
			o.SidebarOptions.GroupPathsBy, groupPathsByNormalizer.ValidKeys())
	}
	switch o.SidebarOptions.CategoryLinkSource {
	case CategoryLinkSourceTag, CategoryLinkSourceNone:
	default:
		return invalid("openapi.sidebar_options.category_link_source", "unsupported category_link_source %q, valid options: %v",
			o.SidebarOptions.CategoryLinkSource, categoryLinkSourceNormalizer.ValidKeys())
	}
	return nil
}

func (cv *configurationValidator) validateStaticPages() error {
	seen := make(map[string]bool)
	for i, sp := range cv.config.StaticPages {
		field := fmt.Sprintf("static_pages[%d]", i)
		if !strings.HasPrefix(sp.Path, "/") {
			return invalid(field+".path", "static page path must be absolute: %q", sp.Path)
		}
		if sp.Source == "" {
			return invalid(field+".source", "static page %s needs a source file", sp.Path)
		}
		if seen[sp.Path] {
			return invalid(field+".path", "duplicate static page path: %s", sp.Path)
		}
		seen[sp.Path] = true
	}
	return nil
}

func (cv *configurationValidator) validateSite() error {
	s := cv.config.Site
	if strings.TrimSpace(s.Title) == "" {
		return invalid("site.title", "site title cannot be empty")
	}
	if !strings.HasPrefix(s.BaseURL, "/") || !strings.HasSuffix(s.BaseURL, "/") {
		return invalid("site.base_url", "base_url must start and end with '/': %q", s.BaseURL)
	}
	for i, item := range s.Navbar.Items {
		field := fmt.Sprintf("site.navbar.items[%d]", i)
		if item.Type != "" {
			continue
		}
		if item.Label == "" {
			return invalid(field+".label", "navbar item needs a label")
		}
		if err := exactlyOneTarget(field, item.Href, item.To); err != nil {
			return err
		}
	}
	for i, col := range s.Footer.Links {
		for j, link := range col.Items {
			field := fmt.Sprintf("site.footer.links[%d].items[%d]", i, j)
			if link.Label == "" {
				return invalid(field+".label", "footer link needs a label")
			}
			if err := exactlyOneTarget(field, link.Href, link.To); err != nil {
				return err
			}
		}
	}
	for i, tab := range s.LanguageTabs {
		if tab.Language == "" || tab.Highlight == "" {
			return invalid(fmt.Sprintf("site.language_tabs[%d]", i), "language tab needs language and highlight")
		}
	}
	return nil
}

func exactlyOneTarget(field, href, to string) error {
	if (href == "") == (to == "") {
		return invalid(field, "exactly one of href or to must be set")
	}
	return nil
}
