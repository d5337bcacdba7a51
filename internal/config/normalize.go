package config

import (
	"fmt"
	"path"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// NormalizationResult captures adjustments & warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

func (r *NormalizationResult) changed(field string, from, to any) {
	r.Warnings = append(r.Warnings, warnChanged(field, from, to))
}

// NormalizeConfig canonicalizes enumerations and route paths prior to default
// application. Enumerations that cannot be recognized are left untouched for
// validation to reject, except logging settings which fall back to defaults.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.InternalError("config nil").Build()
	}
	res := &NormalizationResult{}
	normalizeLogging(&c.Logging, res)
	normalizeSidebarOptions(&c.OpenAPI.SidebarOptions, res)
	normalizeDocs(&c.Docs, res)
	for i := range c.Versions {
		v := &c.Versions[i]
		v.Label = strings.TrimSpace(v.Label)
		v.SpecPath = strings.TrimSpace(v.SpecPath)
		if v.Path != "" {
			if p := normalizeRoutePath(v.Path); p != v.Path {
				res.changed(fmt.Sprintf("versions[%d].path", i), v.Path, p)
				v.Path = p
			}
		}
	}
	for i := range c.StaticPages {
		sp := &c.StaticPages[i]
		if !strings.HasPrefix(strings.TrimSpace(sp.Path), "/") {
			continue
		}
		if p := normalizeRoutePath(sp.Path); p != sp.Path {
			res.changed(fmt.Sprintf("static_pages[%d].path", i), sp.Path, p)
			sp.Path = p
		}
	}
	c.OpenAPI.ID = strings.TrimSpace(c.OpenAPI.ID)
	c.OpenAPI.OutputDir = strings.Trim(strings.TrimSpace(c.OpenAPI.OutputDir), "/")
	return res, nil
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if lvl := NormalizeLogLevel(string(l.Level)); lvl != "" {
		if l.Level != lvl {
			res.changed("logging.level", l.Level, lvl)
			l.Level = lvl
		}
	} else if strings.TrimSpace(string(l.Level)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.level", string(l.Level), string(LogLevelInfo)))
		l.Level = LogLevelInfo
	}
	if f := NormalizeLogFormat(string(l.Format)); f != "" {
		if l.Format != f {
			res.changed("logging.format", l.Format, f)
			l.Format = f
		}
	} else if strings.TrimSpace(string(l.Format)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.format", string(l.Format), string(LogFormatText)))
		l.Format = LogFormatText
	}
}

func normalizeSidebarOptions(o *SidebarOptions, res *NormalizationResult) {
	if g := NormalizeGroupPathsBy(string(o.GroupPathsBy)); g != "" && g != o.GroupPathsBy {
		res.changed("openapi.sidebar_options.group_paths_by", o.GroupPathsBy, g)
		o.GroupPathsBy = g
	}
	if s := NormalizeCategoryLinkSource(string(o.CategoryLinkSource)); s != "" && s != o.CategoryLinkSource {
		res.changed("openapi.sidebar_options.category_link_source", o.CategoryLinkSource, s)
		o.CategoryLinkSource = s
	}
	o.DefaultCategory = strings.TrimSpace(o.DefaultCategory)
}

func normalizeDocs(d *DocsConfig, res *NormalizationResult) {
	if d.RouteBasePath != "" {
		if p := normalizeRoutePath(d.RouteBasePath); p != d.RouteBasePath {
			res.changed("docs.route_base_path", d.RouteBasePath, p)
			d.RouteBasePath = p
		}
	}
	d.LastVersion = strings.TrimSpace(d.LastVersion)
	d.SidebarName = strings.TrimSpace(d.SidebarName)
}

// normalizeRoutePath returns a cleaned absolute URL path without trailing slash ("/" stays "/").
func normalizeRoutePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	return path.Clean("/" + p)
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
