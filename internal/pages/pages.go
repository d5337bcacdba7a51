// Package pages renders the MDX stubs backing sidebar entries. A page's
// fingerprint is the content identity route fingerprints are derived from.
package pages

import (
	"fmt"
	"path"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/sidebar"
)

// Kind classifies a page.
type Kind string

const (
	KindInfo           Kind = "info"
	KindTag            Kind = "tag"
	KindOperation      Kind = "operation"
	KindGeneratedIndex Kind = "generated-index"
	KindStatic         Kind = "static"
)

// Page is one routable document.
type Page struct {
	Kind Kind
	// ID is the doc id ("n2e/classification-route"); empty for generated
	// indexes and static pages.
	ID string
	// Slug replaces ID as route segment when set.
	Slug string
	// FileName is relative to the version docs directory. Empty for pages
	// that exist only as routes.
	FileName    string
	Content     []byte
	Fingerprint string
	// Title is set for static pages: frontmatter title, else the first
	// level-one heading.
	Title string
}

// RouteSegment is the path segment appended below the version mount.
func (p Page) RouteSegment() string {
	if p.Slug != "" {
		return p.Slug
	}
	return p.ID
}

// IndexOptions describe the generated-index page of the wrapping category.
type IndexOptions struct {
	Title       string
	Description string
	Slug        string
}

// Options control rendering.
type Options struct {
	// Index emits the generated-index page when non-nil.
	Index *IndexOptions
}

// Render renders the pages of one version sidebar, in sidebar order, with
// the generated index (if any) first.
func Render(sb *sidebar.Sidebar, opts Options) ([]Page, error) {
	var out []Page
	if opts.Index != nil {
		p, err := renderIndex(*opts.Index)
		if err != nil {
			return nil, wrapRender(err, sb.Version, "generated-index")
		}
		out = append(out, p)
	}
	for _, e := range sb.Entries {
		var (
			fields map[string]any
			body   string
			kind   Kind
			suffix string
		)
		switch e.Kind {
		case sidebar.EntryInfo:
			fields, body = infoPage(sb, e)
			kind, suffix = KindInfo, ".info.mdx"
		case sidebar.EntryTag:
			fields, body = tagPage(e)
			kind, suffix = KindTag, ".tag.mdx"
		case sidebar.EntryOperation:
			fields, body = operationPage(e)
			kind, suffix = KindOperation, ".api.mdx"
		default:
			return nil, errors.InternalError(fmt.Sprintf("unknown sidebar entry kind %q", e.Kind)).Build()
		}
		content, fp, err := stamp(fields, []byte(body))
		if err != nil {
			return nil, wrapRender(err, sb.Version, e.ID)
		}
		out = append(out, Page{
			Kind:        kind,
			ID:          e.ID,
			FileName:    e.ID + suffix,
			Content:     content,
			Fingerprint: fp,
		})
	}
	return out, nil
}

func wrapRender(err error, version, id string) error {
	return errors.WrapError(err, errors.CategoryBuild, "failed to render page").
		Fatal().
		InVersion(version).
		WithContext("doc_id", id).
		Build()
}

func renderIndex(opts IndexOptions) (Page, error) {
	fields := map[string]any{
		"title":       opts.Title,
		"description": opts.Description,
		"slug":        opts.Slug,
	}
	fp, err := ComputeFingerprint(fields, nil)
	if err != nil {
		return Page{}, err
	}
	return Page{Kind: KindGeneratedIndex, Slug: opts.Slug, Fingerprint: fp}, nil
}

func infoPage(sb *sidebar.Sidebar, e sidebar.Entry) (map[string]any, string) {
	info := sb.Info
	fields := map[string]any{
		"id":              path.Base(e.ID),
		"title":           info.Title,
		"description":     firstLine(info.Description),
		"sidebar_label":   info.Title,
		"hide_title":      true,
		"custom_edit_url": nil,
	}
	var b strings.Builder
	b.WriteString("\n")
	if info.Version != "" {
		fmt.Fprintf(&b, "<span className={\"theme-doc-version-badge badge badge--secondary\"}>Version: %s</span>\n\n", info.Version)
	}
	fmt.Fprintf(&b, "# %s\n", info.Title)
	if info.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", info.Description)
	}
	return fields, b.String()
}

func tagPage(e sidebar.Entry) (map[string]any, string) {
	fields := map[string]any{
		"id":              path.Base(e.ID),
		"title":           e.Tag.Name,
		"description":     firstLine(e.Tag.Description),
		"custom_edit_url": nil,
	}
	var b strings.Builder
	b.WriteString("\nimport DocCardList from '@theme/DocCardList';\nimport {useCurrentSidebarCategory} from '@docusaurus/theme-common';\n\n")
	if e.Tag.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", e.Tag.Description)
	}
	b.WriteString("```mdx-code-block\n<DocCardList items={useCurrentSidebarCategory().items}/>\n```\n")
	return fields, b.String()
}

func operationPage(e sidebar.Entry) (map[string]any, string) {
	op := e.Operation
	fields := map[string]any{
		"id":                     path.Base(e.ID),
		"title":                  e.Label,
		"description":            firstLine(op.Description),
		"sidebar_label":          e.Label,
		"hide_title":             true,
		"hide_table_of_contents": true,
		"api":                    map[string]any{"method": op.Method, "path": op.Path},
		"sidebar_class_name":     strings.TrimPrefix(e.ClassName, "api-method "),
		"custom_edit_url":        nil,
	}
	if op.Deprecated {
		fields["deprecated"] = true
	}
	var b strings.Builder
	b.WriteString("\nimport MethodEndpoint from \"@theme/ApiExplorer/MethodEndpoint\";\n\n")
	fmt.Fprintf(&b, "# %s\n\n", e.Label)
	fmt.Fprintf(&b, "<MethodEndpoint method={%q} path={%q}></MethodEndpoint>\n", op.Method, op.Path)
	if op.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", op.Description)
	}
	return fields, b.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
