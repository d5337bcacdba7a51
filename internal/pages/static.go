package pages

import (
	"os"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/frontmatter"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
)

// LoadStatic reads a standalone Markdown page routed at routePath. The file
// is emitted unchanged; its fingerprint covers frontmatter and body.
func LoadStatic(routePath, source string) (Page, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return Page{}, errors.FileSystemError("failed to read static page").
			WithCause(err).
			InFile(source).
			WithContext(errors.KeyPath, routePath).
			Build()
	}
	fm, body, _, err := frontmatter.Split(data)
	if err != nil {
		return Page{}, staticError(err, source, routePath)
	}
	fields, err := frontmatter.ParseYAML(fm)
	if err != nil {
		return Page{}, staticError(err, source, routePath)
	}
	fp, err := ComputeFingerprint(fields, body)
	if err != nil {
		return Page{}, staticError(err, source, routePath)
	}
	name := strings.TrimPrefix(routePath, "/")
	if name == "" {
		name = "index"
	}
	return Page{
		Kind:        KindStatic,
		Slug:        routePath,
		FileName:    name + ".md",
		Content:     data,
		Fingerprint: fp,
		Title:       staticTitle(fields, body),
	}, nil
}

func staticTitle(fields map[string]any, body []byte) string {
	if t, ok := fields["title"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return markdown.Title(string(body))
}

func staticError(err error, source, routePath string) error {
	return errors.WrapError(err, errors.CategoryBuild, "invalid static page frontmatter").
		Fatal().
		InFile(source).
		WithContext(errors.KeyPath, routePath).
		Build()
}
