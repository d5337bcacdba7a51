// Package emit writes the build artifacts into the output directory through
// a staging directory, so a failed build leaves the previous output intact.
package emit

import (
	"fmt"
	"log/slog"
	"path"
	"sort"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/pages"
	"git.home.luguber.info/inful/apidocs/internal/routes"
	"git.home.luguber.info/inful/apidocs/internal/sidebar"
	"git.home.luguber.info/inful/apidocs/internal/versioning"
)

// Artifact file names, relative to the output directory.
const (
	RoutesJSONFile   = "routes.json"
	RoutesJSFile     = "routes.js"
	SidebarsFile     = "sidebars.json"
	SiteConfigFile   = "site-config.json"
	BuildReportFile  = "build-report.json"
	sidebarsDir      = "sidebars"
	docsDir          = "docs"
	staticPagesDir   = "pages"
	sidebarJSONName  = "sidebar.json"
	sidebarTSName    = "sidebar.ts"
	versionsJSONFile = "versions.json"
)

// VersionArtifacts is the output of one version.
type VersionArtifacts struct {
	Version versioning.Version
	Sidebar *sidebar.Sidebar
	Pages   []pages.Page
}

// Artifacts is everything a build writes.
type Artifacts struct {
	Tree        *routes.Tree
	Versions    []VersionArtifacts
	Static      []pages.Page
	SidebarName string
	// Wrapper mounts the API sidebar in the site sidebars file; nil writes
	// an empty sidebar.
	Wrapper *sidebar.Category
	Site    config.SiteConfig
	Docs    DocsSettings
}

// DocsSettings are the docs plugin options written to the site config.
type DocsSettings struct {
	RouteBasePath string `json:"routeBasePath"`
	SidebarName   string `json:"sidebarName"`
	LastVersion   string `json:"lastVersion,omitempty"`
}

// SiteVersion describes a version in the site config.
type SiteVersion struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Banner string `json:"banner"`
	Kind   string `json:"kind"`
}

// SitePage describes a static page in the site config.
type SitePage struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
	File  string `json:"file"`
}

// SiteDocument is the content of site-config.json.
type SiteDocument struct {
	config.SiteConfig
	Docs     DocsSettings  `json:"docs"`
	Versions []SiteVersion `json:"versions"`
	Pages    []SitePage    `json:"pages"`
}

// Result summarizes an emit.
type Result struct {
	Files []string
	Bytes int64
}

// Emitter writes artifacts to OutputDir.
type Emitter struct {
	OutputDir    string
	KeepPrevious bool
}

// Emit writes every artifact into a staging directory and promotes it over
// OutputDir. On error the staging directory is removed and OutputDir is left
// untouched.
func (e *Emitter) Emit(a *Artifacts) (*Result, error) {
	if a == nil || a.Tree == nil {
		return nil, errors.InternalError("emit called without a route tree").Build()
	}
	files, err := Render(a)
	if err != nil {
		return nil, err
	}

	st := newStager(e.OutputDir, e.KeepPrevious)
	if err := st.begin(); err != nil {
		return nil, fsError(err, e.OutputDir)
	}
	res := &Result{}
	for _, f := range files {
		if err := st.write(f.Name, f.Data); err != nil {
			st.abort()
			return nil, fsError(err, f.Name)
		}
		res.Files = append(res.Files, f.Name)
		res.Bytes += int64(len(f.Data))
	}
	if err := st.finalize(); err != nil {
		st.abort()
		return nil, fsError(err, e.OutputDir)
	}
	slog.Info("Wrote artifacts", logfields.Path(e.OutputDir), logfields.Count(len(res.Files)))
	return res, nil
}

// File is one rendered artifact.
type File struct {
	Name string
	Data []byte
}

// Render produces every artifact in memory, sorted by name.
func Render(a *Artifacts) ([]File, error) {
	var files []File
	add := func(name string, data []byte, err error) error {
		if err != nil {
			return errors.WrapError(err, errors.CategoryBuild, "render artifact").Fatal().
				InFile(name).Build()
		}
		files = append(files, File{Name: name, Data: data})
		return nil
	}

	routesJSON, err := marshalJSON(a.Tree.Routes())
	if err := add(RoutesJSONFile, routesJSON, err); err != nil {
		return nil, err
	}
	if err := add(RoutesJSFile, RoutesJS(a.Tree), nil); err != nil {
		return nil, err
	}
	sidebars, err := SidebarsJSON(a.SidebarName, a.Wrapper)
	if err := add(SidebarsFile, sidebars, err); err != nil {
		return nil, err
	}
	site, err := marshalJSON(siteDocument(a))
	if err := add(SiteConfigFile, site, err); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(a.Versions))
	for _, v := range a.Versions {
		label := v.Version.Label
		labels = append(labels, label)
		sbJSON, err := SidebarJSON(v.Sidebar)
		if err := add(path.Join(sidebarsDir, label, sidebarJSONName), sbJSON, err); err != nil {
			return nil, err
		}
		sbTS, err := SidebarTS(v.Sidebar)
		if err := add(path.Join(sidebarsDir, label, sidebarTSName), sbTS, err); err != nil {
			return nil, err
		}
		for _, p := range v.Pages {
			if p.FileName == "" {
				continue
			}
			if err := add(path.Join(docsDir, label, p.FileName), p.Content, nil); err != nil {
				return nil, err
			}
		}
	}
	versions, err := marshalJSON(labels)
	if err := add(versionsJSONFile, versions, err); err != nil {
		return nil, err
	}
	for _, p := range a.Static {
		if err := add(path.Join(staticPagesDir, p.FileName), p.Content, nil); err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	for i := 1; i < len(files); i++ {
		if files[i].Name == files[i-1].Name {
			return nil, errors.BuildError(fmt.Sprintf("two artifacts write %s", files[i].Name)).
				InFile(files[i].Name).Build()
		}
	}
	return files, nil
}

func siteDocument(a *Artifacts) SiteDocument {
	doc := SiteDocument{SiteConfig: a.Site, Docs: a.Docs, Versions: []SiteVersion{}, Pages: []SitePage{}}
	for _, v := range a.Versions {
		doc.Versions = append(doc.Versions, SiteVersion{
			Label:  v.Version.Label,
			Path:   v.Version.RootPath(),
			Banner: v.Version.Banner(),
			Kind:   string(v.Version.Kind),
		})
	}
	for _, p := range a.Static {
		doc.Pages = append(doc.Pages, SitePage{
			Path:  p.Slug,
			Title: p.Title,
			File:  path.Join(staticPagesDir, p.FileName),
		})
	}
	return doc
}

func fsError(err error, file string) error {
	return errors.FileSystemError("write output").WithCause(err).InFile(file).Build()
}
