package build

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/emit"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/observability"
	"git.home.luguber.info/inful/apidocs/internal/openapi"
	"git.home.luguber.info/inful/apidocs/internal/pages"
	"git.home.luguber.info/inful/apidocs/internal/routes"
	"git.home.luguber.info/inful/apidocs/internal/sidebar"
	"git.home.luguber.info/inful/apidocs/internal/versioning"
)

// state is threaded through the stages of one build.
type state struct {
	cfg     *config.Config
	report  *Report
	dryRun  bool
	emitter *emit.Emitter

	versions []versionState
	static   []pages.Page
	tree     *routes.Tree
}

// versionState is what the stages produce for one version, in declaration order.
type versionState struct {
	version versioning.Version
	doc     *openapi.Document
	sidebar *sidebar.Sidebar
	pages   []pages.Page
}

func stageLoadSpecs(ctx context.Context, st *state) error {
	inputs := make([]versioning.Input, 0, len(st.cfg.Versions))
	for _, v := range st.cfg.Versions {
		inputs = append(inputs, versioning.Input{Label: v.Label, SpecPath: v.SpecPath, Unreleased: v.Unreleased, Path: v.Path})
	}
	planned, err := versioning.Plan(inputs, st.cfg.Docs.LastVersion)
	if err != nil {
		return err
	}

	st.versions = make([]versionState, 0, len(planned))
	for _, v := range planned {
		vctx := observability.WithVersion(ctx, v.Label)
		path := st.cfg.ResolvePath(v.SpecPath)
		doc, err := openapi.LoadFile(vctx, path, openapi.LoadOptions{
			Validate: st.cfg.OpenAPI.Validate,
			Version:  v.Label,
			Source:   path,
		})
		if err != nil {
			return err
		}
		observability.InfoContext(vctx, "Loaded OpenAPI document",
			logfields.File(path), logfields.Count(len(doc.Operations)), logfields.Path(v.RootPath()))
		st.versions = append(st.versions, versionState{version: v, doc: doc})
	}
	return nil
}

func stageBuildSidebars(ctx context.Context, st *state) error {
	so := st.cfg.OpenAPI.SidebarOptions
	opts := sidebar.Options{
		OutputDir:       st.cfg.OpenAPI.OutputDir,
		TagLinks:        so.CategoryLinkSource == config.CategoryLinkSourceTag,
		DefaultCategory: so.DefaultCategory,
		InfoPage:        so.InfoPageEnabled(),
	}
	for i := range st.versions {
		vs := &st.versions[i]
		sb, err := sidebar.Build(vs.version.Label, vs.doc, opts)
		if err != nil {
			return err
		}
		vs.sidebar = sb
		observability.DebugContext(observability.WithVersion(ctx, vs.version.Label), "Built sidebar",
			logfields.Count(len(sb.Entries)))
	}
	return nil
}

func stageRenderPages(ctx context.Context, st *state) error {
	opts := pages.Options{Index: st.indexOptions()}
	for i := range st.versions {
		vs := &st.versions[i]
		ps, err := pages.Render(vs.sidebar, opts)
		if err != nil {
			return err
		}
		vs.pages = ps
	}
	for _, sp := range st.cfg.StaticPages {
		p, err := pages.LoadStatic(sp.Path, st.cfg.ResolvePath(sp.Source))
		if err != nil {
			return err
		}
		st.static = append(st.static, p)
	}
	observability.DebugContext(ctx, "Rendered pages", logfields.Count(st.pageCount()))
	return nil
}

func stageCompileRoutes(ctx context.Context, st *state) error {
	inputs := make([]routes.VersionInput, 0, len(st.versions))
	for _, vs := range st.versions {
		inputs = append(inputs, routes.VersionInput{
			Version:       vs.version,
			SidebarDigest: vs.sidebar.Digest(),
			Pages:         vs.pages,
		})
	}
	tree, err := routes.Compile(inputs, st.static, routes.Options{
		RouteBasePath:     st.cfg.Docs.RouteBasePath,
		SidebarName:       st.cfg.Docs.SidebarName,
		FingerprintLength: st.cfg.Docs.FingerprintLength,
	})
	if err != nil {
		return err
	}
	st.tree = tree
	st.summarize()

	for _, o := range tree.Overrides {
		observability.WarnContext(ctx, "Route overridden by a later source",
			logfields.Path(o.Path), slog.String("dropped", o.Dropped), slog.String("winner", o.Winner))
	}
	if n := len(tree.Overrides); n > 0 {
		return errors.BuildError(fmt.Sprintf("%d route(s) produced by more than one source; later sources won", n)).
			Warning().
			Build()
	}
	return nil
}

func stageEmitArtifacts(ctx context.Context, st *state) error {
	a := &emit.Artifacts{
		Tree:        st.tree,
		Static:      st.static,
		SidebarName: st.cfg.Docs.SidebarName,
		Site:        st.cfg.Site,
		Docs: emit.DocsSettings{
			RouteBasePath: st.cfg.Docs.RouteBasePath,
			SidebarName:   st.cfg.Docs.SidebarName,
			LastVersion:   st.cfg.Docs.LastVersion,
		},
	}
	for _, vs := range st.versions {
		a.Versions = append(a.Versions, emit.VersionArtifacts{Version: vs.version, Sidebar: vs.sidebar, Pages: vs.pages})
	}
	if idx := st.indexOptions(); idx != nil && len(st.versions) > 0 {
		a.Wrapper = sidebar.Wrap(idx.Title, sidebar.Link{Title: idx.Title, Description: idx.Description, Slug: idx.Slug}, st.versions[0].sidebar.Items)
	}

	res, err := st.emitter.Emit(a)
	if err != nil {
		return err
	}
	st.report.Files = len(res.Files)
	st.report.Bytes = res.Bytes
	observability.DebugContext(ctx, "Emitted artifacts", logfields.Count(len(res.Files)))
	return nil
}

// indexOptions describes the generated-index page, or nil when disabled.
// The title falls back to the first version's document title.
func (st *state) indexOptions() *pages.IndexOptions {
	gi := st.cfg.Docs.GeneratedIndex
	if !gi.IsEnabled() {
		return nil
	}
	title := gi.Title
	if title == "" && len(st.versions) > 0 {
		title = st.versions[0].doc.Title
	}
	return &pages.IndexOptions{Title: title, Description: gi.Description, Slug: gi.Slug}
}

func (st *state) pageCount() int {
	n := len(st.static)
	for _, vs := range st.versions {
		n += len(vs.pages)
	}
	return n
}

// summarize fills the per-version counts of the report from the route tree.
func (st *state) summarize() {
	perVersion := make(map[string]int)
	total := 0
	for _, leaf := range st.tree.Leaves() {
		total++
		if leaf.Version != "" {
			perVersion[leaf.Version]++
		}
	}
	st.report.Versions = st.report.Versions[:0]
	for _, vs := range st.versions {
		st.report.Versions = append(st.report.Versions, VersionSummary{
			Label:      vs.version.Label,
			Path:       vs.version.RootPath(),
			Operations: len(vs.doc.Operations),
			Pages:      len(vs.pages),
			Routes:     perVersion[vs.version.Label],
		})
	}
	st.report.StaticPages = len(st.static)
	st.report.Routes = total
	st.report.Overrides = st.tree.Overrides
}
