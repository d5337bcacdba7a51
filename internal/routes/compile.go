package routes

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/pages"
	"git.home.luguber.info/inful/apidocs/internal/versioning"
)

// VersionInput is everything the compiler needs from one version.
type VersionInput struct {
	Version versioning.Version
	// SidebarDigest identifies the version's sidebar table.
	SidebarDigest string
	Pages         []pages.Page
}

// Options control path construction and fingerprints.
type Options struct {
	RouteBasePath     string
	SidebarName       string
	FingerprintLength int
}

type candidate struct {
	node    *Node
	version int // index into versions; -1 for static pages
}

// Compile builds the route tree. Versions are taken in declaration order and
// static pages count as declared after all versions: when two sources
// produce the same path the later one wins and the earlier leaf is dropped
// with an Override record.
func Compile(versions []VersionInput, static []pages.Page, opts Options) (*Tree, error) {
	if opts.FingerprintLength == 0 {
		opts.FingerprintLength = DefaultFingerprintLength
	}
	if opts.FingerprintLength < 1 || opts.FingerprintLength > maxFingerprintLength {
		return nil, errors.InternalError(fmt.Sprintf("fingerprint length %d out of range", opts.FingerprintLength)).Build()
	}
	fp := func(n *Node, content string) {
		n.Fingerprint = Fingerprint(n.Path, n.Component, content, opts.FingerprintLength)
	}

	tree := &Tree{}
	var candidates []candidate
	index := make(map[string]int)
	add := func(c candidate) {
		if prev, ok := index[c.node.Path]; ok {
			tree.Overrides = append(tree.Overrides, Override{
				Path:    c.node.Path,
				Dropped: candidates[prev].node.Source,
				Winner:  c.node.Source,
			})
			candidates[prev].node = nil
		}
		index[c.node.Path] = len(candidates)
		candidates = append(candidates, c)
	}

	for vi, in := range versions {
		for _, p := range in.Pages {
			n := &Node{
				Path:      JoinPath(opts.RouteBasePath, in.Version.Mount, p.RouteSegment()),
				Component: leafComponent(p.Kind),
				Exact:     true,
				Sidebar:   opts.SidebarName,
				Source:    fmt.Sprintf("version %s %s %s", in.Version.Label, p.Kind, p.RouteSegment()),
				Version:   in.Version.Label,
			}
			fp(n, p.Fingerprint)
			add(candidate{node: n, version: vi})
		}
	}
	for _, p := range static {
		n := &Node{
			Path:      JoinPath(p.Slug),
			Component: ComponentMDXPage,
			Exact:     true,
			Source:    "static page " + p.Slug,
		}
		fp(n, p.Fingerprint)
		add(candidate{node: n, version: -1})
	}

	leaves := make([][]*Node, len(versions))
	for _, c := range candidates {
		if c.node == nil {
			continue
		}
		if c.version < 0 {
			tree.Static = append(tree.Static, c.node)
			continue
		}
		leaves[c.version] = append(leaves[c.version], c.node)
	}
	sortStatic(tree.Static)

	root := &Node{Path: "/", Component: ComponentDocsRoot}
	for vi, in := range versions {
		base := JoinPath(opts.RouteBasePath, in.Version.Mount)
		docRoot := &Node{Path: base, Component: ComponentDocRoot, Version: in.Version.Label, Children: leaves[vi]}
		sortChildren(docRoot)
		fp(docRoot, childDigest(docRoot.Children))

		versionRoot := &Node{Path: base, Component: ComponentDocVersionRoot, Version: in.Version.Label, Children: []*Node{docRoot}}
		fp(versionRoot, in.SidebarDigest)
		root.Children = append(root.Children, versionRoot)
	}
	sortChildren(root)
	fp(root, childDigest(root.Children))
	tree.Root = root

	tree.NotFound = &Node{Path: NotFoundPath, Component: ComponentNotFound}
	fp(tree.NotFound, "")
	return tree, nil
}

func leafComponent(kind pages.Kind) string {
	switch kind {
	case pages.KindGeneratedIndex:
		return ComponentGeneratedIndex
	case pages.KindStatic:
		return ComponentMDXPage
	default:
		return ComponentAPIItem
	}
}

// JoinPath joins URL path segments into an absolute path. A last segment
// ending in "/" keeps its trailing slash, so a "/" slug routes to the
// mount's index.
func JoinPath(segments ...string) string {
	var parts []string
	trailing := false
	for _, s := range segments {
		if s == "" {
			continue
		}
		trailing = strings.HasSuffix(s, "/")
		for _, p := range strings.Split(s, "/") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	joined := "/" + strings.Join(parts, "/")
	if trailing && joined != "/" {
		joined += "/"
	}
	return joined
}

// sortChildren orders children by path; a child whose path equals its
// parent's sorts last because the router takes the first match.
func sortChildren(parent *Node) {
	sort.SliceStable(parent.Children, func(i, j int) bool {
		a, b := parent.Children[i], parent.Children[j]
		aBase, bBase := a.Path == parent.Path, b.Path == parent.Path
		if aBase != bBase {
			return bBase
		}
		return a.Path < b.Path
	})
}

func sortStatic(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Path < nodes[j].Path })
}
