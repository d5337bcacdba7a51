// Package routes merges every version's pages and the static pages into the
// path-keyed route tree consumed by the client-side router.
package routes

// Theme components referenced by route nodes.
const (
	ComponentDocsRoot       = "@theme/DocsRoot"
	ComponentDocVersionRoot = "@theme/DocVersionRoot"
	ComponentDocRoot        = "@theme/DocRoot"
	ComponentAPIItem        = "@theme/ApiItem"
	ComponentGeneratedIndex = "@theme/DocCategoryGeneratedIndexPage"
	ComponentMDXPage        = "@theme/MDXPage"
	ComponentNotFound       = "@theme/NotFound"
)

// NotFoundPath is the catch-all route path.
const NotFoundPath = "*"

// Node is one route. Leaves are exact; containers hold children.
type Node struct {
	Path        string  `json:"path"`
	Component   string  `json:"component"`
	Fingerprint string  `json:"componentRef"`
	Exact       bool    `json:"exact"`
	Sidebar     string  `json:"sidebarName,omitempty"`
	Children    []*Node `json:"children,omitempty"`

	// Source names what produced a leaf, for override reports.
	Source string `json:"-"`
	// Version is the label of the version the node belongs to.
	Version string `json:"-"`
}

// Override records a leaf dropped because a later source produced the same path.
type Override struct {
	Path    string `json:"path"`
	Dropped string `json:"dropped"`
	Winner  string `json:"winner"`
}

// Tree is the merged route table.
type Tree struct {
	// Static are standalone pages, sorted by path, routed before the docs.
	Static []*Node
	// Root is the docs root ("/") holding one container per version.
	Root *Node
	// NotFound is the catch-all, always routed last.
	NotFound *Node
	// Overrides lists tie-break decisions in the order they were made.
	Overrides []Override
}

// Routes returns the top-level route list in router order.
func (t *Tree) Routes() []*Node {
	out := make([]*Node, 0, len(t.Static)+2)
	out = append(out, t.Static...)
	if t.Root != nil {
		out = append(out, t.Root)
	}
	if t.NotFound != nil {
		out = append(out, t.NotFound)
	}
	return out
}

// Leaves returns every exact route, depth-first in router order.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if n.Exact {
				out = append(out, n)
			}
			walk(n.Children)
		}
	}
	walk(t.Routes())
	return out
}

// Lookup finds the exact route for path.
func (t *Tree) Lookup(path string) *Node {
	for _, n := range t.Leaves() {
		if n.Path == path {
			return n
		}
	}
	return nil
}
