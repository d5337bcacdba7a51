// Package sidebar builds the per-version API sidebar from an OpenAPI document.
package sidebar

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"git.home.luguber.info/inful/apidocs/internal/openapi"
)

// Item is a sidebar entry: a *Category or a *Doc.
type Item interface {
	isItem()
}

// Link types.
const (
	LinkDoc            = "doc"
	LinkGeneratedIndex = "generated-index"
)

// Link is a category landing page.
type Link struct {
	Type        string `json:"type"`
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// Category groups the operations of one tag.
type Category struct {
	Label string
	Link  *Link
	Items []Item
}

// Doc is a leaf pointing at one generated page.
type Doc struct {
	ID        string
	Label     string
	ClassName string
}

func (*Category) isItem() {}
func (*Doc) isItem()      {}

// MarshalJSON emits the discriminated shape read by the docs theme.
func (c *Category) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Label string `json:"label"`
		Link  *Link  `json:"link,omitempty"`
		Items []Item `json:"items"`
	}{"category", c.Label, c.Link, items})
}

// MarshalJSON emits the discriminated shape read by the docs theme.
func (d *Doc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		ID        string `json:"id"`
		Label     string `json:"label,omitempty"`
		ClassName string `json:"className,omitempty"`
	}{"doc", d.ID, d.Label, d.ClassName})
}

// EntryKind identifies what backs a sidebar doc.
type EntryKind string

const (
	EntryInfo      EntryKind = "info"
	EntryTag       EntryKind = "tag"
	EntryOperation EntryKind = "operation"
)

// Entry is one generated page referenced by the sidebar, in sidebar order.
type Entry struct {
	Kind      EntryKind
	ID        string
	Label     string
	ClassName string
	Tag       openapi.Tag        // EntryTag
	Operation *openapi.Operation // EntryOperation
}

// Sidebar is the immutable sidebar of one documentation version.
type Sidebar struct {
	Version string
	Items   []Item
	Entries []Entry
	// Info carries the document header for the landing page.
	Info openapi.Document
}

// MarshalJSON emits the { "apisidebar": [...] } table.
func (s *Sidebar) MarshalJSON() ([]byte, error) {
	items := s.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(struct {
		APISidebar []Item `json:"apisidebar"`
	}{items})
}

// Digest is a sha256 hex digest of the sidebar table.
func (s *Sidebar) Digest() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Wrap nests items under a generated-index category, the way a site's
// sidebars file mounts the API sidebar.
func Wrap(label string, index Link, items []Item) *Category {
	index.Type = LinkGeneratedIndex
	return &Category{Label: label, Link: &index, Items: items}
}

// Walk visits every Doc in depth-first order.
func Walk(items []Item, fn func(*Doc)) {
	for _, it := range items {
		switch v := it.(type) {
		case *Doc:
			fn(v)
		case *Category:
			Walk(v.Items, fn)
		}
	}
}
