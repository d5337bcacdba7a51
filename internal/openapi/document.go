// Package openapi loads an OpenAPI document into the flat, ordered model the
// sidebar builder consumes.
package openapi

// Operation is one documented endpoint.
type Operation struct {
	ID          string
	Tag         string // first declared tag, "" when untagged
	Method      string // lower-case HTTP verb
	Path        string
	Summary     string
	Description string
	Deprecated  bool
}

// Tag is a top-level tag declaration.
type Tag struct {
	Name        string
	Description string
}

// Document is the ordered view of an OpenAPI document.
type Document struct {
	Title       string
	Description string
	Version     string
	// Tags lists the declared tags in file order.
	Tags []Tag
	// Operations are in declaration order: path order, then method order.
	Operations []Operation
}

// Tag returns the declaration for name.
func (d *Document) Tag(name string) (Tag, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// TagOrder returns the tags used by operations, in first-seen order.
// Untagged operations are not represented.
func (d *Document) TagOrder() []string {
	seen := make(map[string]bool)
	var order []string
	for _, op := range d.Operations {
		if op.Tag == "" || seen[op.Tag] {
			continue
		}
		seen[op.Tag] = true
		order = append(order, op.Tag)
	}
	return order
}
