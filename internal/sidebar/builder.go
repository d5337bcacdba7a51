package sidebar

import (
	"path"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/openapi"
	"git.home.luguber.info/inful/apidocs/internal/slug"
)

// Options control sidebar construction.
type Options struct {
	// OutputDir prefixes every doc id.
	OutputDir string
	// TagLinks attaches each category's tag page as its landing link.
	TagLinks bool
	// DefaultCategory labels the category collecting untagged operations.
	DefaultCategory string
	// InfoPage emits the document landing entry first.
	InfoPage bool
}

// Build maps tags to categories and operations to leaves. It fails on
// duplicate operationIds and on doc id collisions.
func Build(version string, doc *openapi.Document, opts Options) (*Sidebar, error) {
	b := &builder{
		version: version,
		opts:    opts,
		ids:     make(map[string]string),
		ops:     make(map[string]*openapi.Operation),
		sb:      &Sidebar{Version: version},
	}
	if doc == nil {
		return nil, errors.InternalError("sidebar: nil document").InVersion(version).Build()
	}
	b.sb.Info = openapi.Document{Title: doc.Title, Description: doc.Description, Version: doc.Version, Tags: doc.Tags}

	if opts.InfoPage {
		id := b.docID(doc.Title)
		if err := b.claim(id, "info page"); err != nil {
			return nil, err
		}
		b.sb.Items = append(b.sb.Items, &Doc{ID: id})
		b.sb.Entries = append(b.sb.Entries, Entry{Kind: EntryInfo, ID: id, Label: doc.Title})
	}

	groups := make(map[string][]*openapi.Operation)
	var untagged []*openapi.Operation
	for i := range doc.Operations {
		op := &doc.Operations[i]
		if prev, dup := b.ops[op.ID]; dup {
			return nil, errors.SpecError("duplicate operationId").
				InVersion(version).
				WithContext(errors.KeyOperation, op.ID).
				AtOperation(op.Method, op.Path).
				WithContext("first", prev.Method+" "+prev.Path).
				Build()
		}
		b.ops[op.ID] = op
		if op.Tag == "" {
			untagged = append(untagged, op)
			continue
		}
		groups[op.Tag] = append(groups[op.Tag], op)
	}

	categories := make(map[string]*Category)
	for _, name := range doc.TagOrder() {
		tag, ok := doc.Tag(name)
		if !ok {
			tag = openapi.Tag{Name: name}
		}
		cat, err := b.category(tag)
		if err != nil {
			return nil, err
		}
		for _, op := range groups[name] {
			if err := b.leaf(cat, op); err != nil {
				return nil, err
			}
		}
		categories[name] = cat
		b.sb.Items = append(b.sb.Items, cat)
	}

	if len(untagged) > 0 {
		// Untagged operations join an existing category of the same label,
		// otherwise a linkless category appended last.
		cat, ok := categories[opts.DefaultCategory]
		if !ok {
			cat = &Category{Label: opts.DefaultCategory}
			b.sb.Items = append(b.sb.Items, cat)
		}
		for _, op := range untagged {
			if err := b.leaf(cat, op); err != nil {
				return nil, err
			}
		}
	}
	return b.sb, nil
}

type builder struct {
	version string
	opts    Options
	ids     map[string]string // doc id -> owner, for collision reports
	ops     map[string]*openapi.Operation
	sb      *Sidebar
}

func (b *builder) docID(name string) string {
	return path.Join(b.opts.OutputDir, slug.Kebab(name))
}

func (b *builder) claim(id, owner string) error {
	if prev, taken := b.ids[id]; taken {
		return errors.SpecError("duplicate doc id").
			InVersion(b.version).
			WithContext("doc_id", id).
			WithContext("first", prev).
			WithContext("second", owner).
			Build()
	}
	b.ids[id] = owner
	return nil
}

func (b *builder) category(tag openapi.Tag) (*Category, error) {
	cat := &Category{Label: tag.Name}
	if !b.opts.TagLinks {
		return cat, nil
	}
	id := b.docID(tag.Name)
	if err := b.claim(id, "tag "+tag.Name); err != nil {
		return nil, err
	}
	cat.Link = &Link{Type: LinkDoc, ID: id}
	b.sb.Entries = append(b.sb.Entries, Entry{Kind: EntryTag, ID: id, Label: tag.Name, Tag: tag})
	return cat, nil
}

func (b *builder) leaf(cat *Category, op *openapi.Operation) error {
	id := b.docID(op.ID)
	if err := b.claim(id, "operation "+op.ID); err != nil {
		return err
	}
	leaf := &Doc{ID: id, Label: Label(op), ClassName: ClassName(op)}
	cat.Items = append(cat.Items, leaf)
	b.sb.Entries = append(b.sb.Entries, Entry{
		Kind:      EntryOperation,
		ID:        id,
		Label:     leaf.Label,
		ClassName: leaf.ClassName,
		Operation: op,
	})
	return nil
}

// Label is the sidebar text of an operation: its summary, else the first
// paragraph of its description, else its operationId.
func Label(op *openapi.Operation) string {
	if op.Summary != "" {
		return op.Summary
	}
	if text := markdown.FirstParagraph(op.Description); text != "" {
		return text
	}
	return op.ID
}

// ClassName renders the method badge class.
func ClassName(op *openapi.Operation) string {
	class := "api-method " + op.Method
	if op.Deprecated {
		class += " deprecated"
	}
	return class
}
