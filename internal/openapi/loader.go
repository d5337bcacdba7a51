package openapi

import (
	"context"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// LoadOptions tune document loading.
type LoadOptions struct {
	// Validate runs full OpenAPI schema validation.
	Validate bool
	// Version and Source only decorate error context.
	Version string
	Source  string
}

func (o LoadOptions) specError(message string) *errors.ErrorBuilder {
	b := errors.SpecError(message).InVersion(o.Version)
	if o.Source != "" {
		b = b.InFile(o.Source)
	}
	return b
}

// LoadFile reads and loads the document at path.
func LoadFile(ctx context.Context, path string, opts LoadOptions) (*Document, error) {
	if opts.Source == "" {
		opts.Source = path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read OpenAPI document").
			Fatal().
			InFile(path).
			InVersion(opts.Version).
			Build()
	}
	return Load(ctx, data, opts)
}

// Load parses a YAML or JSON OpenAPI document. External references are not
// followed. A missing info.title or operationId is fatal.
func Load(ctx context.Context, data []byte, opts LoadOptions) (*Document, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	loader.Context = ctx

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, opts.specError("failed to parse OpenAPI document").WithCause(err).Build()
	}
	if opts.Validate {
		if err := spec.Validate(ctx); err != nil {
			return nil, opts.specError("OpenAPI document failed validation").WithCause(err).Build()
		}
	}

	if spec.Info == nil || strings.TrimSpace(spec.Info.Title) == "" {
		return nil, opts.specError("document is missing info.title").OnField("info.title").Build()
	}

	order, err := declarationOrder(data)
	if err != nil {
		return nil, opts.specError("failed to read declaration order").WithCause(err).Build()
	}

	doc := &Document{
		Title:       spec.Info.Title,
		Description: spec.Info.Description,
		Version:     spec.Info.Version,
	}
	for _, t := range spec.Tags {
		if t == nil {
			continue
		}
		doc.Tags = append(doc.Tags, Tag{Name: t.Name, Description: t.Description})
	}

	seen := make(map[opKey]bool)
	for _, key := range order {
		op, err := operation(spec, key, opts)
		if err != nil {
			return nil, err
		}
		if op == nil {
			continue
		}
		seen[key] = true
		doc.Operations = append(doc.Operations, *op)
	}

	// Operations the source walk could not see still get documented, in
	// sorted order after the declared ones.
	for _, key := range remainingKeys(spec, seen) {
		op, err := operation(spec, key, opts)
		if err != nil {
			return nil, err
		}
		if op != nil {
			doc.Operations = append(doc.Operations, *op)
		}
	}
	return doc, nil
}

func operation(spec *openapi3.T, key opKey, opts LoadOptions) (*Operation, error) {
	if spec.Paths == nil {
		return nil, nil
	}
	item := spec.Paths.Value(key.path)
	if item == nil {
		return nil, nil
	}
	src := item.GetOperation(strings.ToUpper(key.method))
	if src == nil {
		return nil, nil
	}
	if strings.TrimSpace(src.OperationID) == "" {
		return nil, opts.specError("operation is missing operationId").
			AtOperation(key.method, key.path).
			Build()
	}
	op := &Operation{
		ID:          src.OperationID,
		Method:      key.method,
		Path:        key.path,
		Summary:     strings.TrimSpace(src.Summary),
		Description: strings.TrimSpace(src.Description),
		Deprecated:  src.Deprecated,
	}
	if len(src.Tags) > 0 {
		op.Tag = src.Tags[0]
	}
	return op, nil
}

func remainingKeys(spec *openapi3.T, seen map[opKey]bool) []opKey {
	if spec.Paths == nil {
		return nil
	}
	var keys []opKey
	for path, item := range spec.Paths.Map() {
		for method := range item.Operations() {
			key := opKey{path: path, method: strings.ToLower(method)}
			if !seen[key] {
				keys = append(keys, key)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].path != keys[j].path {
			return keys[i].path < keys[j].path
		}
		return methodRank(keys[i].method) < methodRank(keys[j].method)
	})
	return keys
}

var methodOrder = []string{
	http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete,
	http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodTrace,
}

func methodRank(method string) int {
	for i, m := range methodOrder {
		if strings.EqualFold(m, method) {
			return i
		}
	}
	return len(methodOrder)
}
