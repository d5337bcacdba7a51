package sidebar

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/openapi"
)

func n2eOptions() Options {
	return Options{OutputDir: "n2e", TagLinks: true, DefaultCategory: "default", InfoPage: true}
}

func loadN2E(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.LoadFile(context.Background(), filepath.Join("..", "openapi", "testdata", "n2e.yaml"), openapi.LoadOptions{})
	require.NoError(t, err)
	return doc
}

func TestBuild_N2E(t *testing.T) {
	sb, err := Build("next", loadN2E(t), n2eOptions())
	require.NoError(t, err)

	data, err := json.Marshal(sb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"apisidebar": [
	  {"type": "doc", "id": "n2e/name-to-ethnicity-api"},
	  {"type": "category", "label": "Classification", "link": {"type": "doc", "id": "n2e/classification"}, "items": [
	    {"type": "doc", "id": "n2e/classification-route", "label": "Classify names.", "className": "api-method post"}
	  ]},
	  {"type": "category", "label": "Model Management", "link": {"type": "doc", "id": "n2e/model-management"}, "items": [
	    {"type": "doc", "id": "n2e/get-models-route", "label": "Get all models.", "className": "api-method get"},
	    {"type": "doc", "id": "n2e/delete-models-route", "label": "Delete models.", "className": "api-method delete deprecated"},
	    {"type": "doc", "id": "n2e/get-default-models-route", "label": "Get all default models.", "className": "api-method get"}
	  ]},
	  {"type": "category", "label": "Miscellaneous", "link": {"type": "doc", "id": "n2e/miscellaneous"}, "items": [
	    {"type": "doc", "id": "n2e/get-nationalities-route", "label": "Returns a list of all available nationalities.", "className": "api-method get"}
	  ]}
	]}`, string(data))

	kinds := make([]EntryKind, 0, len(sb.Entries))
	for _, e := range sb.Entries {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EntryKind{
		EntryInfo, EntryTag, EntryOperation, EntryTag, EntryOperation, EntryOperation, EntryOperation, EntryTag, EntryOperation,
	}, kinds)
	assert.Equal(t, "Classify names.", sb.Entries[1].Tag.Description)
}

func TestBuild_CoverageAndOrder(t *testing.T) {
	doc := loadN2E(t)
	sb, err := Build("next", doc, n2eOptions())
	require.NoError(t, err)

	var leaves []string
	Walk(sb.Items, func(d *Doc) {
		if d.ClassName != "" {
			leaves = append(leaves, d.ID)
		}
	})
	require.Len(t, leaves, len(doc.Operations), "every operation appears exactly once")

	// Within a category, leaves follow declaration order.
	var mm []string
	for _, it := range sb.Items {
		if c, ok := it.(*Category); ok && c.Label == "Model Management" {
			for _, child := range c.Items {
				mm = append(mm, child.(*Doc).ID)
			}
		}
	}
	assert.Equal(t, []string{"n2e/get-models-route", "n2e/delete-models-route", "n2e/get-default-models-route"}, mm)
}

func TestBuild_Deterministic(t *testing.T) {
	doc := loadN2E(t)
	a, err := Build("next", doc, n2eOptions())
	require.NoError(t, err)
	b, err := Build("next", doc, n2eOptions())
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.Len(t, a.Digest(), 64)
}

func TestBuild_DefaultCategory(t *testing.T) {
	doc := &openapi.Document{
		Title: "API",
		Operations: []openapi.Operation{
			{ID: "untaggedOne", Method: "get", Path: "/u1"},
			{ID: "tagged", Tag: "Alpha", Method: "post", Path: "/a"},
			{ID: "untaggedTwo", Method: "put", Path: "/u2", Description: "Updates *things*.\n\nMore."},
		},
	}

	sb, err := Build("next", doc, Options{TagLinks: true, DefaultCategory: "default"})
	require.NoError(t, err)
	require.Len(t, sb.Items, 2)

	last := sb.Items[1].(*Category)
	assert.Equal(t, "default", last.Label)
	assert.Nil(t, last.Link)
	require.Len(t, last.Items, 2)
	assert.Equal(t, &Doc{ID: "untagged-one", Label: "untaggedOne", ClassName: "api-method get"}, last.Items[0])
	assert.Equal(t, "Updates things.", last.Items[1].(*Doc).Label)
}

func TestBuild_DefaultCategoryMergesWithTag(t *testing.T) {
	doc := &openapi.Document{
		Title: "API",
		Operations: []openapi.Operation{
			{ID: "a", Tag: "default", Method: "get", Path: "/a"},
			{ID: "b", Method: "get", Path: "/b"},
		},
	}
	sb, err := Build("next", doc, Options{DefaultCategory: "default"})
	require.NoError(t, err)
	require.Len(t, sb.Items, 1)
	assert.Len(t, sb.Items[0].(*Category).Items, 2)
}

func TestBuild_NoTagLinks(t *testing.T) {
	opts := n2eOptions()
	opts.TagLinks = false
	opts.InfoPage = false
	sb, err := Build("next", loadN2E(t), opts)
	require.NoError(t, err)

	for _, it := range sb.Items {
		c, ok := it.(*Category)
		require.True(t, ok, "no info doc without InfoPage")
		assert.Nil(t, c.Link)
	}
	for _, e := range sb.Entries {
		assert.Equal(t, EntryOperation, e.Kind)
	}
}

func TestBuild_EmptyDocument(t *testing.T) {
	sb, err := Build("next", &openapi.Document{Title: "Empty"}, n2eOptions())
	require.NoError(t, err)
	require.Len(t, sb.Items, 1)
	assert.Equal(t, &Doc{ID: "n2e/empty"}, sb.Items[0])
}

func TestBuild_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		ops     []openapi.Operation
		message string
	}{
		{
			name: "duplicate operationId",
			ops: []openapi.Operation{
				{ID: "classify", Tag: "A", Method: "post", Path: "/a"},
				{ID: "classify", Tag: "B", Method: "post", Path: "/b"},
			},
			message: "duplicate operationId",
		},
		{
			name: "slug collision",
			ops: []openapi.Operation{
				{ID: "getModels", Tag: "A", Method: "get", Path: "/a"},
				{ID: "get_models", Tag: "A", Method: "get", Path: "/b"},
			},
			message: "duplicate doc id",
		},
		{
			name: "operation collides with tag page",
			ops: []openapi.Operation{
				{ID: "classification", Tag: "Classification", Method: "post", Path: "/a"},
			},
			message: "duplicate doc id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("1.0.0", &openapi.Document{Title: "API", Operations: tt.ops}, n2eOptions())
			require.Error(t, err)
			classified, ok := errors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, errors.CategorySpec, classified.Category())
			assert.Equal(t, tt.message, classified.Message())
			v, _ := classified.Context().GetString("version")
			assert.Equal(t, "1.0.0", v)
		})
	}
}

func TestWrap(t *testing.T) {
	cat := Wrap("N2E API", Link{Title: "N2E API", Description: "Predict.", Slug: "/"}, []Item{&Doc{ID: "n2e/x"}})
	data, err := json.Marshal(cat)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"category","label":"N2E API","link":{"type":"generated-index","title":"N2E API","description":"Predict.","slug":"/"},"items":[{"type":"doc","id":"n2e/x"}]}`, string(data))
}
