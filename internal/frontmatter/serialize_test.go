package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeYAML(t *testing.T) {
	out, err := SerializeYAML(map[string]any{
		"title":           "Get all models.",
		"hide_title":      true,
		"custom_edit_url": nil,
		"api":             map[string]any{"path": "/models", "method": "get"},
		"keywords":        []string{"models"},
		"weight":          2,
	})
	require.NoError(t, err)
	assert.Equal(t, `api:
  method: get
  path: /models
custom_edit_url: null
hide_title: true
keywords:
  - models
title: Get all models.
weight: 2
`, string(out))
}

func TestSerializeYAML_QuotesAmbiguousStrings(t *testing.T) {
	out, err := SerializeYAML(map[string]any{"version": "1.0", "flag": "true"})
	require.NoError(t, err)
	assert.Equal(t, "flag: \"true\"\nversion: \"1.0\"\n", string(out))
}

func TestSerializeYAML_EmptyAndUnsupported(t *testing.T) {
	out, err := SerializeYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = SerializeYAML(map[string]any{"bad": struct{}{}})
	require.Error(t, err)
}
