package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		fm     string
		body   string
		had    bool
		hasErr bool
	}{
		{name: "no frontmatter", in: "# Title\n", body: "# Title\n"},
		{name: "frontmatter", in: "---\ntitle: Terms\n---\n# Terms\n", fm: "title: Terms\n", body: "# Terms\n", had: true},
		{name: "crlf", in: "---\r\ntitle: Terms\r\n---\r\nbody\r\n", fm: "title: Terms\n", body: "body\n", had: true},
		{name: "empty block", in: "---\n---\nbody", fm: "", body: "body", had: true},
		{name: "unterminated", in: "---\ntitle: x\n", hasErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := Split([]byte(tt.in))
			if tt.hasErr {
				require.ErrorIs(t, err, ErrMissingClosingDelimiter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.had, had)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	out, err := Render(map[string]any{"title": "Classify names.", "id": "classification-route"}, []byte("\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "---\nid: classification-route\ntitle: Classify names.\n---\n\nbody\n", string(out))

	fm, body, had, err := Split(out)
	require.NoError(t, err)
	require.True(t, had)
	fields, err := ParseYAML(fm)
	require.NoError(t, err)
	assert.Equal(t, "Classify names.", fields["title"])
	assert.Equal(t, "\nbody\n", string(body))
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = ParseYAML([]byte("title: [\n"))
	require.Error(t, err)
}
