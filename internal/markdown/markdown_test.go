package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstParagraph(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Classify a name.", "Classify a name."},
		{"inline markup", "Returns **nationality** for a `name`.", "Returns nationality for a name."},
		{"link", "See [the docs](https://example.com) now.", "See the docs now."},
		{"soft break folds", "First line\nsecond line\n\nNext paragraph.", "First line second line"},
		{"heading skipped", "# Title\n\nBody text.", "Body text."},
		{"autolink", "Visit <https://example.com>.", "Visit https://example.com."},
		{"empty", "", ""},
		{"list only", "- item", "item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstParagraph(tt.in))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Terms of Service", Title("intro\n\n# Terms of *Service*\n\n## Section"))
	assert.Equal(t, "", Title("## Only level two"))
}
