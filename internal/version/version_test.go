package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })
	Version = "v1.2.3"

	assert.Equal(t, "apidocs v1.2.3 (commit unknown, built unknown)", String())
}
