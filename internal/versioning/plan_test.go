package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

func n2eInputs() []Input {
	return []Input{
		{Label: "next", SpecPath: "openapi/n2e.yaml", Unreleased: true},
		{Label: "1.0.0", SpecPath: "versioned/1.0.0/n2e.yaml"},
		{Label: "0.2.0", SpecPath: "versioned/0.2.0/n2e.yaml"},
	}
}

func TestPlan_Defaults(t *testing.T) {
	versions, err := Plan(n2eInputs(), "")
	require.NoError(t, err)

	assert.Equal(t, []Version{
		{Label: "next", SpecPath: "openapi/n2e.yaml", Kind: KindCurrent, Mount: "/next"},
		{Label: "1.0.0", SpecPath: "versioned/1.0.0/n2e.yaml", Kind: KindLatest, Mount: ""},
		{Label: "0.2.0", SpecPath: "versioned/0.2.0/n2e.yaml", Kind: KindArchived, Mount: "/0.2.0"},
	}, versions)

	assert.Equal(t, "unreleased", versions[0].Banner())
	assert.Equal(t, "none", versions[1].Banner())
	assert.Equal(t, "unmaintained", versions[2].Banner())
	assert.Equal(t, "/", versions[1].RootPath())
	assert.Equal(t, "/next", versions[0].RootPath())
}

func TestPlan_LastVersion(t *testing.T) {
	versions, err := Plan(n2eInputs(), "0.2.0")
	require.NoError(t, err)
	assert.Equal(t, "/1.0.0", versions[1].Mount)
	assert.Equal(t, "", versions[2].Mount)
	assert.Equal(t, KindLatest, versions[2].Kind)
}

func TestPlan_PathOverride(t *testing.T) {
	in := n2eInputs()
	in[0].Path = "/preview"
	in[2].Path = "/legacy"
	versions, err := Plan(in, "")
	require.NoError(t, err)
	assert.Equal(t, "/preview", versions[0].Mount)
	assert.Equal(t, "/legacy", versions[2].Mount)
}

func TestPlan_OnlyUnreleased(t *testing.T) {
	versions, err := Plan([]Input{{Label: "next", Unreleased: true}}, "")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "/next", versions[0].Mount)
}

func TestPlan_DuplicateMount(t *testing.T) {
	in := n2eInputs()
	in[0].Path = "/"
	_, err := Plan(in, "")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "versions share a mount path")
}

func TestPlan_UnknownLastVersion(t *testing.T) {
	_, err := Plan(n2eInputs(), "9.9.9")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}
