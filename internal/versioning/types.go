// Package versioning decides where each documentation version is mounted.
package versioning

// Kind classifies a version by release state.
type Kind string

const (
	// KindCurrent is the unreleased working version.
	KindCurrent Kind = "current"
	// KindLatest is the most recent release, served at the site root.
	KindLatest Kind = "latest"
	// KindArchived is an older release.
	KindArchived Kind = "archived"
)

// CurrentMount is where the unreleased version is served unless overridden.
const CurrentMount = "/next"

// Input is one configured version, in declaration order.
type Input struct {
	Label      string
	SpecPath   string
	Unreleased bool
	// Path overrides the computed mount; "/" means the site root.
	Path string
}

// Version is a planned version.
type Version struct {
	Label    string `json:"label"`
	SpecPath string `json:"-"`
	Kind     Kind   `json:"kind"`
	// Mount is the path prefix, "" for the site root.
	Mount string `json:"path"`
}

// Banner is the notice the theme shows above the version's pages.
func (v Version) Banner() string {
	switch v.Kind {
	case KindCurrent:
		return "unreleased"
	case KindArchived:
		return "unmaintained"
	default:
		return "none"
	}
}

// RootPath is the mount as an absolute path ("/" for the site root).
func (v Version) RootPath() string {
	if v.Mount == "" {
		return "/"
	}
	return v.Mount
}
