package versioning

import (
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// Plan assigns a kind and mount to every version, preserving order. The
// latest release is lastVersion, or the first released version when empty.
// Without any release, nothing is mounted at the site root.
func Plan(inputs []Input, lastVersion string) ([]Version, error) {
	latest := lastVersion
	if latest == "" {
		for _, in := range inputs {
			if !in.Unreleased {
				latest = in.Label
				break
			}
		}
	}

	out := make([]Version, 0, len(inputs))
	mounts := make(map[string]string, len(inputs))
	for _, in := range inputs {
		v := Version{Label: in.Label, SpecPath: in.SpecPath}
		switch {
		case in.Unreleased:
			v.Kind, v.Mount = KindCurrent, CurrentMount
		case in.Label == latest:
			v.Kind, v.Mount = KindLatest, ""
		default:
			v.Kind, v.Mount = KindArchived, "/"+in.Label
		}
		if in.Path != "" {
			v.Mount = in.Path
			if v.Mount == "/" {
				v.Mount = ""
			}
		}
		if other, taken := mounts[v.Mount]; taken {
			return nil, errors.ValidationError("versions share a mount path").
				WithContext(errors.KeyPath, v.RootPath()).
				InVersion(v.Label).
				WithContext("other", other).
				Build()
		}
		mounts[v.Mount] = v.Label
		out = append(out, v)
	}
	if lastVersion != "" && !contains(out, lastVersion) {
		return nil, errors.ValidationError("last_version is not a configured version").
			InVersion(lastVersion).
			Build()
	}
	return out, nil
}

func contains(vs []Version, label string) bool {
	for _, v := range vs {
		if v.Label == label {
			return true
		}
	}
	return false
}
