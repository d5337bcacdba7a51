package pages

import (
	"errors"
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/apidocs/internal/frontmatter"
)

// ComputeFingerprint computes the canonical content fingerprint of a page:
// the mdfp hash of its sorted frontmatter (fingerprint field excluded,
// single trailing newline trimmed) and its body.
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField {
			continue
		}
		forHash[k] = v
	}
	fm := ""
	if len(forHash) > 0 {
		serialized, err := frontmatter.SerializeYAML(forHash)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

// stamp computes the fingerprint, records it in fields and renders the page file.
func stamp(fields map[string]any, body []byte) (content []byte, fingerprint string, err error) {
	fingerprint, err = ComputeFingerprint(fields, body)
	if err != nil {
		return nil, "", err
	}
	fields[mdfp.FingerprintField] = fingerprint
	content, err = frontmatter.Render(fields, body)
	if err != nil {
		return nil, "", err
	}
	return content, fingerprint, nil
}
