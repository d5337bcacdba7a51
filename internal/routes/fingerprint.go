package routes

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// DefaultFingerprintLength matches the short hashes of the upstream generator.
	DefaultFingerprintLength = 3
	maxFingerprintLength     = sha256.Size * 2
)

// Fingerprint derives a node's short hex hash from its path, component and
// content identity. Any change to one of them changes the hash; nothing
// else does.
func Fingerprint(path, component, content string, length int) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte(component))
	h.Write([]byte{0})
	h.Write([]byte(content))
	sum := hex.EncodeToString(h.Sum(nil))
	if length <= 0 || length > maxFingerprintLength {
		length = maxFingerprintLength
	}
	return sum[:length]
}

// childDigest identifies a container by the paths it routes to.
func childDigest(children []*Node) string {
	h := sha256.New()
	for _, c := range children {
		h.Write([]byte(c.Path))
		h.Write([]byte("\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
