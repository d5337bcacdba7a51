// Package slug derives document ids from OpenAPI names. Words are split the
// way the docs plugin does it: on punctuation and whitespace, at lower→upper
// transitions, before the last capital of an acronym followed by lower case,
// and between letters and digits.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type class int

const (
	classBreak class = iota
	classUpper
	classLower
	classDigit
	classOther
)

func classify(r rune) class {
	switch {
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLower(r):
		return classLower
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsLetter(r):
		return classOther
	default:
		return classBreak
	}
}

// deburr strips combining marks after compatibility decomposition ("Café" → "Cafe").
func deburr(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Words splits s into words.
func Words(s string) []string {
	s = deburr(s)
	s = strings.NewReplacer("'", "", "’", "").Replace(s)
	rs := []rune(s)

	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(rs[start:end]))
		}
		start = -1
	}

	for i, r := range rs {
		c := classify(r)
		if c == classBreak {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if boundary(rs, i) {
			flush(i)
			start = i
		}
	}
	flush(len(rs))
	return words
}

// boundary reports whether a new word starts at rs[i] (rs[i-1] is part of a word).
func boundary(rs []rune, i int) bool {
	prev, cur := classify(rs[i-1]), classify(rs[i])
	if (prev == classDigit) != (cur == classDigit) {
		return true
	}
	switch {
	case prev == classLower && cur == classUpper:
		return true
	case prev == classOther && cur == classUpper:
		return true
	case prev == classUpper && cur == classUpper:
		// "XMLHttp": split before the capital that starts a lower-case run.
		return i+1 < len(rs) && classify(rs[i+1]) == classLower
	}
	return false
}

// Kebab joins the lower-cased words of s with hyphens.
func Kebab(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}
