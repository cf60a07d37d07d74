package opds

import (
	"errors"
	"sort"

	"golang.org/x/text/language"
)

// LangTag is a BCP 47 language tag, kept in its original spelling.
type LangTag string

// ParseLangTag validates a BCP 47 language tag. The original spelling is
// preserved; tags are not canonicalized. Well-formed tags with unknown
// subtags are accepted.
func ParseLangTag(s string) (LangTag, error) {
	_, err := language.Parse(s)
	var verr language.ValueError
	if err != nil && !errors.As(err, &verr) {
		return "", err
	}
	return LangTag(s), nil
}

// LangString is one per-language alternative of a MultiString.
type LangString struct {
	Tag   LangTag
	Value string
}

// MultiString is a display value that is exactly one of: a single string, or
// a set of per-language alternatives keyed by language tag. Both forms are
// first class and round-trip as given; there is no shorthand collapsing
// between them. Alternatives are kept sorted by tag for deterministic output.
type MultiString struct {
	single string
	tagged []LangString
}

// Text builds the single-string form.
func Text(s string) MultiString {
	return MultiString{single: s}
}

// Localized builds the per-language form. Alternatives are sorted by tag; a
// duplicate tag keeps the last value. Tags are assumed valid; use
// ParseLangTag for untrusted input.
func Localized(alts ...LangString) MultiString {
	sorted := make([]LangString, len(alts))
	copy(sorted, alts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })
	out := sorted[:0]
	for i, a := range sorted {
		if i+1 < len(sorted) && sorted[i+1].Tag == a.Tag {
			continue
		}
		out = append(out, a)
	}
	return MultiString{tagged: out}
}

// IsLocalized reports whether this is the per-language form.
func (m MultiString) IsLocalized() bool {
	return m.tagged != nil
}

// IsZero reports whether the value is absent: neither form was set.
func (m MultiString) IsZero() bool {
	return m.single == "" && m.tagged == nil
}

// String returns the single-string value, or the first alternative of the
// per-language form.
func (m MultiString) String() string {
	if m.tagged != nil {
		if len(m.tagged) == 0 {
			return ""
		}
		return m.tagged[0].Value
	}
	return m.single
}

// Alternates returns the per-language alternatives in tag order, or nil for
// the single-string form. The returned slice must not be modified.
func (m MultiString) Alternates() []LangString {
	return m.tagged
}

// Get returns the value for an exact language tag.
func (m MultiString) Get(tag LangTag) (string, bool) {
	for _, a := range m.tagged {
		if a.Tag == tag {
			return a.Value, true
		}
	}
	return "", false
}
