package opds

import (
	"fmt"
	"net/url"
	"strings"
)

// Identifier identifies a resource by either a URL or a URN. The value is
// kept in its original spelling after validation.
type Identifier struct {
	value string
	urn   bool
}

// ParseIdentifier validates a URL or URN identifier.
func ParseIdentifier(s string) (Identifier, error) {
	u, err := url.Parse(s)
	if err != nil {
		return Identifier{}, err
	}
	if u.Scheme == "" {
		return Identifier{}, fmt.Errorf("identifier is not absolute")
	}
	if strings.EqualFold(u.Scheme, "urn") {
		if u.Opaque == "" || !strings.Contains(u.Opaque, ":") {
			return Identifier{}, fmt.Errorf("urn lacks a namespace-specific part")
		}
		return Identifier{value: s, urn: true}, nil
	}
	return Identifier{value: s}, nil
}

// IsURN reports whether the identifier is a URN rather than a URL.
func (id Identifier) IsURN() bool { return id.urn }

// IsZero reports whether the identifier is absent.
func (id Identifier) IsZero() bool { return id.value == "" }

// String returns the identifier as written.
func (id Identifier) String() string { return id.value }

// parseURL validates an absolute URL and returns it as written.
func parseURL(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("url is not absolute")
	}
	return s, nil
}

// AltIdentifier is an alternate identifier for a resource, optionally scoped
// to an identifier scheme.
type AltIdentifier struct {
	Value  string
	Scheme string // URL of the identifier scheme
}

// altIdentifierOf builds the string-shorthand form.
func altIdentifierOf(value string) AltIdentifier {
	return AltIdentifier{Value: value}
}
