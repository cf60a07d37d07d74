package opds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		input string
		urn   bool
		ok    bool
	}{
		{"http://example.org/catalog", false, true},
		{"https://example.org/book?id=42", false, true},
		{"urn:isbn:9780316509848", true, true},
		{"urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6", true, true},
		{"URN:isbn:123", true, true},
		{"/relative/path", false, false},
		{"not an identifier", false, false},
		{"urn:", false, false},
		{"urn:nobody", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseIdentifier(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.urn, id.IsURN())
			// Identifiers are kept as written.
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestIdentifier_Zero(t *testing.T) {
	var id Identifier
	assert.True(t, id.IsZero())
	assert.Equal(t, "", id.String())

	id, err := ParseIdentifier("urn:isbn:123")
	require.NoError(t, err)
	assert.False(t, id.IsZero())
}

func TestParse_URLOnlyFieldRejectsURN(t *testing.T) {
	// A feed identifier must be a URL; URN syntax is fine there since URNs
	// are URIs, but a bare relative path is not.
	in := []byte(`{"metadata":{"title":"t","identifier":"relative/thing"}}`)
	_, err := ParseFeed(in)
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeInvalidIdent, derr.Code)
	assert.Equal(t, "metadata.identifier", derr.Path)
}
