package opds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLangTag(t *testing.T) {
	valid := []string{"en", "en-US", "fr", "pt-BR", "zh-Hant", "de-CH-1996"}
	for _, s := range valid {
		tag, err := ParseLangTag(s)
		require.NoError(t, err, s)
		// Original spelling is preserved, never canonicalized.
		assert.Equal(t, LangTag(s), tag)
	}

	invalid := []string{"", "not a tag", "x1y2z3!!", "en_US"}
	for _, s := range invalid {
		_, err := ParseLangTag(s)
		assert.Error(t, err, s)
	}
}

func TestMultiString_Forms(t *testing.T) {
	single := Text("Moby Dick")
	assert.False(t, single.IsLocalized())
	assert.False(t, single.IsZero())
	assert.Equal(t, "Moby Dick", single.String())

	localized := Localized(
		LangString{Tag: "fr", Value: "Le livre"},
		LangString{Tag: "en", Value: "The book"},
	)
	assert.True(t, localized.IsLocalized())

	// Alternatives come back sorted by tag.
	alts := localized.Alternates()
	require.Len(t, alts, 2)
	assert.Equal(t, LangTag("en"), alts[0].Tag)
	assert.Equal(t, LangTag("fr"), alts[1].Tag)

	v, ok := localized.Get("fr")
	require.True(t, ok)
	assert.Equal(t, "Le livre", v)
	_, ok = localized.Get("de")
	assert.False(t, ok)

	var zero MultiString
	assert.True(t, zero.IsZero())
}

func TestMultiString_DuplicateTagKeepsLast(t *testing.T) {
	m := Localized(
		LangString{Tag: "en", Value: "first"},
		LangString{Tag: "en", Value: "second"},
	)
	alts := m.Alternates()
	require.Len(t, alts, 1)
	assert.Equal(t, "second", alts[0].Value)
}

func TestMultiString_EmptySingleVsEmptyMap(t *testing.T) {
	// The two forms stay distinct even when empty-ish.
	assert.False(t, Text("x").IsLocalized())
	assert.True(t, Localized().IsLocalized())
	assert.False(t, Localized().IsZero())
}

func TestMultiString_RoundTrip(t *testing.T) {
	// A localized title survives a parse/encode cycle with sorted keys and
	// no collapsing to the scalar form.
	in := []byte(`{"metadata":{"title":{"fr":"Titre","en":"Title","de":"Titel"}}}`)
	feed, err := ParseFeed(in)
	require.NoError(t, err)
	require.True(t, feed.Metadata.Title.IsLocalized())

	out := string(EncodeFeed(feed))
	assert.Equal(t, `{"metadata":{"title":{"de":"Titel","en":"Title","fr":"Titre"}}}`, out)
}

func TestMultiString_InvalidTagRejected(t *testing.T) {
	in := []byte(`{"metadata":{"title":{"not a tag":"x"}}}`)
	_, err := ParseFeed(in)
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeInvalidLangTag, derr.Code)
	assert.Equal(t, "metadata.title", derr.Path)
}
