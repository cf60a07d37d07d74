package opds

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shorthand reducers are easiest to exercise through publication
// metadata, where all three appear.

func pubDoc(metadata string) []byte {
	return []byte(fmt.Sprintf(`{"metadata":%s,"links":[]}`, metadata))
}

func TestParse_SingletonOrSequence(t *testing.T) {
	// A bare element and a one-element sequence parse identically.
	bare, err := ParsePublication(pubDoc(`{"title":"t","author":"Melville"}`))
	require.NoError(t, err)
	wrapped, err := ParsePublication(pubDoc(`{"title":"t","author":["Melville"]}`))
	require.NoError(t, err)
	assert.Equal(t, bare.Metadata.Author, wrapped.Metadata.Author)
	require.Len(t, bare.Metadata.Author, 1)
	assert.Equal(t, "Melville", bare.Metadata.Author[0].Name.String())
}

func TestParse_StringOrObject(t *testing.T) {
	pub, err := ParsePublication(pubDoc(
		`{"title":"t","author":["Melville",{"name":"Hawthorne","role":"editor"}]}`))
	require.NoError(t, err)

	authors := pub.Metadata.Author
	require.Len(t, authors, 2)
	assert.Equal(t, "Melville", authors[0].Name.String())
	assert.Equal(t, "Hawthorne", authors[1].Name.String())
	assert.Equal(t, []string{"editor"}, authors[1].Role)
}

func TestParse_NumberOrObject(t *testing.T) {
	pub, err := ParsePublication(pubDoc(
		`{"title":"t","belongsTo":{"season":3}}`))
	require.NoError(t, err)

	require.NotNil(t, pub.Metadata.BelongsTo)
	seasons := pub.Metadata.BelongsTo.Season
	require.Len(t, seasons, 1)
	assert.Equal(t, 3, seasons[0].Position)
	assert.True(t, seasons[0].Name.IsZero())
}

func TestParse_MixedCollectionList(t *testing.T) {
	pub, err := ParsePublication(pubDoc(
		`{"title":"t","belongsTo":{"collection":["Fiction",{"name":"Drama","position":2}]}}`))
	require.NoError(t, err)

	colls := pub.Metadata.BelongsTo.Collection
	require.Len(t, colls, 2)
	assert.Equal(t, "Fiction", colls[0].Name.String())
	assert.Nil(t, colls[0].Position)
	assert.Equal(t, "Drama", colls[1].Name.String())
	require.NotNil(t, colls[1].Position)
	assert.Equal(t, 2, *colls[1].Position)

	// Two elements re-emit as an array of full objects.
	out := string(EncodePublication(pub))
	assert.Contains(t, out, `"collection":[{"name":"Fiction"},{"name":"Drama","position":2}]`)
}

func TestParse_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
		path     string
	}{
		{"number for string-or-object", `{"title":"t","author":7}`, "metadata.author"},
		{"string for number-or-object", `{"title":"t","belongsTo":{"season":"three"}}`, "metadata.belongsTo.season"},
		{"bool for title", `{"title":true}`, "metadata.title"},
		{"negative position", `{"title":"t","belongsTo":{"season":-1}}`, "metadata.belongsTo.season"},
		{"element inside sequence", `{"title":"t","author":["ok",7]}`, "metadata.author[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePublication(pubDoc(tt.metadata))
			require.Error(t, err)

			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, CodeShapeMismatch, derr.Code)
			assert.Equal(t, tt.path, derr.Path)
		})
	}
}

func TestEncode_SingletonCollapse(t *testing.T) {
	// One element collapses to a bare element; two stay a sequence.
	one, err := ParsePublication(pubDoc(`{"title":"t","author":["Melville"]}`))
	require.NoError(t, err)
	out := string(EncodePublication(one))
	assert.Contains(t, out, `"author":{"name":"Melville"}`)

	two, err := ParsePublication(pubDoc(`{"title":"t","author":["a","b"]}`))
	require.NoError(t, err)
	out = string(EncodePublication(two))
	assert.Contains(t, out, `"author":[{"name":"a"},{"name":"b"}]`)
}

func TestEncode_ShorthandExpandsToObject(t *testing.T) {
	// Shorthand entities are re-emitted in full object form, never as bare
	// numbers or strings.
	pub, err := ParsePublication(pubDoc(`{"title":"t","belongsTo":{"season":3,"collection":"Fiction"}}`))
	require.NoError(t, err)
	out := string(EncodePublication(pub))
	assert.Contains(t, out, `"collection":{"name":"Fiction"}`)
	assert.Contains(t, out, `"season":{"position":3}`)
}
