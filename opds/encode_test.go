package opds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFeed_Minimal(t *testing.T) {
	feed := NewFeed(Text("Catalog"))
	assert.Equal(t, `{"metadata":{"title":"Catalog"}}`, string(EncodeFeed(feed)))
}

func TestEncodeFeed_FieldOrderIsStable(t *testing.T) {
	feed := NewFeed(Text("Catalog"))
	feed.Metadata.Identifier = "https://example.org/opds"
	feed.Metadata.Modified = "2024-03-01T12:00:00Z"
	link := NewLink("https://example.org/opds", MimeOPDSFeed)
	link.Rel = []Relation{Rel(RelSelf)}
	feed.WithLink(link)

	want := `{"metadata":{"title":"Catalog","identifier":"https://example.org/opds",` +
		`"modified":"2024-03-01T12:00:00Z"},` +
		`"links":[{"href":"https://example.org/opds","type":"application/opds+json","rel":"self"}]}`
	assert.Equal(t, want, string(EncodeFeed(feed)))
}

func TestEncode_RelCollapse(t *testing.T) {
	link := NewLink("https://example.org/", MimeOPDSFeed)
	link.Rel = []Relation{Rel(RelSelf)}
	feed := NewFeed(Text("t")).WithLink(link)
	out := string(EncodeFeed(feed))
	assert.Contains(t, out, `"rel":"self"`)

	link.Rel = []Relation{Rel(RelSelf), Rel(RelAlternate)}
	feed = NewFeed(Text("t")).WithLink(link)
	out = string(EncodeFeed(feed))
	assert.Contains(t, out, `"rel":["self","alternate"]`)
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	link := NewLink("https://example.org/", MimeOPDSFeed)
	feed := NewFeed(Text("t")).WithLink(link)
	out := string(EncodeFeed(feed))

	// Default-false and empty fields never appear.
	assert.NotContains(t, out, "templated")
	assert.NotContains(t, out, "properties")
	assert.NotContains(t, out, "navigation")
	assert.NotContains(t, out, "title\":\"\"")

	tmpl := NewTemplateLink("https://example.org/search{?query}", MimeOPDSFeed)
	feed = NewFeed(Text("t")).WithLink(tmpl)
	assert.Contains(t, string(EncodeFeed(feed)), `"templated":true`)
}

func TestEncode_PrettyMode(t *testing.T) {
	feed := NewFeed(Text("Catalog")).WithLink(NewLink("https://example.org/", MimeOPDSFeed))
	out := string(EncodeFeedPretty(feed))

	assert.True(t, strings.HasPrefix(out, "{\n  \"metadata\": {\n"))
	assert.True(t, strings.HasSuffix(out, "\n}"))

	// Pretty and compact forms parse back to the same tree.
	fromPretty, err := ParseFeed([]byte(out))
	require.NoError(t, err)
	fromCompact, err := ParseFeed(EncodeFeed(feed))
	require.NoError(t, err)
	assert.Equal(t, fromCompact, fromPretty)
}

func TestEncode_StringEscaping(t *testing.T) {
	feed := NewFeed(Text("line\none\t\"quoted\" \\ \x01"))
	out := string(EncodeFeed(feed))
	assert.Contains(t, out, `"line\none\t\"quoted\" \\ "`)

	reparsed, err := ParseFeed([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, feed.Metadata.Title, reparsed.Metadata.Title)
}

func TestEncode_RoundTrip(t *testing.T) {
	// parse -> encode -> parse is the identity on the typed tree.
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)

	reparsed, err := ParseFeed(EncodeFeed(feed))
	require.NoError(t, err)
	assert.Equal(t, feed, reparsed)

	// And the canonical form is a fixed point.
	first := EncodeFeed(feed)
	second := EncodeFeed(reparsed)
	assert.Equal(t, string(first), string(second))
}

func TestEncodePublication_FullMetadata(t *testing.T) {
	pub := NewPublication(Text("Moby-Dick"))
	pub.Metadata.Schema = SchemaOrgBook
	pub.Metadata.Author = []Contributor{NewContributor(Text("Herman Melville"))}
	pub.Metadata.Language = []LangTag{"en"}
	pub.Metadata.Layout = LayoutReflowable
	pages := 720
	pub.Metadata.NumberOfPages = &pages
	abridged := false
	pub.Metadata.Abridged = &abridged
	pub.Metadata.TDM = &DataMining{Reservation: ReservationAll}
	link := NewLink("https://example.org/moby.epub", "application/epub+zip")
	link.Rel = []Relation{RelOf(AcqOpenAccess)}
	pub.Links = []Link{link}

	out := string(EncodePublication(&pub))
	want := `{"metadata":{"@type":"http://schema.org/Book","title":"Moby-Dick",` +
		`"author":{"name":"Herman Melville"},"language":"en","layout":"reflowable",` +
		`"abridged":false,"numberOfPages":720,"tdm":{"reservation":"all"}},` +
		`"links":[{"href":"https://example.org/moby.epub","type":"application/epub+zip",` +
		`"rel":"http://opds-spec.org/acquisition/open-access"}]}`
	assert.Equal(t, want, out)

	reparsed, err := ParsePublication([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, pub, *reparsed)
}

func TestEncode_LocalizedTitleSortedKeys(t *testing.T) {
	feed := NewFeed(Localized(
		LangString{Tag: "fr", Value: "Catalogue"},
		LangString{Tag: "de", Value: "Katalog"},
		LangString{Tag: "en", Value: "Catalog"},
	))
	out := string(EncodeFeed(feed))
	assert.Equal(t, `{"metadata":{"title":{"de":"Katalog","en":"Catalog","fr":"Catalogue"}}}`, out)
}

func TestEncode_GroupAndFacet(t *testing.T) {
	facet := NewFacet(Text("Language"))
	facet.Links = []Link{NewLink("https://example.org/en", MimeOPDSFeed)}

	group := NewFeedGroup(LabelBooksRecentlyAdded)
	group.Publications = []Publication{minimalPublication()}

	feed := NewFeed(Text("t")).WithFacet(facet).WithGroup(group)
	out := EncodeFeed(feed)

	reparsed, err := ParseFeed(out)
	require.NoError(t, err)
	require.Len(t, reparsed.Facets, 1)
	require.Len(t, reparsed.Groups, 1)

	// Group titles built from the stock labels keep all translations.
	en, ok := reparsed.Groups[0].Metadata.Title.Get("en")
	require.True(t, ok)
	assert.Equal(t, "Books (Recently Added)", en)
}

// minimalPublication builds the smallest well-formed publication.
func minimalPublication() Publication {
	pub := NewPublication(Text("p"))
	pub.Links = []Link{NewLink("https://example.org/p", "text/html")}
	return pub
}
