package opds

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
  "metadata": {
    "title": "Example Catalog",
    "identifier": "https://example.org/opds",
    "modified": "2024-03-01T12:00:00Z",
    "itemsPerPage": 50,
    "numberOfItems": 2
  },
  "links": [
    {"rel": "self", "href": "https://example.org/opds", "type": "application/opds+json"},
    {"rel": ["next", "http://opds-spec.org/sort/new"], "href": "https://example.org/opds?page=2", "type": "application/opds+json"}
  ],
  "navigation": [
    {"title": "Popular", "href": "https://example.org/popular", "type": "application/opds+json"}
  ],
  "facets": [
    {
      "metadata": {"title": "Language"},
      "links": [
        {"title": "English", "href": "https://example.org/en", "type": "application/opds+json", "properties": {"numberOfItems": 128}}
      ]
    }
  ],
  "publications": [
    {
      "metadata": {
        "@type": "http://schema.org/Book",
        "title": "Moby-Dick",
        "author": "Herman Melville",
        "identifier": "urn:isbn:9780316509848",
        "language": "en",
        "modified": "2015-09-29T17:00:00Z"
      },
      "links": [
        {"rel": "http://opds-spec.org/acquisition/open-access", "href": "https://example.org/moby.epub", "type": "application/epub+zip"}
      ],
      "images": [
        {"href": "https://example.org/moby.jpg", "type": "image/jpeg", "height": 1400, "width": 800}
      ]
    },
    {
      "metadata": {
        "title": {"en": "The Stranger", "fr": "L'Étranger"},
        "author": {"name": "Albert Camus", "sortAs": "Camus, Albert"},
        "language": ["fr", "en"]
      },
      "links": [
        {
          "rel": "http://opds-spec.org/acquisition/buy",
          "href": "https://example.org/stranger/buy",
          "type": "text/html",
          "properties": {
            "price": {"value": 7.99, "currency": "EUR"},
            "indirectAcquisition": [
              {"type": "application/vnd.adobe.adept+xml", "child": [{"type": "application/epub+zip"}]}
            ]
          }
        }
      ]
    }
  ],
  "groups": [
    {
      "metadata": {"title": "Featured", "numberOfItems": 1},
      "links": [{"rel": "self", "href": "https://example.org/featured", "type": "application/opds+json"}]
    }
  ]
}`

func TestParseFeed_Complete(t *testing.T) {
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, "Example Catalog", feed.Metadata.Title.String())
	assert.Equal(t, "https://example.org/opds", feed.Metadata.Identifier)
	require.NotNil(t, feed.Metadata.ItemsPerPage)
	assert.Equal(t, 50, *feed.Metadata.ItemsPerPage)

	require.Len(t, feed.Links, 2)
	require.Len(t, feed.Links[0].Rel, 1)
	assert.Equal(t, RelSelf, feed.Links[0].Rel[0].Kind)
	require.Len(t, feed.Links[1].Rel, 2)
	assert.Equal(t, RelNext, feed.Links[1].Rel[0].Kind)
	assert.Equal(t, RelSortNew, feed.Links[1].Rel[1].Kind)

	require.Len(t, feed.Navigation, 1)
	assert.Equal(t, "Popular", feed.Navigation[0].Title)

	require.Len(t, feed.Facets, 1)
	assert.Equal(t, "Language", feed.Facets[0].Metadata.Title.String())
	require.NotNil(t, feed.Facets[0].Links[0].Properties.NumberOfItems)
	assert.Equal(t, 128, *feed.Facets[0].Links[0].Properties.NumberOfItems)

	require.Len(t, feed.Publications, 2)

	moby := feed.Publications[0]
	assert.Equal(t, SchemaOrgBook, moby.Metadata.Schema)
	assert.Equal(t, "Moby-Dick", moby.Metadata.Title.String())
	require.Len(t, moby.Metadata.Author, 1)
	assert.Equal(t, "Herman Melville", moby.Metadata.Author[0].Name.String())
	assert.Equal(t, []LangTag{"en"}, moby.Metadata.Language)
	acq, ok := moby.Links[0].Acquisition()
	require.True(t, ok)
	assert.Equal(t, AcqOpenAccess, acq)
	assert.True(t, moby.HasRecommendedImage())

	stranger := feed.Publications[1]
	assert.True(t, stranger.Metadata.Title.IsLocalized())
	fr, ok := stranger.Metadata.Title.Get("fr")
	require.True(t, ok)
	assert.Equal(t, "L'Étranger", fr)
	assert.Equal(t, []LangTag{"fr", "en"}, stranger.Metadata.Language)
	props := stranger.Links[0].Properties
	require.NotNil(t, props.Price)
	assert.Equal(t, 7.99, props.Price.Value)
	assert.Equal(t, "EUR", props.Price.Currency)
	require.Len(t, props.IndirectAcquisition, 1)
	require.Len(t, props.IndirectAcquisition[0].Child, 1)
	assert.Equal(t, "application/epub+zip", props.IndirectAcquisition[0].Child[0].Type)

	require.Len(t, feed.Groups, 1)
	assert.Equal(t, "Featured", feed.Groups[0].Metadata.Title.String())
}

func TestParseFeed_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
	}{
		{"no metadata", `{}`, "metadata"},
		{"no title", `{"metadata":{}}`, "metadata.title"},
		{"facet without links", `{"metadata":{"title":"t"},"facets":[{"metadata":{"title":"f"}}]}`, "facets[0].links"},
		{"publication without links", `{"metadata":{"title":"t"},"publications":[{"metadata":{"title":"p"}}]}`, "publications[0].links"},
		{"publication without title", `{"metadata":{"title":"t"},"publications":[{"metadata":{},"links":[]}]}`, "publications[0].metadata.title"},
		{"availability without state", `{"metadata":{"title":"t"},"links":[{"href":"https://x.org/","properties":{"availability":{}}}]}`, "links[0].properties.availability.state"},
		{"price without currency", `{"metadata":{"title":"t"},"links":[{"href":"https://x.org/","properties":{"price":{"value":1}}}]}`, "links[0].properties.price.currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeed([]byte(tt.input))
			require.Error(t, err)

			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, CodeMissingField, derr.Code)
			assert.Equal(t, tt.path, derr.Path)
		})
	}
}

func TestParsePublication_RequiredPosition(t *testing.T) {
	// Position-keyed kinds require a position in object form.
	_, err := ParsePublication(pubDoc(`{"title":"t","belongsTo":{"season":{"name":"S"}}}`))
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeMissingField, derr.Code)
	assert.Equal(t, "metadata.belongsTo.season.position", derr.Path)
}

func TestParsePublication_InvalidEnum(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
		path     string
	}{
		{"layout", `{"title":"t","layout":"diagonal"}`, "metadata.layout"},
		{"readingProgression", `{"title":"t","readingProgression":"up"}`, "metadata.readingProgression"},
		{"accessMode", `{"title":"t","accessibility":{"accessMode":["psychic"]}}`, "metadata.accessibility.accessMode[0]"},
		{"tdm reservation", `{"title":"t","tdm":{"reservation":"some"}}`, "metadata.tdm.reservation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePublication(pubDoc(tt.metadata))
			require.Error(t, err)

			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, CodeInvalidEnum, derr.Code)
			assert.Equal(t, tt.path, derr.Path)
		})
	}
}

func TestParseFeed_MalformedJSON(t *testing.T) {
	for _, input := range []string{"", "{", "not json", `{"metadata": }`} {
		_, err := ParseFeed([]byte(input))
		require.Error(t, err)

		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, CodeMalformedInput, derr.Code)
	}
}

func TestParseFeed_RecursionLimit(t *testing.T) {
	// Build a publication whose belongsTo chain nests series inside
	// chapters inside series, far beyond the depth ceiling.
	depth := 300
	var sb strings.Builder
	sb.WriteString(`{"metadata":{"title":"t","belongsTo":{"series":`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`{"name":"s","chapter":{"position":1,"series":`)
	}
	sb.WriteString(`"end"`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`}}`)
	}
	sb.WriteString(`}},"links":[]}`)

	_, err := ParsePublication([]byte(sb.String()))
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, CodeRecursionLimit, derr.Code)

	// A generous ceiling lets the same document through.
	_, err = ParsePublicationWithOptions([]byte(sb.String()), ParseOptions{MaxDepth: 2000})
	require.NoError(t, err)
}

func TestParseFeed_LinkWithoutHref(t *testing.T) {
	// Catalogs in the wild omit href for unavailable content.
	feed, err := ParseFeed([]byte(`{"metadata":{"title":"t"},"links":[{"title":"gone","type":"text/html"}]}`))
	require.NoError(t, err)
	require.Len(t, feed.Links, 1)
	assert.Equal(t, "", feed.Links[0].Href)
}

func TestParseFeed_LibraryFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/library.json")
	require.NoError(t, err)

	feed, err := ParseFeed(data)
	require.NoError(t, err)

	assert.Equal(t, "Open Shelf Public Library", feed.Metadata.Title.String())
	assert.Equal(t, SchemaOrgDataFeed, feed.Metadata.Schema)
	require.Len(t, feed.Publications, 3)

	monte := feed.Publications[0]
	require.True(t, monte.Metadata.Title.IsLocalized())
	require.Len(t, monte.Metadata.Translator, 1)
	assert.Equal(t, "Robin Buss", monte.Metadata.Translator[0].Name.String())
	require.Len(t, monte.Metadata.AltIdentifier, 2)
	assert.Equal(t, "OCLC:49531704", monte.Metadata.AltIdentifier[1].Value)
	require.NotNil(t, monte.Metadata.BelongsTo)
	require.Len(t, monte.Metadata.BelongsTo.Series, 1)
	require.NotNil(t, monte.Metadata.BelongsTo.Series[0].Position)
	assert.Equal(t, 42, *monte.Metadata.BelongsTo.Series[0].Position)
	require.NotNil(t, monte.Metadata.Accessibility)
	assert.Equal(t, []AccessMode{AccessTextual, AccessVisual}, monte.Metadata.Accessibility.AccessMode)

	// "borrow" is not a known relation and survives verbatim.
	require.Len(t, monte.Links[0].Rel, 1)
	assert.Equal(t, RelCustom, monte.Links[0].Rel[0].Kind)
	assert.Equal(t, "http://opds-spec.org/acquisition/borrow", monte.Links[0].Rel[0].Custom)
	require.NotNil(t, monte.Links[0].Properties.Availability)
	assert.Equal(t, Unavailable, monte.Links[0].Properties.Availability.State)
	require.NotNil(t, monte.Links[0].Properties.Holds)
	assert.Equal(t, 4, *monte.Links[0].Properties.Holds.Position)
	assert.True(t, monte.HasRecommendedImage())

	swamp := feed.Publications[1]
	require.Len(t, swamp.Metadata.Artist, 2)
	require.Len(t, swamp.Metadata.BelongsTo.StoryArc, 1)
	assert.Equal(t, "The Anatomy Lesson", swamp.Metadata.BelongsTo.StoryArc[0].Name.String())
	acq, ok := swamp.Links[0].Acquisition()
	require.True(t, ok)
	assert.Equal(t, AcqBuy, acq)

	gazette := feed.Publications[2]
	require.NotNil(t, gazette.Metadata.Contains)
	require.Len(t, gazette.Metadata.Contains.Article, 2)
	assert.Equal(t, "Morning Briefing", gazette.Metadata.Contains.Article[0].Name.String())
	require.NotNil(t, gazette.Metadata.Contains.Article[1].NumberOfPages)

	// The fixture round-trips through the canonical form.
	reparsed, err := ParseFeed(EncodeFeed(feed))
	require.NoError(t, err)
	assert.Equal(t, feed, reparsed)
}

func TestParseFeed_UnknownFieldsIgnored(t *testing.T) {
	feed, err := ParseFeed([]byte(`{"metadata":{"title":"t","futureField":[1,2,3]},"vendorExtension":{"a":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "t", feed.Metadata.Title.String())
}
