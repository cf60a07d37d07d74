package opds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelation_WellKnown(t *testing.T) {
	tests := []struct {
		input string
		kind  RelationKind
	}{
		{"self", RelSelf},
		{"alternate", RelAlternate},
		{"contents", RelContents},
		{"cover", RelCover},
		{"manifest", RelManifest},
		{"profile", RelProfile},
		{"first", RelFirst},
		{"previous", RelPrevious},
		{"next", RelNext},
		{"last", RelLast},
		{"current", RelCurrent},
		{"search", RelSearch},
		{"subsection", RelSubsection},
		{"http://opds-spec.org/sort/new", RelSortNew},
		{"http://opds-spec.org/sort/popular", RelSortPopular},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := ResolveRelation(tt.input)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.input, r.String())
		})
	}
}

func TestResolveRelation_Acquisition(t *testing.T) {
	tests := []struct {
		input string
		acq   AcquisitionKind
	}{
		{"http://opds-spec.org/acquisition", AcqFallback},
		{"http://opds-spec.org/acquisition/open-access", AcqOpenAccess},
		{"http://opds-spec.org/acquisition/buy", AcqBuy},
		{"http://opds-spec.org/acquisition/sample", AcqSample},
		{"http://opds-spec.org/acquisition/subscribe", AcqSubscribe},
		{"preview", AcqPreview},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := ResolveRelation(tt.input)
			require.Equal(t, RelAcquisition, r.Kind)
			acq, ok := r.AsAcquisition()
			require.True(t, ok)
			assert.Equal(t, tt.acq, acq)
			assert.Equal(t, tt.input, r.String())
		})
	}
}

func TestResolveRelation_Custom(t *testing.T) {
	// Unknown strings never fail; they are carried verbatim.
	for _, s := range []string{
		"related",
		"http://example.org/custom-rel",
		"",
		"Self", // case sensitive
	} {
		r := ResolveRelation(s)
		assert.Equal(t, RelCustom, r.Kind, s)
		assert.Equal(t, s, r.Custom)
		assert.Equal(t, s, r.String())

		_, ok := r.AsAcquisition()
		assert.False(t, ok)
	}
}

func TestLink_Acquisition(t *testing.T) {
	link := NewLink("http://example.org/book.epub", "application/epub+zip")
	link.Rel = []Relation{Rel(RelSelf), RelOf(AcqBuy)}

	acq, ok := link.Acquisition()
	require.True(t, ok)
	assert.Equal(t, AcqBuy, acq)

	plain := NewLink("http://example.org/", MimeOPDSFeed)
	plain.Rel = []Relation{Rel(RelSelf)}
	_, ok = plain.Acquisition()
	assert.False(t, ok)
}
