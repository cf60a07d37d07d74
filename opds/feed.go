package opds

// Feed is the top-level OPDS document.
type Feed struct {
	Metadata FeedMetadata

	Links []Link

	// Navigation links help the user browse the catalog.
	Navigation []Link

	// Facets are views over a subset of the catalog's publications.
	Facets []Facet

	// Publications the user can acquire.
	Publications []Publication

	// Groups bundle related navigation links and publications.
	Groups []FeedGroup
}

// NewFeed builds a feed with the given title.
func NewFeed(title MultiString) *Feed {
	return &Feed{Metadata: NewFeedMetadata(title)}
}

// WithLink appends a link and returns the feed.
func (f *Feed) WithLink(link Link) *Feed {
	f.Links = append(f.Links, link)
	return f
}

// WithNavigation appends a navigation link and returns the feed.
func (f *Feed) WithNavigation(link Link) *Feed {
	f.Navigation = append(f.Navigation, link)
	return f
}

// WithFacet appends a facet and returns the feed.
func (f *Feed) WithFacet(facet Facet) *Feed {
	f.Facets = append(f.Facets, facet)
	return f
}

// WithPublication appends a publication and returns the feed.
func (f *Feed) WithPublication(pub Publication) *Feed {
	f.Publications = append(f.Publications, pub)
	return f
}

// WithGroup appends a group and returns the feed.
func (f *Feed) WithGroup(group FeedGroup) *Feed {
	f.Groups = append(f.Groups, group)
	return f
}

// Facet is a named view over a subset of publications within a feed,
// providing a filter or a specific sort.
type Facet struct {
	Metadata FeedMetadata
	Links    []Link
}

// NewFacet builds a facet with the given title.
func NewFacet(title MultiString) Facet {
	return Facet{Metadata: NewFeedMetadata(title)}
}

// FeedGroup is a curated bundle of navigation links and publications within
// a feed.
type FeedGroup struct {
	Metadata     FeedMetadata
	Links        []Link
	Navigation   []Link
	Publications []Publication
}

// NewFeedGroup builds a group with the given title.
func NewFeedGroup(title MultiString) FeedGroup {
	return FeedGroup{Metadata: NewFeedMetadata(title)}
}

// Publication is a publication available from the feed.
type Publication struct {
	Metadata PublicationMetadata

	Links []Link

	// Images are preview images for a client to display when listing the
	// publication. At least one image should use one of the
	// RecommendedImageTypes; this is advisory, not enforced.
	Images []Link
}

// NewPublication builds a publication with the given title.
func NewPublication(title MultiString) Publication {
	return Publication{Metadata: NewPublicationMetadata(title)}
}

// HasRecommendedImage reports whether at least one preview image uses a MIME
// type from RecommendedImageTypes. Purely advisory.
func (p *Publication) HasRecommendedImage() bool {
	for _, img := range p.Images {
		for _, mime := range RecommendedImageTypes {
			if img.Type == mime {
				return true
			}
		}
	}
	return false
}
