package opds

// Common values for the "@type" schema-identifier key. Metadata will
// typically use SchemaOrgBook, but any schema may appear.
const (
	// SchemaOrgArticle is an article within a newspaper, magazine, or other
	// publication.
	SchemaOrgArticle = "http://schema.org/Article"

	// SchemaOrgBook is a book.
	SchemaOrgBook = "http://schema.org/Book"

	// SchemaOrgComicStory is a comic book.
	SchemaOrgComicStory = "http://schema.org/ComicStory"

	// SchemaOrgDataFeed is a single feed providing structured information.
	SchemaOrgDataFeed = "http://schema.org/DataFeed"

	// SchemaOrgThing is the most generic type of item.
	SchemaOrgThing = "http://schema.org/Thing"
)
