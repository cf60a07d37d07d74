// Package opds implements the OPDS 2.0 catalog feed format.
//
// OPDS 2.0 is a JSON-based syndication format for digital-publication
// catalogs. A [Feed] is made of several core concepts:
//
//   - Navigation: a collection of [Link] objects shown to the user to help
//     browse the catalog, accessed via [Feed.Navigation].
//   - Publications: the publications available from the feed, represented by
//     [Publication] and stored in [Feed.Publications] and
//     [FeedGroup.Publications].
//   - Images: [Link] objects for publication preview images, stored in
//     [Publication.Images].
//   - Facets: views of a subset of available publications, represented by
//     [Facet] and stored in [Feed.Facets].
//   - Groups: curated bundles of related navigation links and publications,
//     represented by [FeedGroup] and stored in [Feed.Groups].
//
// # Parsing and encoding
//
// [ParseFeed] and [ParsePublication] turn a JSON document into a typed tree,
// normalizing the shorthand encodings the format permits:
//
//   - A field declared as a list accepts either a sequence or a bare element.
//   - Several bibliographic entities (Season, Volume, Issue, Chapter,
//     Episode, StoryArc) accept a bare number in place of an object; the
//     number becomes the entity's position.
//   - Several others (Collection, Periodical, Series, contributors, alternate
//     identifiers) accept a bare string; the string becomes the entity's name
//     or value.
//
// [EncodeFeed] and [EncodePublication] produce canonical output: empty fields
// are omitted, single-element lists collapse to a bare element, and shorthand
// entities are always expanded to their full object form. Shape is therefore
// not required to round-trip, only values.
//
// Both directions are pure: no I/O, no shared state, safe for concurrent use
// on independent documents.
//
// # Link relations
//
// Link relation strings are resolved into a closed [Relation] set with an
// acquisition sub-set and a custom fallback, so unknown relations survive a
// round trip verbatim while known ones can be matched exhaustively.
package opds
