package opds

// The bibliographic containment hierarchy: a fixed family of entity kinds,
// each declaring its own allowed child kinds. The type graph is acyclic by
// construction, but instances may legitimately repeat the same entity across
// containers; no deduplication is performed.
//
// Kinds whose natural key is a name (Collection, Periodical, Article,
// Series) accept the string shorthand; kinds whose natural key is a position
// (Episode, Season, StoryArc, Issue, Chapter, Volume) accept the number
// shorthand and require a position in object form.

// Collection is a collection of related publications.
type Collection struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      *int
	Links         []Link
}

// NewCollection builds a collection with the given name.
func NewCollection(name MultiString) Collection {
	return Collection{Name: name}
}

func collectionOf(name string) Collection {
	return Collection{Name: Text(name)}
}

// Periodical is a periodical that may contain multiple publications.
type Periodical struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      *int
	Links         []Link
	Issue         []Issue
	Volume        []Volume
}

// NewPeriodical builds a periodical with the given name.
func NewPeriodical(name MultiString) Periodical {
	return Periodical{Name: name}
}

func periodicalOf(name string) Periodical {
	return Periodical{Name: Text(name)}
}

// Episode is an episode of a show, podcast, or other episodic content.
type Episode struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
}

// NewEpisode builds an episode at the given position.
func NewEpisode(position int) Episode {
	return Episode{Position: position}
}

// Season is a season of a show.
type Season struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
	Article       []Article
	Chapter       []Chapter
}

// NewSeason builds a season at the given position.
func NewSeason(position int) Season {
	return Season{Position: position}
}

// StoryArc is a story arc spanning chapters, issues, or episodes.
type StoryArc struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
	Chapter       []Chapter
	Issue         []Issue
	Episode       []Episode
}

// NewStoryArc builds a story arc at the given position.
func NewStoryArc(position int) StoryArc {
	return StoryArc{Position: position}
}

// Issue is an issue of a magazine or other periodical.
type Issue struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
	Article       []Article
	Chapter       []Chapter
}

// NewIssue builds an issue at the given position.
func NewIssue(position int) Issue {
	return Issue{Position: position}
}

// Chapter is a chapter within a publication.
type Chapter struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
	Series        []Series
}

// NewChapter builds a chapter at the given position.
func NewChapter(position int) Chapter {
	return Chapter{Position: position}
}

// Article is an article within a periodical or other publication.
type Article struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Author        []Contributor
	Translator    []Contributor
	Editor        []Contributor
	Artist        []Contributor
	Illustrator   []Contributor
	Contributor   []Contributor
	Description   string
	NumberOfPages *int
	Position      *int
	Links         []Link
}

// NewArticle builds an article with the given name.
func NewArticle(name MultiString) Article {
	return Article{Name: name}
}

func articleOf(name string) Article {
	return Article{Name: Text(name)}
}

// Series is a series of publications.
type Series struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      *int
	Links         []Link
	Chapter       []Chapter
	Episode       []Episode
	Issue         []Issue
	Season        []Season
	StoryArc      []StoryArc
	Volume        []Volume
}

// NewSeries builds a series with the given name.
func NewSeries(name MultiString) Series {
	return Series{Name: name}
}

func seriesOf(name string) Series {
	return Series{Name: Text(name)}
}

// Volume is a volume of a publication.
type Volume struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Position      int
	Links         []Link
	Chapter       []Chapter
	Issue         []Issue
	StoryArc      []StoryArc
}

// NewVolume builds a volume at the given position.
func NewVolume(position int) Volume {
	return Volume{Position: position}
}

// BelongsTo records the containers a publication belongs to.
type BelongsTo struct {
	Collection []Collection
	Journal    []Periodical
	Magazine   []Periodical
	Newspaper  []Periodical
	Periodical []Periodical
	Season     []Season
	Series     []Series
	StoryArc   []StoryArc
	Volume     []Volume
}

// IsZero reports whether no containment is recorded.
func (b *BelongsTo) IsZero() bool {
	return len(b.Collection) == 0 && len(b.Journal) == 0 &&
		len(b.Magazine) == 0 && len(b.Newspaper) == 0 &&
		len(b.Periodical) == 0 && len(b.Season) == 0 &&
		len(b.Series) == 0 && len(b.StoryArc) == 0 && len(b.Volume) == 0
}

// Contains records the entities a publication contains.
type Contains struct {
	Article  []Article
	Chapter  []Chapter
	Episode  []Episode
	Issue    []Issue
	Season   []Season
	Series   []Series
	StoryArc []StoryArc
	Volume   []Volume
}

// IsZero reports whether no containment is recorded.
func (c *Contains) IsZero() bool {
	return len(c.Article) == 0 && len(c.Chapter) == 0 &&
		len(c.Episode) == 0 && len(c.Issue) == 0 && len(c.Season) == 0 &&
		len(c.Series) == 0 && len(c.StoryArc) == 0 && len(c.Volume) == 0
}
