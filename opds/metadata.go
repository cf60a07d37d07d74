package opds

// Layout is the rendering category of a publication.
type Layout string

const (
	LayoutFixed      Layout = "fixed"
	LayoutReflowable Layout = "reflowable"
	LayoutScrolled   Layout = "scrolled"
)

var layouts = map[Layout]bool{
	LayoutFixed: true, LayoutReflowable: true, LayoutScrolled: true,
}

// ReadingProgression is the reading direction for reflowable or fixed layout
// publications.
type ReadingProgression string

const (
	RightToLeft ReadingProgression = "rtl"
	LeftToRight ReadingProgression = "ltr"
)

var readingProgressions = map[ReadingProgression]bool{
	RightToLeft: true, LeftToRight: true,
}

// Reservation states whether text and data mining rights are reserved.
type Reservation string

const (
	ReservationAll  Reservation = "all"
	ReservationNone Reservation = "none"
)

var reservations = map[Reservation]bool{
	ReservationAll: true, ReservationNone: true,
}

// DataMining states whether third parties may use a publication's content
// for text and data mining.
type DataMining struct {
	Reservation Reservation
	Policy      string // URL of the mining policy
}

// Contributor is a person or organization that contributed to a publication.
type Contributor struct {
	Name          MultiString
	SortAs        MultiString
	Identifier    Identifier
	AltIdentifier []AltIdentifier
	Role          []string
	Links         []Link
}

// NewContributor builds a contributor with the given name.
func NewContributor(name MultiString) Contributor {
	return Contributor{Name: name}
}

func contributorOf(name string) Contributor {
	return Contributor{Name: Text(name)}
}

// Subject is the subject matter of a publication.
type Subject struct {
	Name   MultiString
	SortAs MultiString
	Code   string
	Scheme string // URL of the subject scheme
	Links  []Link
}

// NewSubject builds a subject with the given name.
func NewSubject(name MultiString) Subject {
	return Subject{Name: name}
}

// FeedMetadata is the metadata of a feed, group, or facet.
type FeedMetadata struct {
	// Title of the feed. Required.
	Title MultiString

	Subtitle []MultiString

	// Identifier is a URL identifying the feed.
	Identifier string

	// Schema identifies the schema this metadata adheres to, carried in the
	// "@type" key. See the SchemaOrg constants for common values.
	Schema string

	// Modified is the timestamp of the last feed change.
	Modified string

	Description string

	ItemsPerPage  *int
	CurrentPage   *int
	NumberOfItems *int
}

// NewFeedMetadata builds feed metadata with the given title.
func NewFeedMetadata(title MultiString) FeedMetadata {
	return FeedMetadata{Title: title}
}

// PublicationMetadata is the bibliographic metadata of a publication.
type PublicationMetadata struct {
	// Schema identifies the schema this metadata adheres to, carried in the
	// "@type" key. See the SchemaOrg constants for common values.
	Schema string

	// ConformsTo lists profiles the publication conforms to.
	ConformsTo []string

	// Title of the publication. Required.
	Title MultiString

	SortAs   MultiString
	Subtitle MultiString

	Author []Contributor

	Description string

	// Identifier is a URL identifying the publication.
	Identifier string

	// AltIdentifier lists alternates to the primary identifier.
	AltIdentifier []AltIdentifier

	Accessibility *AccessibilityMeta

	// Modified is when the publication was last changed; Published is when
	// it was published.
	Modified  string
	Published string

	// Language lists the publication's languages in BCP 47 syntax.
	Language []LangTag

	Subject []Subject

	Layout             Layout
	ReadingProgression ReadingProgression

	// Duration of the publication in seconds.
	Duration *int

	// Abridged reports whether this is an abridged edition.
	Abridged *bool

	NumberOfPages *int

	// BelongsTo records containers this publication belongs to; Contains
	// records entities it contains.
	BelongsTo *BelongsTo
	Contains  *Contains

	// TDM states text and data mining permissions.
	TDM *DataMining

	Translator  []Contributor
	Editor      []Contributor
	Artist      []Contributor
	Illustrator []Contributor
	Letterer    []Contributor
	Penciler    []Contributor
	Colorist    []Contributor
	Inker       []Contributor
	Narrator    []Contributor
	Contributor []Contributor
	Publisher   []Contributor
	Imprint     []Contributor
}

// NewPublicationMetadata builds publication metadata with the given title.
func NewPublicationMetadata(title MultiString) PublicationMetadata {
	return PublicationMetadata{Title: title}
}
