package opds

// Link is an OPDS link object: a reference to a resource together with its
// role, media type, and acquisition properties.
type Link struct {
	// Title of the linked resource.
	Title string

	// Href is the URI or URI template of the linked resource. Some catalogs
	// legitimately omit it for unavailable content, so it may be empty.
	Href string

	// Templated indicates that Href is a URI template.
	Templated bool

	// Type is the MIME type of the linked resource.
	Type string

	// Rel holds the resolved relations between the linked resource and its
	// containing collection. Entries are only ever produced by
	// ResolveRelation; raw strings never reach the tree.
	Rel []Relation

	// Properties associated with the linked resource.
	Properties LinkProperties

	// Height and Width of the linked resource in pixels.
	Height *int
	Width  *int

	// Size of the resource in bytes, prior to compression or encryption.
	Size *int

	// Bitrate of the linked resource in kbps.
	Bitrate *float64

	// Duration of the linked resource in seconds.
	Duration *float64

	// Language holds the expected languages of the linked resource.
	Language []LangTag

	// Alternate resources for the linked resource.
	Alternate []Link

	// Children of the linked resource, in the context of a given collection
	// role.
	Children []Link
}

// NewLink builds a link to a resource.
func NewLink(href, mime string) Link {
	return Link{Href: href, Type: mime}
}

// NewTemplateLink builds a link whose href is a URI template.
func NewTemplateLink(href, mime string) Link {
	return Link{Href: href, Type: mime, Templated: true}
}

// Acquisition returns the first acquisition relation on the link, letting
// callers test "is this an acquisition link" without re-resolving strings.
func (l *Link) Acquisition() (AcquisitionKind, bool) {
	for _, r := range l.Rel {
		if kind, ok := r.AsAcquisition(); ok {
			return kind, true
		}
	}
	return 0, false
}

// PageDisplay indicates how a resource should be displayed in a reading
// environment with synthetic spreads.
type PageDisplay string

const (
	PageLeft   PageDisplay = "left"
	PageRight  PageDisplay = "right"
	PageCenter PageDisplay = "center"
)

var pageDisplays = map[PageDisplay]bool{
	PageLeft: true, PageRight: true, PageCenter: true,
}

// AvailabilityState is a resource's current availability.
type AvailabilityState string

const (
	Available   AvailabilityState = "available"
	Unavailable AvailabilityState = "unavailable"
	Reserved    AvailabilityState = "reserved"
	Ready       AvailabilityState = "ready"
)

var availabilityStates = map[AvailabilityState]bool{
	Available: true, Unavailable: true, Reserved: true, Ready: true,
}

// Availability describes a resource's availability.
type Availability struct {
	// State is the current state of the resource.
	State AvailabilityState

	// Since is the timestamp of the last state change.
	Since string

	// Until is the timestamp of the next state change.
	Until string
}

// Price is the cost of acquiring a publication through an acquisition link.
type Price struct {
	Value    float64
	Currency string
}

// Acquisition is an indirect acquisition hint: the media type that will be
// acquired after additional steps, with further layers of indirection in
// Child.
type Acquisition struct {
	Type  string
	Child []Acquisition
}

// Holds is a library's hold information for an unavailable publication.
type Holds struct {
	Total    *int
	Position *int
}

// Copies is a library's copy information for a publication.
type Copies struct {
	Total     *int
	Available *int
}

// LinkProperties is the properties bag of a link object.
type LinkProperties struct {
	// NumberOfItems hints at the number of items returned by the link.
	NumberOfItems *int

	// Page indicates placement within synthetic spreads.
	Page PageDisplay

	// Availability of the linked resource.
	Availability *Availability

	// Price of the publication, tied to its acquisition link.
	Price *Price

	// IndirectAcquisition hints at media types acquired after extra steps.
	IndirectAcquisition []Acquisition

	// Holds carries hold-list information for library catalogs.
	Holds *Holds

	// Copies carries acquired-copy information for library catalogs.
	Copies *Copies
}

// IsZero reports whether no property is set.
func (p *LinkProperties) IsZero() bool {
	return p.NumberOfItems == nil &&
		p.Page == "" &&
		p.Availability == nil &&
		p.Price == nil &&
		len(p.IndirectAcquisition) == 0 &&
		p.Holds == nil &&
		p.Copies == nil
}
