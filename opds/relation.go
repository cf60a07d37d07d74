package opds

// RelationKind identifies the role a link plays relative to its containing
// object.
type RelationKind uint8

const (
	RelCustom RelationKind = iota
	RelSelf
	RelAlternate
	RelContents
	RelCover
	RelManifest
	RelProfile
	RelFirst
	RelPrevious
	RelNext
	RelLast
	RelCurrent
	RelSearch
	RelSubsection
	RelSortNew
	RelSortPopular
	RelAcquisition
)

// AcquisitionKind describes how a publication may be obtained.
type AcquisitionKind uint8

const (
	// AcqFallback is the generic acquisition relation, used when no other
	// relation fits the nature of the transaction.
	AcqFallback AcquisitionKind = iota
	// AcqOpenAccess indicates a publication freely accessible without any
	// requirement, including authentication.
	AcqOpenAccess
	// AcqBuy indicates a publication that can be purchased for a given price.
	AcqBuy
	// AcqSample indicates a freely accessible subset of the publication.
	AcqSample
	// AcqSubscribe indicates a publication available by subscription.
	AcqSubscribe
	// AcqPreview indicates a freely accessible preview of the publication.
	AcqPreview
)

// Relation is a resolved link relation: one of the well-known relation tags,
// an acquisition relation, or a custom string carried verbatim.
type Relation struct {
	Kind        RelationKind
	Acquisition AcquisitionKind // set when Kind is RelAcquisition
	Custom      string          // set when Kind is RelCustom
}

var fixedRelations = map[string]RelationKind{
	"self":       RelSelf,
	"alternate":  RelAlternate,
	"contents":   RelContents,
	"cover":      RelCover,
	"manifest":   RelManifest,
	"profile":    RelProfile,
	"first":      RelFirst,
	"previous":   RelPrevious,
	"next":       RelNext,
	"last":       RelLast,
	"current":    RelCurrent,
	"search":     RelSearch,
	"subsection": RelSubsection,

	"http://opds-spec.org/sort/new":     RelSortNew,
	"http://opds-spec.org/sort/popular": RelSortPopular,
}

var acquisitionRelations = map[string]AcquisitionKind{
	"http://opds-spec.org/acquisition":             AcqFallback,
	"http://opds-spec.org/acquisition/open-access": AcqOpenAccess,
	"http://opds-spec.org/acquisition/buy":         AcqBuy,
	"http://opds-spec.org/acquisition/sample":      AcqSample,
	"http://opds-spec.org/acquisition/subscribe":   AcqSubscribe,
	"preview":                                      AcqPreview,
}

// ResolveRelation classifies a relation string. Resolution tries the fixed
// table first, then the acquisition table, and falls back to a custom
// relation carrying the string unchanged. The order must be preserved so the
// two tables can grow without ambiguity; unknown strings never fail.
func ResolveRelation(s string) Relation {
	if kind, ok := fixedRelations[s]; ok {
		return Relation{Kind: kind}
	}
	if acq, ok := acquisitionRelations[s]; ok {
		return Relation{Kind: RelAcquisition, Acquisition: acq}
	}
	return Relation{Kind: RelCustom, Custom: s}
}

// AsAcquisition reports the acquisition sub-tag, if this is an acquisition
// relation.
func (r Relation) AsAcquisition() (AcquisitionKind, bool) {
	if r.Kind == RelAcquisition {
		return r.Acquisition, true
	}
	return 0, false
}

var relationStrings = map[RelationKind]string{
	RelSelf:        "self",
	RelAlternate:   "alternate",
	RelContents:    "contents",
	RelCover:       "cover",
	RelManifest:    "manifest",
	RelProfile:     "profile",
	RelFirst:       "first",
	RelPrevious:    "previous",
	RelNext:        "next",
	RelLast:        "last",
	RelCurrent:     "current",
	RelSearch:      "search",
	RelSubsection:  "subsection",
	RelSortNew:     "http://opds-spec.org/sort/new",
	RelSortPopular: "http://opds-spec.org/sort/popular",
}

var acquisitionStrings = map[AcquisitionKind]string{
	AcqFallback:   "http://opds-spec.org/acquisition",
	AcqOpenAccess: "http://opds-spec.org/acquisition/open-access",
	AcqBuy:        "http://opds-spec.org/acquisition/buy",
	AcqSample:     "http://opds-spec.org/acquisition/sample",
	AcqSubscribe:  "http://opds-spec.org/acquisition/subscribe",
	AcqPreview:    "preview",
}

// String returns the wire form of the relation.
func (r Relation) String() string {
	switch r.Kind {
	case RelCustom:
		return r.Custom
	case RelAcquisition:
		return r.Acquisition.String()
	default:
		return relationStrings[r.Kind]
	}
}

// String returns the wire form of the acquisition relation.
func (k AcquisitionKind) String() string {
	return acquisitionStrings[k]
}

// Rel builds a Relation from a well-known kind. For custom or acquisition
// relations use ResolveRelation or RelOf.
func Rel(kind RelationKind) Relation {
	return Relation{Kind: kind}
}

// RelOf builds an acquisition Relation.
func RelOf(kind AcquisitionKind) Relation {
	return Relation{Kind: RelAcquisition, Acquisition: kind}
}
