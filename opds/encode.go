package opds

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodeOptions configures the canonical encoder.
type EncodeOptions struct {
	// Pretty adds newlines and indentation for readability.
	Pretty bool

	// Indent string for pretty mode (default: "  ")
	Indent string
}

// EncodeFeed renders a feed as canonical compact JSON. Encoding cannot fail:
// every representable tree has a canonical form. Fields appear in a fixed
// order, absent fields are omitted, one-element shorthand lists collapse to
// a bare element, and shorthand entities are expanded to full object form.
func EncodeFeed(f *Feed) []byte {
	return EncodeFeedWithOptions(f, EncodeOptions{})
}

// EncodeFeedPretty renders a feed as indented JSON.
func EncodeFeedPretty(f *Feed) []byte {
	return EncodeFeedWithOptions(f, EncodeOptions{Pretty: true})
}

// EncodeFeedWithOptions renders a feed with custom options.
func EncodeFeedWithOptions(f *Feed, opts EncodeOptions) []byte {
	e := newEmitter(opts)
	e.feed(f)
	return []byte(e.sb.String())
}

// EncodePublication renders a standalone publication as canonical compact
// JSON.
func EncodePublication(p *Publication) []byte {
	return EncodePublicationWithOptions(p, EncodeOptions{})
}

// EncodePublicationPretty renders a standalone publication as indented JSON.
func EncodePublicationPretty(p *Publication) []byte {
	return EncodePublicationWithOptions(p, EncodeOptions{Pretty: true})
}

// EncodePublicationWithOptions renders a publication with custom options.
func EncodePublicationWithOptions(p *Publication, opts EncodeOptions) []byte {
	e := newEmitter(opts)
	e.publication(p)
	return []byte(e.sb.String())
}

// ============================================================
// Emitter plumbing
// ============================================================

type emitter struct {
	sb     strings.Builder
	pretty bool
	indent string

	// stack tracks, per open container, whether the next member is the
	// first one.
	stack []bool
}

func newEmitter(opts EncodeOptions) *emitter {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	return &emitter{pretty: opts.Pretty, indent: indent}
}

func (e *emitter) open(ch byte) {
	e.sb.WriteByte(ch)
	e.stack = append(e.stack, true)
}

func (e *emitter) close(ch byte) {
	n := len(e.stack) - 1
	first := e.stack[n]
	e.stack = e.stack[:n]
	if e.pretty && !first {
		e.newline()
	}
	e.sb.WriteByte(ch)
}

func (e *emitter) newline() {
	e.sb.WriteByte('\n')
	for range e.stack {
		e.sb.WriteString(e.indent)
	}
}

// member separates the next object field or array element from the previous
// one.
func (e *emitter) member() {
	n := len(e.stack) - 1
	if !e.stack[n] {
		e.sb.WriteByte(',')
	}
	e.stack[n] = false
	if e.pretty {
		e.newline()
	}
}

func (e *emitter) field(name string) {
	e.member()
	e.str(name)
	e.sb.WriteByte(':')
	if e.pretty {
		e.sb.WriteByte(' ')
	}
}

func (e *emitter) str(s string) {
	e.sb.WriteByte('"')
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			switch {
			case b == '"':
				e.sb.WriteString(`\"`)
			case b == '\\':
				e.sb.WriteString(`\\`)
			case b == '\n':
				e.sb.WriteString(`\n`)
			case b == '\r':
				e.sb.WriteString(`\r`)
			case b == '\t':
				e.sb.WriteString(`\t`)
			case b < 0x20:
				const hex = "0123456789abcdef"
				e.sb.WriteString(`\u00`)
				e.sb.WriteByte(hex[b>>4])
				e.sb.WriteByte(hex[b&0xf])
			default:
				e.sb.WriteByte(b)
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		e.sb.WriteString(s[i : i+size])
		i += size
	}
	e.sb.WriteByte('"')
}

func (e *emitter) int(n int) {
	e.sb.WriteString(strconv.Itoa(n))
}

func (e *emitter) float(f float64) {
	// JSON has no NaN or infinity; out-of-range values encode as 0.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.sb.WriteByte('0')
		return
	}
	e.sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func (e *emitter) bool(b bool) {
	if b {
		e.sb.WriteString("true")
	} else {
		e.sb.WriteString("false")
	}
}

// Optional-field helpers. Absent values emit nothing.

func (e *emitter) strField(name, s string) {
	if s == "" {
		return
	}
	e.field(name)
	e.str(s)
}

func (e *emitter) intField(name string, n *int) {
	if n == nil {
		return
	}
	e.field(name)
	e.int(*n)
}

func (e *emitter) floatField(name string, f *float64) {
	if f == nil {
		return
	}
	e.field(name)
	e.float(*f)
}

func (e *emitter) boolField(name string, b *bool) {
	if b == nil {
		return
	}
	e.field(name)
	e.bool(*b)
}

func (e *emitter) msField(name string, m MultiString) {
	if m.IsZero() {
		return
	}
	e.field(name)
	e.multiString(m)
}

func (e *emitter) multiString(m MultiString) {
	if !m.IsLocalized() {
		e.str(m.String())
		return
	}
	e.open('{')
	for _, alt := range m.Alternates() {
		e.field(string(alt.Tag))
		e.str(alt.Value)
	}
	e.close('}')
}

// encodeFlattened applies the encoding half of the singleton-or-sequence
// reducer: one element emits bare, more emit as an array, none emits
// nothing.
func encodeFlattened[T any](e *emitter, name string, list []T, elem func(*emitter, T)) {
	if len(list) == 0 {
		return
	}
	e.field(name)
	if len(list) == 1 {
		elem(e, list[0])
		return
	}
	e.open('[')
	for _, t := range list {
		e.member()
		elem(e, t)
	}
	e.close(']')
}

func (e *emitter) plainStr(s string) { e.str(s) }

func (e *emitter) langTag(t LangTag) { e.str(string(t)) }

func (e *emitter) relation(r Relation) { e.str(r.String()) }

// ============================================================
// Links
// ============================================================

func (e *emitter) link(l *Link) {
	e.open('{')
	e.strField("title", l.Title)
	e.strField("href", l.Href)
	if l.Templated {
		e.field("templated")
		e.bool(true)
	}
	e.strField("type", l.Type)
	encodeFlattened(e, "rel", l.Rel, (*emitter).relation)
	if !l.Properties.IsZero() {
		e.field("properties")
		e.linkProperties(&l.Properties)
	}
	e.intField("height", l.Height)
	e.intField("width", l.Width)
	e.intField("size", l.Size)
	e.floatField("bitrate", l.Bitrate)
	e.floatField("duration", l.Duration)
	encodeFlattened(e, "language", l.Language, (*emitter).langTag)
	e.linkField("alternate", l.Alternate)
	e.linkField("children", l.Children)
	e.close('}')
}

func (e *emitter) links(list []Link) {
	e.open('[')
	for i := range list {
		e.member()
		e.link(&list[i])
	}
	e.close(']')
}

func (e *emitter) linkField(name string, list []Link) {
	if len(list) == 0 {
		return
	}
	e.field(name)
	e.links(list)
}

func (e *emitter) linkProperties(p *LinkProperties) {
	e.open('{')
	e.intField("numberOfItems", p.NumberOfItems)
	e.strField("page", string(p.Page))
	if p.Availability != nil {
		e.field("availability")
		e.open('{')
		e.field("state")
		e.str(string(p.Availability.State))
		e.strField("since", p.Availability.Since)
		e.strField("until", p.Availability.Until)
		e.close('}')
	}
	if p.Price != nil {
		e.field("price")
		e.open('{')
		e.field("value")
		e.float(p.Price.Value)
		e.field("currency")
		e.str(p.Price.Currency)
		e.close('}')
	}
	if len(p.IndirectAcquisition) > 0 {
		e.field("indirectAcquisition")
		e.acquisitions(p.IndirectAcquisition)
	}
	if p.Holds != nil {
		e.field("holds")
		e.open('{')
		e.intField("total", p.Holds.Total)
		e.intField("position", p.Holds.Position)
		e.close('}')
	}
	if p.Copies != nil {
		e.field("copies")
		e.open('{')
		e.intField("total", p.Copies.Total)
		e.intField("available", p.Copies.Available)
		e.close('}')
	}
	e.close('}')
}

func (e *emitter) acquisitions(list []Acquisition) {
	e.open('[')
	for i := range list {
		e.member()
		e.open('{')
		e.field("type")
		e.str(list[i].Type)
		if len(list[i].Child) > 0 {
			e.field("child")
			e.acquisitions(list[i].Child)
		}
		e.close('}')
	}
	e.close(']')
}

// ============================================================
// Contributors, subjects, identifiers
// ============================================================

func (e *emitter) contributor(c Contributor) {
	e.open('{')
	e.msField("name", c.Name)
	e.msField("sortAs", c.SortAs)
	e.strField("identifier", c.Identifier.String())
	encodeFlattened(e, "altIdentifier", c.AltIdentifier, (*emitter).altIdentifier)
	encodeFlattened(e, "role", c.Role, (*emitter).plainStr)
	e.linkField("links", c.Links)
	e.close('}')
}

func (e *emitter) contributorField(name string, list []Contributor) {
	encodeFlattened(e, name, list, (*emitter).contributor)
}

func (e *emitter) altIdentifier(alt AltIdentifier) {
	e.open('{')
	e.field("value")
	e.str(alt.Value)
	e.strField("scheme", alt.Scheme)
	e.close('}')
}

func (e *emitter) subject(s *Subject) {
	e.open('{')
	e.msField("name", s.Name)
	e.msField("sortAs", s.SortAs)
	e.strField("code", s.Code)
	e.strField("scheme", s.Scheme)
	e.linkField("links", s.Links)
	e.close('}')
}

func (e *emitter) subjects(name string, list []Subject) {
	if len(list) == 0 {
		return
	}
	e.field(name)
	e.open('[')
	for i := range list {
		e.member()
		e.subject(&list[i])
	}
	e.close(']')
}

// ============================================================
// Accessibility
// ============================================================

func (e *emitter) accessibility(a *AccessibilityMeta) {
	e.open('{')
	encodeFlattened(e, "conformsTo", a.ConformsTo, (*emitter).plainStr)
	e.strField("exemption", string(a.Exemption))
	enumField(e, "accessMode", a.AccessMode)
	enumField(e, "feature", a.Feature)
	enumField(e, "hazard", a.Hazard)
	if a.Certification != nil {
		e.field("certification")
		e.open('{')
		e.strField("certifiedBy", a.Certification.CertifiedBy)
		e.strField("credential", a.Certification.Credential)
		e.strField("report", a.Certification.Report)
		e.close('}')
	}
	e.strField("summary", a.Summary)
	e.close('}')
}

func enumField[T ~string](e *emitter, name string, list []T) {
	if len(list) == 0 {
		return
	}
	e.field(name)
	e.open('[')
	for _, t := range list {
		e.member()
		e.str(string(t))
	}
	e.close(']')
}

// ============================================================
// Bibliographic entities
// ============================================================

// entityHead emits the fields shared by every bibliographic kind, through
// the position. The caller closes the object after any child lists.
func (e *emitter) entityHead(name, sortAs MultiString, id Identifier, alt []AltIdentifier, position *int) {
	e.open('{')
	e.msField("name", name)
	e.msField("sortAs", sortAs)
	e.strField("identifier", id.String())
	encodeFlattened(e, "altIdentifier", alt, (*emitter).altIdentifier)
	e.intField("position", position)
}

func (e *emitter) collection(c Collection) {
	e.entityHead(c.Name, c.SortAs, c.Identifier, c.AltIdentifier, c.Position)
	e.linkField("links", c.Links)
	e.close('}')
}

func (e *emitter) periodical(p Periodical) {
	e.entityHead(p.Name, p.SortAs, p.Identifier, p.AltIdentifier, p.Position)
	e.linkField("links", p.Links)
	encodeFlattened(e, "issue", p.Issue, (*emitter).issue)
	encodeFlattened(e, "volume", p.Volume, (*emitter).volume)
	e.close('}')
}

func (e *emitter) episode(ep Episode) {
	e.entityHead(ep.Name, ep.SortAs, ep.Identifier, ep.AltIdentifier, &ep.Position)
	e.linkField("links", ep.Links)
	e.close('}')
}

func (e *emitter) season(s Season) {
	e.entityHead(s.Name, s.SortAs, s.Identifier, s.AltIdentifier, &s.Position)
	e.linkField("links", s.Links)
	encodeFlattened(e, "article", s.Article, (*emitter).article)
	encodeFlattened(e, "chapter", s.Chapter, (*emitter).chapter)
	e.close('}')
}

func (e *emitter) storyArc(a StoryArc) {
	e.entityHead(a.Name, a.SortAs, a.Identifier, a.AltIdentifier, &a.Position)
	e.linkField("links", a.Links)
	encodeFlattened(e, "chapter", a.Chapter, (*emitter).chapter)
	encodeFlattened(e, "issue", a.Issue, (*emitter).issue)
	encodeFlattened(e, "episode", a.Episode, (*emitter).episode)
	e.close('}')
}

func (e *emitter) issue(is Issue) {
	e.entityHead(is.Name, is.SortAs, is.Identifier, is.AltIdentifier, &is.Position)
	e.linkField("links", is.Links)
	encodeFlattened(e, "article", is.Article, (*emitter).article)
	encodeFlattened(e, "chapter", is.Chapter, (*emitter).chapter)
	e.close('}')
}

func (e *emitter) chapter(c Chapter) {
	e.entityHead(c.Name, c.SortAs, c.Identifier, c.AltIdentifier, &c.Position)
	e.linkField("links", c.Links)
	encodeFlattened(e, "series", c.Series, (*emitter).series)
	e.close('}')
}

func (e *emitter) article(a Article) {
	e.open('{')
	e.msField("name", a.Name)
	e.msField("sortAs", a.SortAs)
	e.strField("identifier", a.Identifier.String())
	encodeFlattened(e, "altIdentifier", a.AltIdentifier, (*emitter).altIdentifier)
	e.contributorField("author", a.Author)
	e.contributorField("translator", a.Translator)
	e.contributorField("editor", a.Editor)
	e.contributorField("artist", a.Artist)
	e.contributorField("illustrator", a.Illustrator)
	e.contributorField("contributor", a.Contributor)
	e.strField("description", a.Description)
	e.intField("numberOfPages", a.NumberOfPages)
	e.intField("position", a.Position)
	e.linkField("links", a.Links)
	e.close('}')
}

func (e *emitter) series(s Series) {
	e.entityHead(s.Name, s.SortAs, s.Identifier, s.AltIdentifier, s.Position)
	e.linkField("links", s.Links)
	encodeFlattened(e, "chapter", s.Chapter, (*emitter).chapter)
	encodeFlattened(e, "episode", s.Episode, (*emitter).episode)
	encodeFlattened(e, "issue", s.Issue, (*emitter).issue)
	encodeFlattened(e, "season", s.Season, (*emitter).season)
	encodeFlattened(e, "storyArc", s.StoryArc, (*emitter).storyArc)
	encodeFlattened(e, "volume", s.Volume, (*emitter).volume)
	e.close('}')
}

func (e *emitter) volume(v Volume) {
	e.entityHead(v.Name, v.SortAs, v.Identifier, v.AltIdentifier, &v.Position)
	e.linkField("links", v.Links)
	encodeFlattened(e, "chapter", v.Chapter, (*emitter).chapter)
	encodeFlattened(e, "issue", v.Issue, (*emitter).issue)
	encodeFlattened(e, "storyArc", v.StoryArc, (*emitter).storyArc)
	e.close('}')
}

func (e *emitter) belongsTo(b *BelongsTo) {
	e.open('{')
	encodeFlattened(e, "collection", b.Collection, (*emitter).collection)
	encodeFlattened(e, "journal", b.Journal, (*emitter).periodical)
	encodeFlattened(e, "magazine", b.Magazine, (*emitter).periodical)
	encodeFlattened(e, "newspaper", b.Newspaper, (*emitter).periodical)
	encodeFlattened(e, "periodical", b.Periodical, (*emitter).periodical)
	encodeFlattened(e, "season", b.Season, (*emitter).season)
	encodeFlattened(e, "series", b.Series, (*emitter).series)
	encodeFlattened(e, "storyArc", b.StoryArc, (*emitter).storyArc)
	encodeFlattened(e, "volume", b.Volume, (*emitter).volume)
	e.close('}')
}

func (e *emitter) contains(c *Contains) {
	e.open('{')
	encodeFlattened(e, "article", c.Article, (*emitter).article)
	encodeFlattened(e, "chapter", c.Chapter, (*emitter).chapter)
	encodeFlattened(e, "episode", c.Episode, (*emitter).episode)
	encodeFlattened(e, "issue", c.Issue, (*emitter).issue)
	encodeFlattened(e, "season", c.Season, (*emitter).season)
	encodeFlattened(e, "series", c.Series, (*emitter).series)
	encodeFlattened(e, "storyArc", c.StoryArc, (*emitter).storyArc)
	encodeFlattened(e, "volume", c.Volume, (*emitter).volume)
	e.close('}')
}

// ============================================================
// Metadata
// ============================================================

func (e *emitter) feedMetadata(m *FeedMetadata) {
	e.open('{')
	e.field("title")
	e.multiString(m.Title)
	encodeFlattened(e, "subtitle", m.Subtitle, (*emitter).multiString)
	e.strField("identifier", m.Identifier)
	e.strField("@type", m.Schema)
	e.strField("modified", m.Modified)
	e.strField("description", m.Description)
	e.intField("itemsPerPage", m.ItemsPerPage)
	e.intField("currentPage", m.CurrentPage)
	e.intField("numberOfItems", m.NumberOfItems)
	e.close('}')
}

func (e *emitter) publicationMetadata(m *PublicationMetadata) {
	e.open('{')
	e.strField("@type", m.Schema)
	if len(m.ConformsTo) > 0 {
		e.field("conformsTo")
		e.open('[')
		for _, u := range m.ConformsTo {
			e.member()
			e.str(u)
		}
		e.close(']')
	}
	e.field("title")
	e.multiString(m.Title)
	e.msField("sortAs", m.SortAs)
	e.msField("subtitle", m.Subtitle)
	e.contributorField("author", m.Author)
	e.strField("description", m.Description)
	e.strField("identifier", m.Identifier)
	encodeFlattened(e, "altIdentifier", m.AltIdentifier, (*emitter).altIdentifier)
	if m.Accessibility != nil {
		e.field("accessibility")
		e.accessibility(m.Accessibility)
	}
	e.strField("modified", m.Modified)
	e.strField("published", m.Published)
	encodeFlattened(e, "language", m.Language, (*emitter).langTag)
	e.subjects("subject", m.Subject)
	e.strField("layout", string(m.Layout))
	e.strField("readingProgression", string(m.ReadingProgression))
	e.intField("duration", m.Duration)
	e.boolField("abridged", m.Abridged)
	e.intField("numberOfPages", m.NumberOfPages)
	if m.BelongsTo != nil && !m.BelongsTo.IsZero() {
		e.field("belongsTo")
		e.belongsTo(m.BelongsTo)
	}
	if m.Contains != nil && !m.Contains.IsZero() {
		e.field("contains")
		e.contains(m.Contains)
	}
	if m.TDM != nil {
		e.field("tdm")
		e.open('{')
		e.field("reservation")
		e.str(string(m.TDM.Reservation))
		e.strField("policy", m.TDM.Policy)
		e.close('}')
	}
	e.contributorField("translator", m.Translator)
	e.contributorField("editor", m.Editor)
	e.contributorField("artist", m.Artist)
	e.contributorField("illustrator", m.Illustrator)
	e.contributorField("letterer", m.Letterer)
	e.contributorField("penciler", m.Penciler)
	e.contributorField("colorist", m.Colorist)
	e.contributorField("inker", m.Inker)
	e.contributorField("narrator", m.Narrator)
	e.contributorField("contributor", m.Contributor)
	e.contributorField("publisher", m.Publisher)
	e.contributorField("imprint", m.Imprint)
	e.close('}')
}

// ============================================================
// Feed, publication, facet, group
// ============================================================

func (e *emitter) feed(f *Feed) {
	e.open('{')
	e.field("metadata")
	e.feedMetadata(&f.Metadata)
	e.linkField("links", f.Links)
	e.linkField("navigation", f.Navigation)
	if len(f.Facets) > 0 {
		e.field("facets")
		e.open('[')
		for i := range f.Facets {
			e.member()
			e.facet(&f.Facets[i])
		}
		e.close(']')
	}
	e.publicationList("publications", f.Publications)
	if len(f.Groups) > 0 {
		e.field("groups")
		e.open('[')
		for i := range f.Groups {
			e.member()
			e.feedGroup(&f.Groups[i])
		}
		e.close(']')
	}
	e.close('}')
}

func (e *emitter) facet(f *Facet) {
	e.open('{')
	e.field("metadata")
	e.feedMetadata(&f.Metadata)
	e.field("links")
	e.links(f.Links)
	e.close('}')
}

func (e *emitter) feedGroup(g *FeedGroup) {
	e.open('{')
	e.field("metadata")
	e.feedMetadata(&g.Metadata)
	e.linkField("links", g.Links)
	e.linkField("navigation", g.Navigation)
	e.publicationList("publications", g.Publications)
	e.close('}')
}

func (e *emitter) publication(p *Publication) {
	e.open('{')
	e.field("metadata")
	e.publicationMetadata(&p.Metadata)
	e.field("links")
	e.links(p.Links)
	e.linkField("images", p.Images)
	e.close('}')
}

func (e *emitter) publicationList(name string, list []Publication) {
	if len(list) == 0 {
		return
	}
	e.field(name)
	e.open('[')
	for i := range list {
		e.member()
		e.publication(&list[i])
	}
	e.close(']')
}
