package opds

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultMaxDepth bounds document nesting during parsing. The format permits
// arbitrarily deep containment chains, so the parser refuses adversarially
// deep input instead of risking unbounded stack growth.
const DefaultMaxDepth = 128

// ParseOptions configures the parser.
type ParseOptions struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// ParseFeed parses a JSON document as a Feed. On failure no partial tree is
// returned; the error is a *DecodeError carrying the path of the offending
// field.
func ParseFeed(data []byte) (*Feed, error) {
	return ParseFeedWithOptions(data, ParseOptions{})
}

// ParseFeedWithOptions parses a JSON document as a Feed with explicit
// options.
func ParseFeedWithOptions(data []byte, opts ParseOptions) (*Feed, error) {
	d, v, err := newDecoder(data, opts)
	if err != nil {
		return nil, err
	}
	return d.feed("", v)
}

// ParsePublication parses a JSON document as a standalone Publication.
func ParsePublication(data []byte) (*Publication, error) {
	return ParsePublicationWithOptions(data, ParseOptions{})
}

// ParsePublicationWithOptions parses a Publication with explicit options.
func ParsePublicationWithOptions(data []byte, opts ParseOptions) (*Publication, error) {
	d, v, err := newDecoder(data, opts)
	if err != nil {
		return nil, err
	}
	pub, err := d.publication("", v)
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

// decoder walks a generic JSON value and builds the typed tree. It carries
// no state beyond the depth counter, so independent parses never interact.
type decoder struct {
	maxDepth int
	depth    int
}

func newDecoder(data []byte, opts ParseOptions) (*decoder, any, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, nil, &DecodeError{
			Code:    CodeMalformedInput,
			Message: fmt.Sprintf("invalid JSON: %v", err),
		}
	}
	return &decoder{maxDepth: maxDepth}, v, nil
}

func (d *decoder) enter(path string) error {
	d.depth++
	if d.depth > d.maxDepth {
		return errRecursionLimit(path, d.maxDepth)
	}
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// ============================================================
// Field helpers
// ============================================================

func (d *decoder) object(path string, v any) (map[string]any, error) {
	o, ok := v.(map[string]any)
	if !ok {
		return nil, errShape(path, "object", v)
	}
	return o, nil
}

func optString(o map[string]any, path, key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errShape(join(path, key), "string", v)
	}
	return s, nil
}

func reqString(o map[string]any, path, key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", errMissingField(join(path, key))
	}
	s, ok := v.(string)
	if !ok {
		return "", errShape(join(path, key), "string", v)
	}
	return s, nil
}

func optInt(o map[string]any, path, key string) (*int, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	n, ok := asInt(v)
	if !ok {
		return nil, errShape(join(path, key), "non-negative integer", v)
	}
	return &n, nil
}

func reqInt(o map[string]any, path, key string) (int, error) {
	v, ok := o[key]
	if !ok {
		return 0, errMissingField(join(path, key))
	}
	n, ok := asInt(v)
	if !ok {
		return 0, errShape(join(path, key), "non-negative integer", v)
	}
	return n, nil
}

func optFloat(o map[string]any, path, key string) (*float64, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, errShape(join(path, key), "number", v)
	}
	return &f, nil
}

func optBool(o map[string]any, path, key string) (*bool, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errShape(join(path, key), "boolean", v)
	}
	return &b, nil
}

func flagBool(o map[string]any, path, key string) (bool, error) {
	b, err := optBool(o, path, key)
	if err != nil || b == nil {
		return false, err
	}
	return *b, nil
}

// decodeEnum parses a member of a closed enumeration. Unlike relation tags
// there is no custom fallback: unknown values are an error.
func decodeEnum[T ~string](path string, v any, valid map[T]bool) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", errShape(path, "string", v)
	}
	t := T(s)
	if !valid[t] {
		return "", errEnum(path, s)
	}
	return t, nil
}

func optEnum[T ~string](o map[string]any, path, key string, valid map[T]bool) (T, error) {
	v, ok := o[key]
	if !ok {
		return "", nil
	}
	return decodeEnum(join(path, key), v, valid)
}

func optURL(o map[string]any, path, key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errShape(join(path, key), "string", v)
	}
	u, err := parseURL(s)
	if err != nil {
		return "", errIdentifier(join(path, key), s, err)
	}
	return u, nil
}

func optIdentifier(o map[string]any, path, key string) (Identifier, error) {
	v, ok := o[key]
	if !ok {
		return Identifier{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return Identifier{}, errShape(join(path, key), "string", v)
	}
	id, err := ParseIdentifier(s)
	if err != nil {
		return Identifier{}, errIdentifier(join(path, key), s, err)
	}
	return id, nil
}

// ============================================================
// Scalar-ish leaves
// ============================================================

func (d *decoder) multiString(path string, v any) (MultiString, error) {
	switch val := v.(type) {
	case string:
		return Text(val), nil
	case map[string]any:
		alts := make([]LangString, 0, len(val))
		for tag, raw := range val {
			s, ok := raw.(string)
			if !ok {
				return MultiString{}, errShape(join(path, tag), "string", raw)
			}
			t, err := ParseLangTag(tag)
			if err != nil {
				return MultiString{}, errLangTag(path, tag)
			}
			alts = append(alts, LangString{Tag: t, Value: s})
		}
		return Localized(alts...), nil
	default:
		return MultiString{}, errShape(path, "string or language map", v)
	}
}

func optMultiString(d *decoder, o map[string]any, path, key string) (MultiString, error) {
	v, ok := o[key]
	if !ok {
		return MultiString{}, nil
	}
	return d.multiString(join(path, key), v)
}

func reqMultiString(d *decoder, o map[string]any, path, key string) (MultiString, error) {
	v, ok := o[key]
	if !ok {
		return MultiString{}, errMissingField(join(path, key))
	}
	return d.multiString(join(path, key), v)
}

func (d *decoder) langTag(path string, v any) (LangTag, error) {
	s, ok := v.(string)
	if !ok {
		return "", errShape(path, "string", v)
	}
	t, err := ParseLangTag(s)
	if err != nil {
		return "", errLangTag(path, s)
	}
	return t, nil
}

func (d *decoder) langList(o map[string]any, path, key string) ([]LangTag, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, key), v, (*decoder).langTag)
}

func (d *decoder) relation(path string, v any) (Relation, error) {
	s, ok := v.(string)
	if !ok {
		return Relation{}, errShape(path, "string", v)
	}
	return ResolveRelation(s), nil
}

func (d *decoder) urlString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errShape(path, "string", v)
	}
	u, err := parseURL(s)
	if err != nil {
		return "", errIdentifier(path, s, err)
	}
	return u, nil
}

func (d *decoder) urlList(o map[string]any, path, key string) ([]string, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(join(path, key), "array", v)
	}
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		u, err := d.urlString(fmt.Sprintf("%s[%d]", join(path, key), i), e)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// ============================================================
// Links
// ============================================================

func (d *decoder) link(path string, v any) (Link, error) {
	if err := d.enter(path); err != nil {
		return Link{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return Link{}, err
	}

	var link Link
	if link.Title, err = optString(o, path, "title"); err != nil {
		return Link{}, err
	}
	if link.Href, err = optString(o, path, "href"); err != nil {
		return Link{}, err
	}
	if link.Templated, err = flagBool(o, path, "templated"); err != nil {
		return Link{}, err
	}
	if link.Type, err = optString(o, path, "type"); err != nil {
		return Link{}, err
	}
	if rel, ok := o["rel"]; ok {
		if link.Rel, err = decodeFlattened(d, join(path, "rel"), rel, (*decoder).relation); err != nil {
			return Link{}, err
		}
	}
	if props, ok := o["properties"]; ok {
		if link.Properties, err = d.linkProperties(join(path, "properties"), props); err != nil {
			return Link{}, err
		}
	}
	if link.Height, err = optInt(o, path, "height"); err != nil {
		return Link{}, err
	}
	if link.Width, err = optInt(o, path, "width"); err != nil {
		return Link{}, err
	}
	if link.Size, err = optInt(o, path, "size"); err != nil {
		return Link{}, err
	}
	if link.Bitrate, err = optFloat(o, path, "bitrate"); err != nil {
		return Link{}, err
	}
	if link.Duration, err = optFloat(o, path, "duration"); err != nil {
		return Link{}, err
	}
	if link.Language, err = d.langList(o, path, "language"); err != nil {
		return Link{}, err
	}
	if link.Alternate, err = d.linkList(o, path, "alternate"); err != nil {
		return Link{}, err
	}
	if link.Children, err = d.linkList(o, path, "children"); err != nil {
		return Link{}, err
	}
	return link, nil
}

func (d *decoder) links(path string, v any) ([]Link, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(path, "array", v)
	}
	out := make([]Link, 0, len(arr))
	for i, e := range arr {
		link, err := d.link(fmt.Sprintf("%s[%d]", path, i), e)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, nil
}

func (d *decoder) linkList(o map[string]any, path, key string) ([]Link, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	return d.links(join(path, key), v)
}

func (d *decoder) linkProperties(path string, v any) (LinkProperties, error) {
	o, err := d.object(path, v)
	if err != nil {
		return LinkProperties{}, err
	}

	var props LinkProperties
	if props.NumberOfItems, err = optInt(o, path, "numberOfItems"); err != nil {
		return LinkProperties{}, err
	}
	if props.Page, err = optEnum(o, path, "page", pageDisplays); err != nil {
		return LinkProperties{}, err
	}
	if av, ok := o["availability"]; ok {
		availability, err := d.availability(join(path, "availability"), av)
		if err != nil {
			return LinkProperties{}, err
		}
		props.Availability = &availability
	}
	if pr, ok := o["price"]; ok {
		price, err := d.price(join(path, "price"), pr)
		if err != nil {
			return LinkProperties{}, err
		}
		props.Price = &price
	}
	if ia, ok := o["indirectAcquisition"]; ok {
		if props.IndirectAcquisition, err = d.acquisitions(join(path, "indirectAcquisition"), ia); err != nil {
			return LinkProperties{}, err
		}
	}
	if h, ok := o["holds"]; ok {
		holds, err := d.holds(join(path, "holds"), h)
		if err != nil {
			return LinkProperties{}, err
		}
		props.Holds = &holds
	}
	if c, ok := o["copies"]; ok {
		copies, err := d.copies(join(path, "copies"), c)
		if err != nil {
			return LinkProperties{}, err
		}
		props.Copies = &copies
	}
	return props, nil
}

func (d *decoder) availability(path string, v any) (Availability, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Availability{}, err
	}
	var av Availability
	state, ok := o["state"]
	if !ok {
		return Availability{}, errMissingField(join(path, "state"))
	}
	if av.State, err = decodeEnum(join(path, "state"), state, availabilityStates); err != nil {
		return Availability{}, err
	}
	if av.Since, err = optString(o, path, "since"); err != nil {
		return Availability{}, err
	}
	if av.Until, err = optString(o, path, "until"); err != nil {
		return Availability{}, err
	}
	return av, nil
}

func (d *decoder) price(path string, v any) (Price, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Price{}, err
	}
	var price Price
	raw, ok := o["value"]
	if !ok {
		return Price{}, errMissingField(join(path, "value"))
	}
	value, ok := asFloat(raw)
	if !ok {
		return Price{}, errShape(join(path, "value"), "number", raw)
	}
	price.Value = value
	if price.Currency, err = reqString(o, path, "currency"); err != nil {
		return Price{}, err
	}
	return price, nil
}

func (d *decoder) acquisition(path string, v any) (Acquisition, error) {
	if err := d.enter(path); err != nil {
		return Acquisition{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return Acquisition{}, err
	}
	var acq Acquisition
	if acq.Type, err = reqString(o, path, "type"); err != nil {
		return Acquisition{}, err
	}
	if child, ok := o["child"]; ok {
		if acq.Child, err = d.acquisitions(join(path, "child"), child); err != nil {
			return Acquisition{}, err
		}
	}
	return acq, nil
}

func (d *decoder) acquisitions(path string, v any) ([]Acquisition, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(path, "array", v)
	}
	out := make([]Acquisition, 0, len(arr))
	for i, e := range arr {
		acq, err := d.acquisition(fmt.Sprintf("%s[%d]", path, i), e)
		if err != nil {
			return nil, err
		}
		out = append(out, acq)
	}
	return out, nil
}

func (d *decoder) holds(path string, v any) (Holds, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Holds{}, err
	}
	var h Holds
	if h.Total, err = optInt(o, path, "total"); err != nil {
		return Holds{}, err
	}
	if h.Position, err = optInt(o, path, "position"); err != nil {
		return Holds{}, err
	}
	return h, nil
}

func (d *decoder) copies(path string, v any) (Copies, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Copies{}, err
	}
	var c Copies
	if c.Total, err = optInt(o, path, "total"); err != nil {
		return Copies{}, err
	}
	if c.Available, err = optInt(o, path, "available"); err != nil {
		return Copies{}, err
	}
	return c, nil
}

// ============================================================
// Contributors, subjects, identifiers
// ============================================================

func (d *decoder) contributorObj(path string, v any) (Contributor, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Contributor{}, err
	}
	var c Contributor
	if c.Name, err = reqMultiString(d, o, path, "name"); err != nil {
		return Contributor{}, err
	}
	if c.SortAs, err = optMultiString(d, o, path, "sortAs"); err != nil {
		return Contributor{}, err
	}
	if c.Identifier, err = optIdentifier(o, path, "identifier"); err != nil {
		return Contributor{}, err
	}
	if c.AltIdentifier, err = d.altIdentifiers(o, path); err != nil {
		return Contributor{}, err
	}
	if role, ok := o["role"]; ok {
		if c.Role, err = decodeFlattened(d, join(path, "role"), role, (*decoder).plainString); err != nil {
			return Contributor{}, err
		}
	}
	if c.Links, err = d.linkList(o, path, "links"); err != nil {
		return Contributor{}, err
	}
	return c, nil
}

func (d *decoder) plainString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errShape(path, "string", v)
	}
	return s, nil
}

func (d *decoder) contributors(o map[string]any, path, key string) ([]Contributor, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, key), v, stringy(contributorOf, (*decoder).contributorObj))
}

func (d *decoder) altIdentifierObj(path string, v any) (AltIdentifier, error) {
	o, err := d.object(path, v)
	if err != nil {
		return AltIdentifier{}, err
	}
	var alt AltIdentifier
	if alt.Value, err = reqString(o, path, "value"); err != nil {
		return AltIdentifier{}, err
	}
	if alt.Scheme, err = optURL(o, path, "scheme"); err != nil {
		return AltIdentifier{}, err
	}
	return alt, nil
}

func (d *decoder) altIdentifiers(o map[string]any, path string) ([]AltIdentifier, error) {
	v, ok := o["altIdentifier"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "altIdentifier"), v, stringy(altIdentifierOf, (*decoder).altIdentifierObj))
}

func (d *decoder) subject(path string, v any) (Subject, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Subject{}, err
	}
	var s Subject
	if s.Name, err = reqMultiString(d, o, path, "name"); err != nil {
		return Subject{}, err
	}
	if s.SortAs, err = optMultiString(d, o, path, "sortAs"); err != nil {
		return Subject{}, err
	}
	if s.Code, err = optString(o, path, "code"); err != nil {
		return Subject{}, err
	}
	if s.Scheme, err = optURL(o, path, "scheme"); err != nil {
		return Subject{}, err
	}
	if s.Links, err = d.linkList(o, path, "links"); err != nil {
		return Subject{}, err
	}
	return s, nil
}

func (d *decoder) subjects(o map[string]any, path, key string) ([]Subject, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(join(path, key), "array", v)
	}
	out := make([]Subject, 0, len(arr))
	for i, e := range arr {
		s, err := d.subject(fmt.Sprintf("%s[%d]", join(path, key), i), e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ============================================================
// Accessibility
// ============================================================

func (d *decoder) accessibility(path string, v any) (AccessibilityMeta, error) {
	o, err := d.object(path, v)
	if err != nil {
		return AccessibilityMeta{}, err
	}
	var meta AccessibilityMeta
	if ct, ok := o["conformsTo"]; ok {
		if meta.ConformsTo, err = decodeFlattened(d, join(path, "conformsTo"), ct, (*decoder).urlString); err != nil {
			return AccessibilityMeta{}, err
		}
	}
	if meta.Exemption, err = optEnum(o, path, "exemption", accessibilityExemptions); err != nil {
		return AccessibilityMeta{}, err
	}
	if meta.AccessMode, err = enumList(o, path, "accessMode", accessModes); err != nil {
		return AccessibilityMeta{}, err
	}
	if meta.Feature, err = enumList(o, path, "feature", accessibilityFeatures); err != nil {
		return AccessibilityMeta{}, err
	}
	if meta.Hazard, err = enumList(o, path, "hazard", accessibilityHazards); err != nil {
		return AccessibilityMeta{}, err
	}
	if cert, ok := o["certification"]; ok {
		co, err := d.object(join(path, "certification"), cert)
		if err != nil {
			return AccessibilityMeta{}, err
		}
		certPath := join(path, "certification")
		var c AccessibilityCertification
		if c.CertifiedBy, err = optString(co, certPath, "certifiedBy"); err != nil {
			return AccessibilityMeta{}, err
		}
		if c.Credential, err = optString(co, certPath, "credential"); err != nil {
			return AccessibilityMeta{}, err
		}
		if c.Report, err = optString(co, certPath, "report"); err != nil {
			return AccessibilityMeta{}, err
		}
		meta.Certification = &c
	}
	if meta.Summary, err = optString(o, path, "summary"); err != nil {
		return AccessibilityMeta{}, err
	}
	return meta, nil
}

func enumList[T ~string](o map[string]any, path, key string, valid map[T]bool) ([]T, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(join(path, key), "array", v)
	}
	out := make([]T, 0, len(arr))
	for i, e := range arr {
		t, err := decodeEnum(fmt.Sprintf("%s[%d]", join(path, key), i), e, valid)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ============================================================
// Bibliographic entities
// ============================================================

// entityCommon holds the fields shared by every bibliographic kind.
type entityCommon struct {
	name          MultiString
	sortAs        MultiString
	identifier    Identifier
	altIdentifier []AltIdentifier
	links         []Link
}

func (d *decoder) entityCommon(path string, o map[string]any, nameRequired bool) (entityCommon, error) {
	var c entityCommon
	var err error
	if nameRequired {
		c.name, err = reqMultiString(d, o, path, "name")
	} else {
		c.name, err = optMultiString(d, o, path, "name")
	}
	if err != nil {
		return entityCommon{}, err
	}
	if c.sortAs, err = optMultiString(d, o, path, "sortAs"); err != nil {
		return entityCommon{}, err
	}
	if c.identifier, err = optIdentifier(o, path, "identifier"); err != nil {
		return entityCommon{}, err
	}
	if c.altIdentifier, err = d.altIdentifiers(o, path); err != nil {
		return entityCommon{}, err
	}
	if c.links, err = d.linkList(o, path, "links"); err != nil {
		return entityCommon{}, err
	}
	return c, nil
}

func (d *decoder) collectionObj(path string, v any) (Collection, error) {
	if err := d.enter(path); err != nil {
		return Collection{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Collection{}, err
	}
	c, err := d.entityCommon(path, o, true)
	if err != nil {
		return Collection{}, err
	}
	position, err := optInt(o, path, "position")
	if err != nil {
		return Collection{}, err
	}
	return Collection{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}, nil
}

func (d *decoder) periodicalObj(path string, v any) (Periodical, error) {
	if err := d.enter(path); err != nil {
		return Periodical{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Periodical{}, err
	}
	c, err := d.entityCommon(path, o, true)
	if err != nil {
		return Periodical{}, err
	}
	position, err := optInt(o, path, "position")
	if err != nil {
		return Periodical{}, err
	}
	p := Periodical{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if p.Issue, err = d.issueList(o, path); err != nil {
		return Periodical{}, err
	}
	if p.Volume, err = d.volumeList(o, path); err != nil {
		return Periodical{}, err
	}
	return p, nil
}

func (d *decoder) episodeObj(path string, v any) (Episode, error) {
	if err := d.enter(path); err != nil {
		return Episode{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Episode{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return Episode{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return Episode{}, err
	}
	return Episode{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}, nil
}

func (d *decoder) seasonObj(path string, v any) (Season, error) {
	if err := d.enter(path); err != nil {
		return Season{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Season{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return Season{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return Season{}, err
	}
	s := Season{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if s.Article, err = d.articleList(o, path); err != nil {
		return Season{}, err
	}
	if s.Chapter, err = d.chapterList(o, path); err != nil {
		return Season{}, err
	}
	return s, nil
}

func (d *decoder) storyArcObj(path string, v any) (StoryArc, error) {
	if err := d.enter(path); err != nil {
		return StoryArc{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return StoryArc{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return StoryArc{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return StoryArc{}, err
	}
	arc := StoryArc{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if arc.Chapter, err = d.chapterList(o, path); err != nil {
		return StoryArc{}, err
	}
	if arc.Issue, err = d.issueList(o, path); err != nil {
		return StoryArc{}, err
	}
	if arc.Episode, err = d.episodeList(o, path); err != nil {
		return StoryArc{}, err
	}
	return arc, nil
}

func (d *decoder) issueObj(path string, v any) (Issue, error) {
	if err := d.enter(path); err != nil {
		return Issue{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Issue{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return Issue{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return Issue{}, err
	}
	issue := Issue{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if issue.Article, err = d.articleList(o, path); err != nil {
		return Issue{}, err
	}
	if issue.Chapter, err = d.chapterList(o, path); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

func (d *decoder) chapterObj(path string, v any) (Chapter, error) {
	if err := d.enter(path); err != nil {
		return Chapter{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Chapter{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return Chapter{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return Chapter{}, err
	}
	ch := Chapter{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if series, ok := o["series"]; ok {
		if ch.Series, err = decodeFlattened(d, join(path, "series"), series, stringy(seriesOf, (*decoder).seriesObj)); err != nil {
			return Chapter{}, err
		}
	}
	return ch, nil
}

func (d *decoder) articleObj(path string, v any) (Article, error) {
	if err := d.enter(path); err != nil {
		return Article{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Article{}, err
	}
	c, err := d.entityCommon(path, o, true)
	if err != nil {
		return Article{}, err
	}
	a := Article{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Links:         c.links,
	}
	if a.Author, err = d.contributors(o, path, "author"); err != nil {
		return Article{}, err
	}
	if a.Translator, err = d.contributors(o, path, "translator"); err != nil {
		return Article{}, err
	}
	if a.Editor, err = d.contributors(o, path, "editor"); err != nil {
		return Article{}, err
	}
	if a.Artist, err = d.contributors(o, path, "artist"); err != nil {
		return Article{}, err
	}
	if a.Illustrator, err = d.contributors(o, path, "illustrator"); err != nil {
		return Article{}, err
	}
	if a.Contributor, err = d.contributors(o, path, "contributor"); err != nil {
		return Article{}, err
	}
	if a.Description, err = optString(o, path, "description"); err != nil {
		return Article{}, err
	}
	if a.NumberOfPages, err = optInt(o, path, "numberOfPages"); err != nil {
		return Article{}, err
	}
	if a.Position, err = optInt(o, path, "position"); err != nil {
		return Article{}, err
	}
	return a, nil
}

func (d *decoder) seriesObj(path string, v any) (Series, error) {
	if err := d.enter(path); err != nil {
		return Series{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Series{}, err
	}
	c, err := d.entityCommon(path, o, true)
	if err != nil {
		return Series{}, err
	}
	position, err := optInt(o, path, "position")
	if err != nil {
		return Series{}, err
	}
	s := Series{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if s.Chapter, err = d.chapterList(o, path); err != nil {
		return Series{}, err
	}
	if s.Episode, err = d.episodeList(o, path); err != nil {
		return Series{}, err
	}
	if s.Issue, err = d.issueList(o, path); err != nil {
		return Series{}, err
	}
	if s.Season, err = d.seasonList(o, path); err != nil {
		return Series{}, err
	}
	if s.StoryArc, err = d.storyArcList(o, path); err != nil {
		return Series{}, err
	}
	if s.Volume, err = d.volumeList(o, path); err != nil {
		return Series{}, err
	}
	return s, nil
}

func (d *decoder) volumeObj(path string, v any) (Volume, error) {
	if err := d.enter(path); err != nil {
		return Volume{}, err
	}
	defer d.leave()
	o, err := d.object(path, v)
	if err != nil {
		return Volume{}, err
	}
	c, err := d.entityCommon(path, o, false)
	if err != nil {
		return Volume{}, err
	}
	position, err := reqInt(o, path, "position")
	if err != nil {
		return Volume{}, err
	}
	vol := Volume{
		Name:          c.name,
		SortAs:        c.sortAs,
		Identifier:    c.identifier,
		AltIdentifier: c.altIdentifier,
		Position:      position,
		Links:         c.links,
	}
	if vol.Chapter, err = d.chapterList(o, path); err != nil {
		return Volume{}, err
	}
	if vol.Issue, err = d.issueList(o, path); err != nil {
		return Volume{}, err
	}
	if vol.StoryArc, err = d.storyArcList(o, path); err != nil {
		return Volume{}, err
	}
	return vol, nil
}

// Child-list helpers, one per kind. Number-shorthand kinds construct from a
// bare position, string-shorthand kinds from a bare name.

func (d *decoder) chapterList(o map[string]any, path string) ([]Chapter, error) {
	v, ok := o["chapter"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "chapter"), v, numlike(NewChapter, (*decoder).chapterObj))
}

func (d *decoder) episodeList(o map[string]any, path string) ([]Episode, error) {
	v, ok := o["episode"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "episode"), v, numlike(NewEpisode, (*decoder).episodeObj))
}

func (d *decoder) issueList(o map[string]any, path string) ([]Issue, error) {
	v, ok := o["issue"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "issue"), v, numlike(NewIssue, (*decoder).issueObj))
}

func (d *decoder) seasonList(o map[string]any, path string) ([]Season, error) {
	v, ok := o["season"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "season"), v, numlike(NewSeason, (*decoder).seasonObj))
}

func (d *decoder) storyArcList(o map[string]any, path string) ([]StoryArc, error) {
	v, ok := o["storyArc"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "storyArc"), v, numlike(NewStoryArc, (*decoder).storyArcObj))
}

func (d *decoder) volumeList(o map[string]any, path string) ([]Volume, error) {
	v, ok := o["volume"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "volume"), v, numlike(NewVolume, (*decoder).volumeObj))
}

func (d *decoder) articleList(o map[string]any, path string) ([]Article, error) {
	v, ok := o["article"]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, "article"), v, stringy(articleOf, (*decoder).articleObj))
}

func (d *decoder) periodicalList(o map[string]any, path, key string) ([]Periodical, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	return decodeFlattened(d, join(path, key), v, stringy(periodicalOf, (*decoder).periodicalObj))
}

func (d *decoder) belongsTo(path string, v any) (BelongsTo, error) {
	o, err := d.object(path, v)
	if err != nil {
		return BelongsTo{}, err
	}
	var b BelongsTo
	if coll, ok := o["collection"]; ok {
		if b.Collection, err = decodeFlattened(d, join(path, "collection"), coll, stringy(collectionOf, (*decoder).collectionObj)); err != nil {
			return BelongsTo{}, err
		}
	}
	if b.Journal, err = d.periodicalList(o, path, "journal"); err != nil {
		return BelongsTo{}, err
	}
	if b.Magazine, err = d.periodicalList(o, path, "magazine"); err != nil {
		return BelongsTo{}, err
	}
	if b.Newspaper, err = d.periodicalList(o, path, "newspaper"); err != nil {
		return BelongsTo{}, err
	}
	if b.Periodical, err = d.periodicalList(o, path, "periodical"); err != nil {
		return BelongsTo{}, err
	}
	if b.Season, err = d.seasonList(o, path); err != nil {
		return BelongsTo{}, err
	}
	if series, ok := o["series"]; ok {
		if b.Series, err = decodeFlattened(d, join(path, "series"), series, stringy(seriesOf, (*decoder).seriesObj)); err != nil {
			return BelongsTo{}, err
		}
	}
	if b.StoryArc, err = d.storyArcList(o, path); err != nil {
		return BelongsTo{}, err
	}
	if b.Volume, err = d.volumeList(o, path); err != nil {
		return BelongsTo{}, err
	}
	return b, nil
}

func (d *decoder) contains(path string, v any) (Contains, error) {
	o, err := d.object(path, v)
	if err != nil {
		return Contains{}, err
	}
	var c Contains
	if c.Article, err = d.articleList(o, path); err != nil {
		return Contains{}, err
	}
	if c.Chapter, err = d.chapterList(o, path); err != nil {
		return Contains{}, err
	}
	if c.Episode, err = d.episodeList(o, path); err != nil {
		return Contains{}, err
	}
	if c.Issue, err = d.issueList(o, path); err != nil {
		return Contains{}, err
	}
	if c.Season, err = d.seasonList(o, path); err != nil {
		return Contains{}, err
	}
	if series, ok := o["series"]; ok {
		if c.Series, err = decodeFlattened(d, join(path, "series"), series, stringy(seriesOf, (*decoder).seriesObj)); err != nil {
			return Contains{}, err
		}
	}
	if c.StoryArc, err = d.storyArcList(o, path); err != nil {
		return Contains{}, err
	}
	if c.Volume, err = d.volumeList(o, path); err != nil {
		return Contains{}, err
	}
	return c, nil
}

// ============================================================
// Metadata
// ============================================================

func (d *decoder) feedMetadata(path string, v any) (FeedMetadata, error) {
	if err := d.enter(path); err != nil {
		return FeedMetadata{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return FeedMetadata{}, err
	}
	var meta FeedMetadata
	if meta.Title, err = reqMultiString(d, o, path, "title"); err != nil {
		return FeedMetadata{}, err
	}
	if sub, ok := o["subtitle"]; ok {
		if meta.Subtitle, err = decodeFlattened(d, join(path, "subtitle"), sub, (*decoder).multiString); err != nil {
			return FeedMetadata{}, err
		}
	}
	if meta.Identifier, err = optURL(o, path, "identifier"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.Schema, err = optString(o, path, "@type"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.Modified, err = optString(o, path, "modified"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.Description, err = optString(o, path, "description"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.ItemsPerPage, err = optInt(o, path, "itemsPerPage"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.CurrentPage, err = optInt(o, path, "currentPage"); err != nil {
		return FeedMetadata{}, err
	}
	if meta.NumberOfItems, err = optInt(o, path, "numberOfItems"); err != nil {
		return FeedMetadata{}, err
	}
	return meta, nil
}

func (d *decoder) publicationMetadata(path string, v any) (PublicationMetadata, error) {
	if err := d.enter(path); err != nil {
		return PublicationMetadata{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return PublicationMetadata{}, err
	}
	var meta PublicationMetadata
	if meta.Schema, err = optString(o, path, "@type"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.ConformsTo, err = d.urlList(o, path, "conformsTo"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Title, err = reqMultiString(d, o, path, "title"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.SortAs, err = optMultiString(d, o, path, "sortAs"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Subtitle, err = optMultiString(d, o, path, "subtitle"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Author, err = d.contributors(o, path, "author"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Description, err = optString(o, path, "description"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Identifier, err = optURL(o, path, "identifier"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.AltIdentifier, err = d.altIdentifiers(o, path); err != nil {
		return PublicationMetadata{}, err
	}
	if acc, ok := o["accessibility"]; ok {
		accessibility, err := d.accessibility(join(path, "accessibility"), acc)
		if err != nil {
			return PublicationMetadata{}, err
		}
		meta.Accessibility = &accessibility
	}
	if meta.Modified, err = optString(o, path, "modified"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Published, err = optString(o, path, "published"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Language, err = d.langList(o, path, "language"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Subject, err = d.subjects(o, path, "subject"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Layout, err = optEnum(o, path, "layout", layouts); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.ReadingProgression, err = optEnum(o, path, "readingProgression", readingProgressions); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Duration, err = optInt(o, path, "duration"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Abridged, err = optBool(o, path, "abridged"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.NumberOfPages, err = optInt(o, path, "numberOfPages"); err != nil {
		return PublicationMetadata{}, err
	}
	if bt, ok := o["belongsTo"]; ok {
		belongs, err := d.belongsTo(join(path, "belongsTo"), bt)
		if err != nil {
			return PublicationMetadata{}, err
		}
		meta.BelongsTo = &belongs
	}
	if ct, ok := o["contains"]; ok {
		contains, err := d.contains(join(path, "contains"), ct)
		if err != nil {
			return PublicationMetadata{}, err
		}
		meta.Contains = &contains
	}
	if tdm, ok := o["tdm"]; ok {
		mining, err := d.dataMining(join(path, "tdm"), tdm)
		if err != nil {
			return PublicationMetadata{}, err
		}
		meta.TDM = &mining
	}
	if meta.Translator, err = d.contributors(o, path, "translator"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Editor, err = d.contributors(o, path, "editor"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Artist, err = d.contributors(o, path, "artist"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Illustrator, err = d.contributors(o, path, "illustrator"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Letterer, err = d.contributors(o, path, "letterer"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Penciler, err = d.contributors(o, path, "penciler"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Colorist, err = d.contributors(o, path, "colorist"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Inker, err = d.contributors(o, path, "inker"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Narrator, err = d.contributors(o, path, "narrator"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Contributor, err = d.contributors(o, path, "contributor"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Publisher, err = d.contributors(o, path, "publisher"); err != nil {
		return PublicationMetadata{}, err
	}
	if meta.Imprint, err = d.contributors(o, path, "imprint"); err != nil {
		return PublicationMetadata{}, err
	}
	return meta, nil
}

func (d *decoder) dataMining(path string, v any) (DataMining, error) {
	o, err := d.object(path, v)
	if err != nil {
		return DataMining{}, err
	}
	var tdm DataMining
	res, ok := o["reservation"]
	if !ok {
		return DataMining{}, errMissingField(join(path, "reservation"))
	}
	if tdm.Reservation, err = decodeEnum(join(path, "reservation"), res, reservations); err != nil {
		return DataMining{}, err
	}
	if tdm.Policy, err = optURL(o, path, "policy"); err != nil {
		return DataMining{}, err
	}
	return tdm, nil
}

// ============================================================
// Feed, publication, facet, group
// ============================================================

func (d *decoder) feed(path string, v any) (*Feed, error) {
	if err := d.enter(path); err != nil {
		return nil, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return nil, err
	}

	var feed Feed
	meta, ok := o["metadata"]
	if !ok {
		return nil, errMissingField(join(path, "metadata"))
	}
	if feed.Metadata, err = d.feedMetadata(join(path, "metadata"), meta); err != nil {
		return nil, err
	}
	if feed.Links, err = d.linkList(o, path, "links"); err != nil {
		return nil, err
	}
	if feed.Navigation, err = d.linkList(o, path, "navigation"); err != nil {
		return nil, err
	}
	if facets, ok := o["facets"]; ok {
		arr, ok := facets.([]any)
		if !ok {
			return nil, errShape(join(path, "facets"), "array", facets)
		}
		for i, e := range arr {
			facet, err := d.facet(fmt.Sprintf("%s[%d]", join(path, "facets"), i), e)
			if err != nil {
				return nil, err
			}
			feed.Facets = append(feed.Facets, facet)
		}
	}
	if feed.Publications, err = d.publicationList(o, path, "publications"); err != nil {
		return nil, err
	}
	if groups, ok := o["groups"]; ok {
		arr, ok := groups.([]any)
		if !ok {
			return nil, errShape(join(path, "groups"), "array", groups)
		}
		for i, e := range arr {
			group, err := d.feedGroup(fmt.Sprintf("%s[%d]", join(path, "groups"), i), e)
			if err != nil {
				return nil, err
			}
			feed.Groups = append(feed.Groups, group)
		}
	}
	return &feed, nil
}

func (d *decoder) facet(path string, v any) (Facet, error) {
	if err := d.enter(path); err != nil {
		return Facet{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return Facet{}, err
	}
	var facet Facet
	meta, ok := o["metadata"]
	if !ok {
		return Facet{}, errMissingField(join(path, "metadata"))
	}
	if facet.Metadata, err = d.feedMetadata(join(path, "metadata"), meta); err != nil {
		return Facet{}, err
	}
	links, ok := o["links"]
	if !ok {
		return Facet{}, errMissingField(join(path, "links"))
	}
	if facet.Links, err = d.links(join(path, "links"), links); err != nil {
		return Facet{}, err
	}
	return facet, nil
}

func (d *decoder) feedGroup(path string, v any) (FeedGroup, error) {
	if err := d.enter(path); err != nil {
		return FeedGroup{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return FeedGroup{}, err
	}
	var group FeedGroup
	meta, ok := o["metadata"]
	if !ok {
		return FeedGroup{}, errMissingField(join(path, "metadata"))
	}
	if group.Metadata, err = d.feedMetadata(join(path, "metadata"), meta); err != nil {
		return FeedGroup{}, err
	}
	if group.Links, err = d.linkList(o, path, "links"); err != nil {
		return FeedGroup{}, err
	}
	if group.Navigation, err = d.linkList(o, path, "navigation"); err != nil {
		return FeedGroup{}, err
	}
	if group.Publications, err = d.publicationList(o, path, "publications"); err != nil {
		return FeedGroup{}, err
	}
	return group, nil
}

func (d *decoder) publication(path string, v any) (Publication, error) {
	if err := d.enter(path); err != nil {
		return Publication{}, err
	}
	defer d.leave()

	o, err := d.object(path, v)
	if err != nil {
		return Publication{}, err
	}
	var pub Publication
	meta, ok := o["metadata"]
	if !ok {
		return Publication{}, errMissingField(join(path, "metadata"))
	}
	if pub.Metadata, err = d.publicationMetadata(join(path, "metadata"), meta); err != nil {
		return Publication{}, err
	}
	links, ok := o["links"]
	if !ok {
		return Publication{}, errMissingField(join(path, "links"))
	}
	if pub.Links, err = d.links(join(path, "links"), links); err != nil {
		return Publication{}, err
	}
	if pub.Images, err = d.linkList(o, path, "images"); err != nil {
		return Publication{}, err
	}
	return pub, nil
}

func (d *decoder) publicationList(o map[string]any, path, key string) ([]Publication, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errShape(join(path, key), "array", v)
	}
	out := make([]Publication, 0, len(arr))
	for i, e := range arr {
		pub, err := d.publication(fmt.Sprintf("%s[%d]", join(path, key), i), e)
		if err != nil {
			return nil, err
		}
		out = append(out, pub)
	}
	return out, nil
}
