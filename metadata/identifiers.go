package metadata

import (
	"github.com/beevik/etree"

	"github.com/c360studio/doikit/vocabulary/datacite"
	"github.com/c360studio/doikit/xmlutil"
)

// alternateIdentifiersCodec serves alternateidentifiers: an ordered sequence
// of (type, identifier) entries. Types are free-form.
type alternateIdentifiersCodec struct{}

func (alternateIdentifiersCodec) Field() Field    { return FieldAlternateIdentifiers }
func (alternateIdentifiersCodec) Mandatory() bool { return false }

func (alternateIdentifiersCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]AlternateIdentifier); ok {
		return append([]AlternateIdentifier(nil), v...), nil
	}
	if a, ok := raw.(AlternateIdentifier); ok {
		return []AlternateIdentifier{a}, nil
	}
	items := sequence(raw)
	out := make([]AlternateIdentifier, 0, len(items))
	for _, item := range items {
		if a, ok := item.(AlternateIdentifier); ok {
			out = append(out, a)
			continue
		}
		parts, err := stringParts(FieldAlternateIdentifiers, item, 2, 2)
		if err != nil {
			return nil, err
		}
		out = append(out, AlternateIdentifier{Type: parts[0], Identifier: parts[1]})
	}
	return out, nil
}

func (alternateIdentifiersCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]AlternateIdentifier)
	if !ok {
		return errf(FieldAlternateIdentifiers, "canonical value must be an alternate identifier slice")
	}
	container := xmlutil.One(doc, "alternateIdentifiers")
	for _, a := range v {
		el := container.CreateElement("alternateIdentifier")
		el.CreateAttr("alternateIdentifierType", a.Type)
		el.SetText(a.Identifier)
	}
	return nil
}

func (alternateIdentifiersCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "alternateIdentifiers")
	out := []AlternateIdentifier{}
	for _, el := range container.SelectElements("alternateIdentifier") {
		out = append(out, AlternateIdentifier{
			Type:       el.SelectAttrValue("alternateIdentifierType", ""),
			Identifier: el.Text(),
		})
	}
	return out, nil
}

// relatedIdentifiersCodec serves relatedidentifiers: an ordered sequence of
// (identifier, identifierType, relationType) entries where both types come
// from their controlled sets.
type relatedIdentifiersCodec struct{}

func (relatedIdentifiersCodec) Field() Field    { return FieldRelatedIdentifiers }
func (relatedIdentifiersCodec) Mandatory() bool { return false }

func (c relatedIdentifiersCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]RelatedIdentifier); ok {
		out := append([]RelatedIdentifier(nil), v...)
		for _, r := range out {
			if err := c.check(r); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	if r, ok := raw.(RelatedIdentifier); ok {
		return c.Normalize([]RelatedIdentifier{r})
	}
	items := sequence(raw)
	out := make([]RelatedIdentifier, 0, len(items))
	for _, item := range items {
		var r RelatedIdentifier
		if v, ok := item.(RelatedIdentifier); ok {
			r = v
		} else {
			parts, err := stringParts(FieldRelatedIdentifiers, item, 3, 3)
			if err != nil {
				return nil, err
			}
			r = RelatedIdentifier{
				Identifier: parts[0],
				Type:       datacite.RelatedIdentifierType(parts[1]),
				Relation:   datacite.RelationType(parts[2]),
			}
		}
		if err := c.check(r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (relatedIdentifiersCodec) check(r RelatedIdentifier) error {
	if !r.Type.Valid() {
		return errf(FieldRelatedIdentifiers, "bad value %q for relatedIdentifierType", string(r.Type))
	}
	if !r.Relation.Valid() {
		return errf(FieldRelatedIdentifiers, "bad value %q for relationType", string(r.Relation))
	}
	return nil
}

func (relatedIdentifiersCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]RelatedIdentifier)
	if !ok {
		return errf(FieldRelatedIdentifiers, "canonical value must be a related identifier slice")
	}
	container := xmlutil.One(doc, "relatedIdentifiers")
	for _, r := range v {
		el := container.CreateElement("relatedIdentifier")
		el.CreateAttr("relatedIdentifierType", string(r.Type))
		el.CreateAttr("relationType", string(r.Relation))
		el.SetText(r.Identifier)
	}
	return nil
}

func (relatedIdentifiersCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "relatedIdentifiers")
	out := []RelatedIdentifier{}
	for _, el := range container.SelectElements("relatedIdentifier") {
		out = append(out, RelatedIdentifier{
			Identifier: el.Text(),
			Type:       datacite.RelatedIdentifierType(el.SelectAttrValue("relatedIdentifierType", "")),
			Relation:   datacite.RelationType(el.SelectAttrValue("relationType", "")),
		})
	}
	return out, nil
}
