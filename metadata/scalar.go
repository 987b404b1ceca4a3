package metadata

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/c360studio/doikit/vocabulary/datacite"
	"github.com/c360studio/doikit/xmlutil"
)

// stringCodec serves fields whose canonical value is a bare string stored as
// the text of a single uniquely-tagged element (title, publisher, version).
type stringCodec struct {
	field     Field
	tag       string
	mandatory bool
}

func (c stringCodec) Field() Field    { return c.field }
func (c stringCodec) Mandatory() bool { return c.mandatory }

func (c stringCodec) Normalize(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, errf(c.field, "value must be a string")
	}
	return s, nil
}

func (c stringCodec) Apply(doc *etree.Document, value any) error {
	s, ok := value.(string)
	if !ok {
		return errf(c.field, "canonical value must be a string")
	}
	xmlutil.SetText(doc, c.tag, s)
	return nil
}

func (c stringCodec) Extract(doc *etree.Document) (any, error) {
	return xmlutil.Text(xmlutil.One(doc, c.tag)), nil
}

var yearPattern = regexp.MustCompile(`^[0-9]{4}$`)

// yearCodec serves publicationyear. The four-digit constraint is enforced at
// construction, not at serialization.
type yearCodec struct{}

func (yearCodec) Field() Field    { return FieldPublicationYear }
func (yearCodec) Mandatory() bool { return true }

func (yearCodec) Normalize(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, errf(FieldPublicationYear, "value must be a string")
	}
	if !yearPattern.MatchString(s) {
		return nil, errf(FieldPublicationYear, "value must be a four-digit number")
	}
	return s, nil
}

func (yearCodec) Apply(doc *etree.Document, value any) error {
	s, ok := value.(string)
	if !ok {
		return errf(FieldPublicationYear, "canonical value must be a string")
	}
	xmlutil.SetText(doc, "publicationYear", s)
	return nil
}

func (yearCodec) Extract(doc *etree.Document) (any, error) {
	return xmlutil.Text(xmlutil.One(doc, "publicationYear")), nil
}

// resourceTypeCodec serves resourcetype. The canonical value is the single
// string "<general>/<specific>", split on the first slash; the left part is
// the resourceTypeGeneral attribute and the right part the element text.
type resourceTypeCodec struct{}

func (resourceTypeCodec) Field() Field    { return FieldResourceType }
func (resourceTypeCodec) Mandatory() bool { return false }

func (resourceTypeCodec) Normalize(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, errf(FieldResourceType, "value must be a string")
	}
	general, _, found := strings.Cut(s, "/")
	if !found {
		return nil, errf(FieldResourceType, "value must have the form resourceTypeGeneral/resourceType")
	}
	if !datacite.ResourceTypeGeneral(general).Valid() {
		return nil, errf(FieldResourceType, "bad value %q for resourceTypeGeneral", general)
	}
	return s, nil
}

func (resourceTypeCodec) Apply(doc *etree.Document, value any) error {
	s, ok := value.(string)
	if !ok {
		return errf(FieldResourceType, "canonical value must be a string")
	}
	general, specific, _ := strings.Cut(s, "/")
	el := xmlutil.One(doc, "resourceType")
	el.CreateAttr("resourceTypeGeneral", general)
	el.SetText(specific)
	return nil
}

func (resourceTypeCodec) Extract(doc *etree.Document) (any, error) {
	el := xmlutil.One(doc, "resourceType")
	general := el.SelectAttrValue("resourceTypeGeneral", "")
	return general + "/" + xmlutil.Text(el), nil
}
