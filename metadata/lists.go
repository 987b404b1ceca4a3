package metadata

import (
	"github.com/beevik/etree"

	"github.com/c360studio/doikit/xmlutil"
)

// stringListCodec serves fields whose canonical value is an ordered sequence
// of strings stored as one child element per entry (sizes, formats).
type stringListCodec struct {
	field     Field
	container string
	tag       string
}

func (c stringListCodec) Field() Field    { return c.field }
func (c stringListCodec) Mandatory() bool { return false }

func (c stringListCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]string); ok {
		return append([]string(nil), v...), nil
	}
	items := sequence(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errf(c.field, "elements must be strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func (c stringListCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]string)
	if !ok {
		return errf(c.field, "canonical value must be a string slice")
	}
	container := xmlutil.One(doc, c.container)
	for _, s := range v {
		container.CreateElement(c.tag).SetText(s)
	}
	return nil
}

func (c stringListCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, c.container)
	out := []string{}
	for _, el := range container.SelectElements(c.tag) {
		out = append(out, el.Text())
	}
	return out, nil
}

// geoLocationsCodec serves geolocations: an ordered sequence of place-name
// strings, each wrapped as geoLocation > geoLocationPlace.
type geoLocationsCodec struct{}

func (geoLocationsCodec) Field() Field    { return FieldGeoLocations }
func (geoLocationsCodec) Mandatory() bool { return false }

func (geoLocationsCodec) Normalize(raw any) (any, error) {
	return stringListCodec{field: FieldGeoLocations}.Normalize(raw)
}

func (geoLocationsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]string)
	if !ok {
		return errf(FieldGeoLocations, "canonical value must be a string slice")
	}
	container := xmlutil.One(doc, "geoLocations")
	for _, place := range v {
		container.CreateElement("geoLocation").CreateElement("geoLocationPlace").SetText(place)
	}
	return nil
}

func (geoLocationsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "geoLocations")
	out := []string{}
	for _, el := range container.FindElements(".//geoLocationPlace") {
		out = append(out, el.Text())
	}
	return out, nil
}
