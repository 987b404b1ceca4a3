package metadata

import (
	"github.com/beevik/etree"

	"github.com/c360studio/doikit/xmlutil"
)

// creatorsCodec serves creators: an ordered sequence of names with optional
// affiliations. Mandatory; the registry requires the element to exist even
// when it carries no entries.
type creatorsCodec struct{}

func (creatorsCodec) Field() Field    { return FieldCreators }
func (creatorsCodec) Mandatory() bool { return true }

func (creatorsCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Creator); ok {
		return append([]Creator(nil), v...), nil
	}
	if c, ok := raw.(Creator); ok {
		return []Creator{c}, nil
	}
	items := sequence(raw)
	out := make([]Creator, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, Creator{Name: v})
		case Creator:
			out = append(out, v)
		default:
			parts, err := stringParts(FieldCreators, item, 2, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, Creator{Name: parts[0], Affiliation: parts[1]})
		}
	}
	return out, nil
}

func (creatorsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Creator)
	if !ok {
		return errf(FieldCreators, "canonical value must be a creator slice")
	}
	container := xmlutil.One(doc, "creators")
	for _, c := range v {
		el := container.CreateElement("creator")
		el.CreateElement("creatorName").SetText(c.Name)
		if c.Affiliation != "" {
			el.CreateElement("affiliation").SetText(c.Affiliation)
		}
	}
	return nil
}

func (creatorsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "creators")
	out := []Creator{}
	for _, el := range container.SelectElements("creator") {
		name := el.SelectElement("creatorName")
		if name == nil {
			return nil, errf(FieldCreators, "creator element missing creatorName")
		}
		c := Creator{Name: name.Text()}
		if aff := el.SelectElement("affiliation"); aff != nil {
			c.Affiliation = aff.Text()
		}
		out = append(out, c)
	}
	return out, nil
}

// contributorsCodec serves contributors: an ordered sequence of
// (type, name, optional affiliation) entries. Bare strings are not accepted
// since a contributor has no meaning without its type.
type contributorsCodec struct{}

func (contributorsCodec) Field() Field    { return FieldContributors }
func (contributorsCodec) Mandatory() bool { return false }

func (contributorsCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Contributor); ok {
		return append([]Contributor(nil), v...), nil
	}
	if c, ok := raw.(Contributor); ok {
		return []Contributor{c}, nil
	}
	items := sequence(raw)
	out := make([]Contributor, 0, len(items))
	for _, item := range items {
		if c, ok := item.(Contributor); ok {
			out = append(out, c)
			continue
		}
		parts, err := stringParts(FieldContributors, item, 2, 3)
		if err != nil {
			return nil, err
		}
		out = append(out, Contributor{Type: parts[0], Name: parts[1], Affiliation: parts[2]})
	}
	return out, nil
}

func (contributorsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Contributor)
	if !ok {
		return errf(FieldContributors, "canonical value must be a contributor slice")
	}
	container := xmlutil.One(doc, "contributors")
	for _, c := range v {
		el := container.CreateElement("contributor")
		el.CreateAttr("contributorType", c.Type)
		el.CreateElement("contributorName").SetText(c.Name)
		if c.Affiliation != "" {
			el.CreateElement("affiliation").SetText(c.Affiliation)
		}
	}
	return nil
}

func (contributorsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "contributors")
	out := []Contributor{}
	for _, el := range container.SelectElements("contributor") {
		name := el.SelectElement("contributorName")
		if name == nil {
			return nil, errf(FieldContributors, "contributor element missing contributorName")
		}
		c := Contributor{
			Type: el.SelectAttrValue("contributorType", ""),
			Name: name.Text(),
		}
		if aff := el.SelectElement("affiliation"); aff != nil {
			c.Affiliation = aff.Text()
		}
		out = append(out, c)
	}
	return out, nil
}
