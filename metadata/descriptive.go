package metadata

import (
	"github.com/beevik/etree"

	"github.com/c360studio/doikit/vocabulary/datacite"
	"github.com/c360studio/doikit/xmlutil"
)

// subjectsCodec serves subjects: an ordered sequence of subject terms with
// optional scheme and scheme URI.
type subjectsCodec struct{}

func (subjectsCodec) Field() Field    { return FieldSubjects }
func (subjectsCodec) Mandatory() bool { return false }

func (subjectsCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Subject); ok {
		return append([]Subject(nil), v...), nil
	}
	if s, ok := raw.(Subject); ok {
		return []Subject{s}, nil
	}
	items := sequence(raw)
	out := make([]Subject, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, Subject{Subject: v})
		case Subject:
			out = append(out, v)
		default:
			parts, err := stringParts(FieldSubjects, item, 2, 3)
			if err != nil {
				return nil, err
			}
			out = append(out, Subject{Subject: parts[0], Scheme: parts[1], SchemeURI: parts[2]})
		}
	}
	return out, nil
}

func (subjectsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Subject)
	if !ok {
		return errf(FieldSubjects, "canonical value must be a subject slice")
	}
	container := xmlutil.One(doc, "subjects")
	for _, s := range v {
		el := container.CreateElement("subject")
		if s.Scheme != "" {
			el.CreateAttr("subjectScheme", s.Scheme)
		}
		if s.SchemeURI != "" {
			el.CreateAttr("schemeURI", s.SchemeURI)
		}
		el.SetText(s.Subject)
	}
	return nil
}

func (subjectsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "subjects")
	out := []Subject{}
	for _, el := range container.SelectElements("subject") {
		out = append(out, Subject{
			Subject:   el.Text(),
			Scheme:    el.SelectAttrValue("subjectScheme", ""),
			SchemeURI: el.SelectAttrValue("schemeURI", ""),
		})
	}
	return out, nil
}

// datesCodec serves dates: an ordered sequence of (type, date) entries where
// the type comes from the controlled date-type set.
type datesCodec struct{}

func (datesCodec) Field() Field    { return FieldDates }
func (datesCodec) Mandatory() bool { return false }

func (datesCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Date); ok {
		for _, d := range v {
			if !d.Type.Valid() {
				return nil, errf(FieldDates, "bad value %q for dateType", string(d.Type))
			}
		}
		return append([]Date(nil), v...), nil
	}
	if d, ok := raw.(Date); ok {
		return datesCodec{}.Normalize([]Date{d})
	}
	items := sequence(raw)
	out := make([]Date, 0, len(items))
	for _, item := range items {
		var d Date
		if v, ok := item.(Date); ok {
			d = v
		} else {
			parts, err := stringParts(FieldDates, item, 2, 2)
			if err != nil {
				return nil, err
			}
			d = Date{Type: datacite.DateType(parts[0]), Date: parts[1]}
		}
		if !d.Type.Valid() {
			return nil, errf(FieldDates, "bad value %q for dateType", string(d.Type))
		}
		out = append(out, d)
	}
	return out, nil
}

func (datesCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Date)
	if !ok {
		return errf(FieldDates, "canonical value must be a date slice")
	}
	container := xmlutil.One(doc, "dates")
	for _, d := range v {
		el := container.CreateElement("date")
		el.CreateAttr("dateType", string(d.Type))
		el.SetText(d.Date)
	}
	return nil
}

func (datesCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "dates")
	out := []Date{}
	for _, el := range container.SelectElements("date") {
		out = append(out, Date{
			Type: datacite.DateType(el.SelectAttrValue("dateType", "")),
			Date: el.Text(),
		})
	}
	return out, nil
}

// rightsCodec serves rights: an ordered sequence of rights statements with
// optional URIs.
type rightsCodec struct{}

func (rightsCodec) Field() Field    { return FieldRights }
func (rightsCodec) Mandatory() bool { return false }

func (rightsCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Rights); ok {
		return append([]Rights(nil), v...), nil
	}
	if r, ok := raw.(Rights); ok {
		return []Rights{r}, nil
	}
	items := sequence(raw)
	out := make([]Rights, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, Rights{Rights: v})
		case Rights:
			out = append(out, v)
		default:
			parts, err := stringParts(FieldRights, item, 2, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, Rights{Rights: parts[0], URI: parts[1]})
		}
	}
	return out, nil
}

func (rightsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Rights)
	if !ok {
		return errf(FieldRights, "canonical value must be a rights slice")
	}
	container := xmlutil.One(doc, "rightsList")
	for _, r := range v {
		el := container.CreateElement("rights")
		if r.URI != "" {
			el.CreateAttr("rightsURI", r.URI)
		}
		el.SetText(r.Rights)
	}
	return nil
}

func (rightsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "rightsList")
	out := []Rights{}
	for _, el := range container.SelectElements("rights") {
		out = append(out, Rights{
			Rights: el.Text(),
			URI:    el.SelectAttrValue("rightsURI", ""),
		})
	}
	return out, nil
}

// descriptionsCodec serves descriptions: an ordered sequence of (type, text)
// entries where the type comes from the controlled description-type set.
type descriptionsCodec struct{}

func (descriptionsCodec) Field() Field    { return FieldDescriptions }
func (descriptionsCodec) Mandatory() bool { return false }

func (descriptionsCodec) Normalize(raw any) (any, error) {
	if v, ok := raw.([]Description); ok {
		for _, d := range v {
			if !d.Type.Valid() {
				return nil, errf(FieldDescriptions, "bad value %q for descriptionType", string(d.Type))
			}
		}
		return append([]Description(nil), v...), nil
	}
	if d, ok := raw.(Description); ok {
		return descriptionsCodec{}.Normalize([]Description{d})
	}
	items := sequence(raw)
	out := make([]Description, 0, len(items))
	for _, item := range items {
		var d Description
		if v, ok := item.(Description); ok {
			d = v
		} else {
			parts, err := stringParts(FieldDescriptions, item, 2, 2)
			if err != nil {
				return nil, err
			}
			d = Description{Type: datacite.DescriptionType(parts[0]), Text: parts[1]}
		}
		if !d.Type.Valid() {
			return nil, errf(FieldDescriptions, "bad value %q for descriptionType", string(d.Type))
		}
		out = append(out, d)
	}
	return out, nil
}

func (descriptionsCodec) Apply(doc *etree.Document, value any) error {
	v, ok := value.([]Description)
	if !ok {
		return errf(FieldDescriptions, "canonical value must be a description slice")
	}
	container := xmlutil.One(doc, "descriptions")
	for _, d := range v {
		el := container.CreateElement("description")
		el.CreateAttr("descriptionType", string(d.Type))
		el.SetText(d.Text)
	}
	return nil
}

func (descriptionsCodec) Extract(doc *etree.Document) (any, error) {
	container := xmlutil.One(doc, "descriptions")
	out := []Description{}
	for _, el := range container.SelectElements("description") {
		out = append(out, Description{
			Type: datacite.DescriptionType(el.SelectAttrValue("descriptionType", "")),
			Text: el.Text(),
		})
	}
	return out, nil
}
