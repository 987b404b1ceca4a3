package metadata

import (
	"sort"

	"github.com/beevik/etree"
)

// Field is the public key of a metadata field. Keys are lowercase tokens,
// distinct from the element names used in the XML document.
type Field string

const (
	FieldCreators             Field = "creators"
	FieldTitle                Field = "title"
	FieldPublisher            Field = "publisher"
	FieldPublicationYear      Field = "publicationyear"
	FieldSubjects             Field = "subjects"
	FieldContributors         Field = "contributors"
	FieldDates                Field = "dates"
	FieldResourceType         Field = "resourcetype"
	FieldAlternateIdentifiers Field = "alternateidentifiers"
	FieldRelatedIdentifiers   Field = "relatedidentifiers"
	FieldSizes                Field = "sizes"
	FieldFormats              Field = "formats"
	FieldVersion              Field = "version"
	FieldRights               Field = "rights"
	FieldDescriptions         Field = "descriptions"
	FieldGeoLocations         Field = "geolocations"
)

// Metadata maps field keys to canonical values. After Validate it contains
// only recognized keys and canonical value types.
type Metadata map[Field]any

// Copy returns a deep copy of md. Canonical slice values are cloned so the
// copy can be mutated independently.
func (md Metadata) Copy() Metadata {
	out := make(Metadata, len(md))
	for k, v := range md {
		switch s := v.(type) {
		case []Creator:
			out[k] = append([]Creator(nil), s...)
		case []Subject:
			out[k] = append([]Subject(nil), s...)
		case []Contributor:
			out[k] = append([]Contributor(nil), s...)
		case []Date:
			out[k] = append([]Date(nil), s...)
		case []AlternateIdentifier:
			out[k] = append([]AlternateIdentifier(nil), s...)
		case []RelatedIdentifier:
			out[k] = append([]RelatedIdentifier(nil), s...)
		case []Rights:
			out[k] = append([]Rights(nil), s...)
		case []Description:
			out[k] = append([]Description(nil), s...)
		case []string:
			out[k] = append([]string(nil), s...)
		default:
			out[k] = v
		}
	}
	return out
}

// Codec translates one metadata field between caller input, its canonical
// value, and the field's subtree of the kernel-3 document.
type Codec interface {
	// Field returns the public key this codec serves.
	Field() Field

	// Mandatory reports whether the registry requires this field on every
	// record.
	Mandatory() bool

	// Normalize validates raw caller input and returns the canonical value.
	Normalize(raw any) (any, error)

	// Apply serializes a canonical value into the document. The document
	// must contain the field's container element exactly once; a malformed
	// template panics.
	Apply(doc *etree.Document, value any) error

	// Extract reads the canonical value back out of the document. A field
	// with zero occurrences extracts to an empty sequence.
	Extract(doc *etree.Document) (any, error)
}

// codecs is the static field registry. Dispatch is by lookup; iteration
// order is deliberately unspecified since the template fixes element
// positions.
var codecs = map[Field]Codec{
	FieldCreators:             creatorsCodec{},
	FieldTitle:                stringCodec{field: FieldTitle, tag: "title", mandatory: true},
	FieldPublisher:            stringCodec{field: FieldPublisher, tag: "publisher", mandatory: true},
	FieldPublicationYear:      yearCodec{},
	FieldSubjects:             subjectsCodec{},
	FieldContributors:         contributorsCodec{},
	FieldDates:                datesCodec{},
	FieldResourceType:         resourceTypeCodec{},
	FieldAlternateIdentifiers: alternateIdentifiersCodec{},
	FieldRelatedIdentifiers:   relatedIdentifiersCodec{},
	FieldSizes:                stringListCodec{field: FieldSizes, container: "sizes", tag: "size"},
	FieldFormats:              stringListCodec{field: FieldFormats, container: "formats", tag: "format"},
	FieldVersion:              stringCodec{field: FieldVersion, tag: "version"},
	FieldRights:               rightsCodec{},
	FieldDescriptions:         descriptionsCodec{},
	FieldGeoLocations:         geoLocationsCodec{},
}

// Lookup returns the codec registered for f.
func Lookup(f Field) (Codec, bool) {
	c, ok := codecs[f]
	return c, ok
}

// Fields returns all recognized field keys in sorted order.
func Fields() []Field {
	out := make([]Field, 0, len(codecs))
	for f := range codecs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
