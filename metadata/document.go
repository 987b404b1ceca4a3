package metadata

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/c360studio/doikit/xmlutil"
)

// ToBeAssigned is the registry's sentinel for an identifier that has not
// been minted yet.
const ToBeAssigned = "(:tba)"

// baseTemplate is the fixed DataCite kernel-3 skeleton. Every field's
// container element appears exactly once, in schema order; codecs locate
// their container by tag and append children to it.
const baseTemplate = `<?xml version="1.0"?>
<resource xmlns="http://datacite.org/schema/kernel-3" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://datacite.org/schema/kernel-3 http://schema.datacite.org/meta/kernel-3/metadata.xsd">
  <identifier identifierType="DOI"/>
  <creators/>
  <titles>
    <title/>
  </titles>
  <publisher/>
  <publicationYear/>
  <subjects/>
  <contributors/>
  <dates/>
  <resourceType/>
  <alternateIdentifiers/>
  <relatedIdentifiers/>
  <sizes/>
  <formats/>
  <version/>
  <rightsList/>
  <descriptions/>
  <geoLocations/>
</resource>
`

func templateDocument() *etree.Document {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(baseTemplate); err != nil {
		panic("metadata: base template does not parse: " + err.Error())
	}
	return doc
}

// Render produces the serialized kernel-3 document for the given identifier
// and validated metadata. An empty identifier renders the to-be-assigned
// sentinel, otherwise the text is "doi:<identifier>". Fields absent from md
// keep their empty template placeholder.
func Render(identifier string, md Metadata) (string, error) {
	doc := templateDocument()
	if identifier == "" {
		xmlutil.SetText(doc, "identifier", ToBeAssigned)
	} else {
		xmlutil.SetText(doc, "identifier", "doi:"+identifier)
	}
	for k, v := range md {
		codec, ok := codecs[k]
		if !ok {
			return "", errf(k, "unknown metadata key")
		}
		if err := codec.Apply(doc, v); err != nil {
			return "", err
		}
	}
	return doc.WriteToString()
}

// Parse reads a kernel-3 document and extracts every field. Optional fields
// with zero occurrences come back as empty sequences; scalar fields come
// back as the element text, which for a record held by the registry always
// includes the mandatory scalars.
func Parse(xmlText string) (Metadata, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlText); err != nil {
		return nil, fmt.Errorf("parse datacite document: %w", err)
	}
	md := make(Metadata, len(codecs))
	for k, codec := range codecs {
		v, err := codec.Extract(doc)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", k, err)
		}
		md[k] = v
	}
	return md, nil
}
