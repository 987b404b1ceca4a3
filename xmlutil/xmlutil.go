// Package xmlutil provides small helpers for working with an XML document
// whose skeleton guarantees tag uniqueness.
//
// The DataCite codec operates on a fixed template in which every container
// element appears exactly once. These helpers encode that precondition: a
// missing or duplicated tag means the template itself is wrong, which is a
// programming error, so they panic instead of returning an error.
package xmlutil

import (
	"fmt"

	"github.com/beevik/etree"
)

// One returns the single element in doc with the given tag. It panics if the
// tag occurs zero or more than one time.
func One(doc *etree.Document, tag string) *etree.Element {
	elements := doc.FindElements("//" + tag)
	if len(elements) != 1 {
		panic(fmt.Sprintf("xmlutil: expected exactly one <%s> element, found %d", tag, len(elements)))
	}
	return elements[0]
}

// SetText sets the text content of the single element in doc with the given
// tag. Panics under the same conditions as One.
func SetText(doc *etree.Document, tag, value string) {
	One(doc, tag).SetText(value)
}

// Text returns the character data of el.
func Text(el *etree.Element) string {
	return el.Text()
}
