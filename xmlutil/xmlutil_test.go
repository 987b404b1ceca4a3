package xmlutil

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	return doc
}

func TestOne(t *testing.T) {
	doc := parse(t, `<resource><identifier/><creators/></resource>`)

	el := One(doc, "identifier")
	assert.Equal(t, "identifier", el.Tag)
}

func TestOnePanicsOnMissingTag(t *testing.T) {
	doc := parse(t, `<resource><identifier/></resource>`)

	assert.Panics(t, func() {
		One(doc, "titles")
	})
}

func TestOnePanicsOnDuplicateTag(t *testing.T) {
	doc := parse(t, `<resource><date/><date/></resource>`)

	assert.Panics(t, func() {
		One(doc, "date")
	})
}

func TestSetText(t *testing.T) {
	doc := parse(t, `<resource><publisher/></resource>`)

	SetText(doc, "publisher", "ACME Press")

	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, out, "<publisher>ACME Press</publisher>")
}

func TestText(t *testing.T) {
	doc := parse(t, `<resource><title>On Widgets</title></resource>`)

	assert.Equal(t, "On Widgets", Text(One(doc, "title")))
}
