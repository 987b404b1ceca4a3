package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/doikit/vocabulary/datacite"
)

// minimal returns a mapping carrying exactly the mandatory fields.
func minimal() map[string]any {
	return map[string]any{
		"creators":        []string{"Jane Doe"},
		"title":           "On Widgets",
		"publisher":       "ACME Press",
		"publicationyear": "2020",
	}
}

func TestValidateMinimal(t *testing.T) {
	md, err := Validate(minimal())
	require.NoError(t, err)

	assert.Equal(t, []Creator{{Name: "Jane Doe"}}, md[FieldCreators])
	assert.Equal(t, "On Widgets", md[FieldTitle])
	assert.Equal(t, "ACME Press", md[FieldPublisher])
	assert.Equal(t, "2020", md[FieldPublicationYear])
	assert.Len(t, md, 4)
}

func TestValidateRejectsNonMapping(t *testing.T) {
	_, err := Validate("not a mapping")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, verr.Field)
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	in := minimal()
	in["titel"] = "typo"

	_, err := Validate(in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Field("titel"), verr.Field)
	assert.Contains(t, verr.Error(), "unknown metadata key")
}

func TestValidateRejectsMissingMandatory(t *testing.T) {
	for _, missing := range []string{"creators", "title", "publisher", "publicationyear"} {
		t.Run(missing, func(t *testing.T) {
			in := minimal()
			delete(in, missing)

			_, err := Validate(in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, Field(missing), verr.Field)
			assert.Contains(t, verr.Error(), "missing mandatory")
		})
	}
}

func TestValidatePublicationYear(t *testing.T) {
	tests := []struct {
		year    string
		wantErr bool
	}{
		{"2020", false},
		{"0001", false},
		{"19999", true},
		{"abcd", true},
		{"202", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			in := minimal()
			in["publicationyear"] = tt.year
			_, err := Validate(in)
			if tt.wantErr {
				assert.ErrorIs(t, err, &ValidationError{})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResourceType(t *testing.T) {
	in := minimal()
	in["resourcetype"] = "Text/Dissertation"
	md, err := Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "Text/Dissertation", md[FieldResourceType])

	in["resourcetype"] = "Text" // no slash
	_, err = Validate(in)
	assert.ErrorIs(t, err, &ValidationError{})

	in["resourcetype"] = "Thesis/Dissertation" // bad general part
	_, err = Validate(in)
	assert.ErrorIs(t, err, &ValidationError{})
}

func TestValidateDates(t *testing.T) {
	in := minimal()
	in["dates"] = []any{[]string{"Created", "2020-01-02"}}
	md, err := Validate(in)
	require.NoError(t, err)
	assert.Equal(t, []Date{{Type: datacite.DateCreated, Date: "2020-01-02"}}, md[FieldDates])

	in["dates"] = []any{[]string{"notAType", "2020"}}
	_, err = Validate(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldDates, verr.Field)
}

func TestValidateShapeFlexibility(t *testing.T) {
	t.Run("creator pair with affiliation", func(t *testing.T) {
		in := minimal()
		in["creators"] = []any{[]string{"Jane Doe", "ACME University"}}
		md, err := Validate(in)
		require.NoError(t, err)
		assert.Equal(t, []Creator{{Name: "Jane Doe", Affiliation: "ACME University"}}, md[FieldCreators])
	})

	t.Run("bare rights string", func(t *testing.T) {
		in := minimal()
		in["rights"] = "CC-BY"
		md, err := Validate(in)
		require.NoError(t, err)
		assert.Equal(t, []Rights{{Rights: "CC-BY"}}, md[FieldRights])
	})

	t.Run("subject triple", func(t *testing.T) {
		in := minimal()
		in["subjects"] = []any{
			"plain term",
			[]string{"scoped term", "LCSH"},
			[]string{"uri term", "LCSH", "http://id.loc.gov"},
		}
		md, err := Validate(in)
		require.NoError(t, err)
		assert.Equal(t, []Subject{
			{Subject: "plain term"},
			{Subject: "scoped term", Scheme: "LCSH"},
			{Subject: "uri term", Scheme: "LCSH", SchemeURI: "http://id.loc.gov"},
		}, md[FieldSubjects])
	})

	t.Run("typed slices pass through", func(t *testing.T) {
		in := minimal()
		in["relatedidentifiers"] = []RelatedIdentifier{
			{Identifier: "10.1234/related", Type: datacite.RelatedDOI, Relation: datacite.RelationIsPartOf},
		}
		md, err := Validate(in)
		require.NoError(t, err)
		assert.Len(t, md[FieldRelatedIdentifiers], 1)
	})

	t.Run("non-string list element rejected", func(t *testing.T) {
		in := minimal()
		in["sizes"] = []any{"10 MB", 42}
		_, err := Validate(in)
		assert.ErrorIs(t, err, &ValidationError{})
	})

	t.Run("contributor requires type and name", func(t *testing.T) {
		in := minimal()
		in["contributors"] = []any{"just a name"}
		_, err := Validate(in)
		assert.ErrorIs(t, err, &ValidationError{})
	})
}

func TestValidateRelatedIdentifierVocabularies(t *testing.T) {
	in := minimal()
	in["relatedidentifiers"] = []any{[]string{"10.1234/x", "DOI", "NotARelation"}}
	_, err := Validate(in)
	assert.ErrorIs(t, err, &ValidationError{})

	in["relatedidentifiers"] = []any{[]string{"10.1234/x", "doi", "IsPartOf"}}
	_, err = Validate(in)
	assert.ErrorIs(t, err, &ValidationError{})
}

func TestValidationErrorMatching(t *testing.T) {
	_, err := Validate(nil)
	assert.True(t, errors.Is(err, &ValidationError{}))
}
