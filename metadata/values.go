package metadata

import (
	"github.com/c360studio/doikit/vocabulary/datacite"
)

// Creator is one entry of the creators field. An empty Affiliation means the
// affiliation element is omitted on the wire.
type Creator struct {
	Name        string
	Affiliation string
}

// Subject is one entry of the subjects field. Scheme and SchemeURI are
// omitted on the wire when empty.
type Subject struct {
	Subject   string
	Scheme    string
	SchemeURI string
}

// Contributor is one entry of the contributors field. The registry accepts
// free-form contributor types, so Type is not vocabulary-checked.
type Contributor struct {
	Type        string
	Name        string
	Affiliation string
}

// Date is one entry of the dates field.
type Date struct {
	Type datacite.DateType
	Date string
}

// AlternateIdentifier is one entry of the alternateIdentifiers field.
type AlternateIdentifier struct {
	Type       string
	Identifier string
}

// RelatedIdentifier is one entry of the relatedIdentifiers field.
type RelatedIdentifier struct {
	Identifier string
	Type       datacite.RelatedIdentifierType
	Relation   datacite.RelationType
}

// Rights is one entry of the rights field. An empty URI is omitted on the
// wire.
type Rights struct {
	Rights string
	URI    string
}

// Description is one entry of the descriptions field.
type Description struct {
	Type datacite.DescriptionType
	Text string
}

// sequence converts raw caller input into a generic element slice. A single
// non-slice value is treated as a one-element sequence; element validation
// happens in the caller.
func sequence(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{raw}
	}
}

// stringParts converts a pair/triple element into its string components.
// Elements may be []string or []any; trailing components may be nil or
// absent, which reads as the empty string.
func stringParts(field Field, v any, min, max int) ([]string, error) {
	var items []any
	switch s := v.(type) {
	case []string:
		items = make([]any, len(s))
		for i, e := range s {
			items[i] = e
		}
	case []any:
		items = s
	default:
		return nil, errf(field, "elements must be strings or %d- to %d-element sequences", min, max)
	}
	if len(items) < min || len(items) > max {
		return nil, errf(field, "elements must have %d to %d components, got %d", min, max, len(items))
	}
	out := make([]string, max)
	for i, item := range items {
		switch s := item.(type) {
		case string:
			out[i] = s
		case nil:
			out[i] = ""
		default:
			return nil, errf(field, "element components must be strings")
		}
	}
	return out, nil
}
