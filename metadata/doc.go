// Package metadata implements the DataCite kernel-3 metadata value model and
// its XML codec.
//
// Every metadata field (creators, title, dates, related identifiers, ...) has
// a codec that owns three things: normalization of flexible caller input into
// a canonical immutable value, serialization of that value into the field's
// subtree of the kernel-3 document, and the inverse deserialization. Codecs
// are resolved through a static registry keyed by the field's lowercase
// public name, so new fields can be added without touching the document-level
// control flow.
//
// The public field keys are lowercase tokens ("publicationyear",
// "geolocations") and are deliberately distinct from the PascalCase element
// names used on the wire ("publicationYear", "geoLocations").
//
// Caller input is forgiving: a bare string is accepted wherever a
// (value, optional-auxiliary) pair is expected, and sequence fields accept
// []string, []any, typed slices, or a single element. Normalization happens
// once, in Validate or a codec's Normalize; everything downstream operates on
// canonical values only.
package metadata
