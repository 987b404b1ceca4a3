// Package datacite provides the controlled vocabularies of the DataCite
// metadata schema, kernel-3.
//
// Each vocabulary is a typed string with a fixed set of legal values and a
// Valid method. The sets are closed: the registry rejects records whose
// attribute values fall outside them, so metadata codecs check membership at
// construction time rather than letting a bad value reach the wire.
//
// Vocabularies covered:
//   - DateType: the dateType attribute of date elements
//   - ResourceTypeGeneral: the resourceTypeGeneral attribute of resourceType
//   - RelatedIdentifierType: the relatedIdentifierType attribute of
//     relatedIdentifier elements
//   - RelationType: the relationType attribute of relatedIdentifier elements
//   - DescriptionType: the descriptionType attribute of description elements
//
// Contributor types are deliberately not enumerated here; the registry
// accepts free-form contributorType values and this package mirrors that.
package datacite
