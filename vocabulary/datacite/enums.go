package datacite

// DateType classifies a date element.
type DateType string

const (
	// DateAccepted is the date the resource was accepted for publication.
	DateAccepted DateType = "Accepted"

	// DateAvailable is the date the resource was made available.
	DateAvailable DateType = "Available"

	// DateCopyrighted is the copyright date.
	DateCopyrighted DateType = "Copyrighted"

	// DateCollected is the date or range in which the data was collected.
	DateCollected DateType = "Collected"

	// DateCreated is the date the resource itself was created.
	DateCreated DateType = "Created"

	// DateIssued is the date of formal issuance.
	DateIssued DateType = "Issued"

	// DateSubmitted is the date the resource was submitted.
	DateSubmitted DateType = "Submitted"

	// DateUpdated is the date of the last update to the resource.
	DateUpdated DateType = "Updated"

	// DateValid is the date or range during which the resource is accurate.
	DateValid DateType = "Valid"
)

var dateTypes = map[DateType]struct{}{
	DateAccepted:    {},
	DateAvailable:   {},
	DateCopyrighted: {},
	DateCollected:   {},
	DateCreated:     {},
	DateIssued:      {},
	DateSubmitted:   {},
	DateUpdated:     {},
	DateValid:       {},
}

// Valid reports whether t is a legal kernel-3 date type.
func (t DateType) Valid() bool {
	_, ok := dateTypes[t]
	return ok
}

// ResourceTypeGeneral is the general category of a resource.
type ResourceTypeGeneral string

const (
	ResourceAudiovisual         ResourceTypeGeneral = "Audiovisual"
	ResourceCollection          ResourceTypeGeneral = "Collection"
	ResourceDataset             ResourceTypeGeneral = "Dataset"
	ResourceEvent               ResourceTypeGeneral = "Event"
	ResourceImage               ResourceTypeGeneral = "Image"
	ResourceInteractiveResource ResourceTypeGeneral = "InteractiveResource"
	ResourceModel               ResourceTypeGeneral = "Model"
	ResourcePhysicalObject      ResourceTypeGeneral = "PhysicalObject"
	ResourceService             ResourceTypeGeneral = "Service"
	ResourceSoftware            ResourceTypeGeneral = "Software"
	ResourceSound               ResourceTypeGeneral = "Sound"
	ResourceText                ResourceTypeGeneral = "Text"
	ResourceWorkflow            ResourceTypeGeneral = "Workflow"
	ResourceOther               ResourceTypeGeneral = "Other"
)

var resourceTypesGeneral = map[ResourceTypeGeneral]struct{}{
	ResourceAudiovisual:         {},
	ResourceCollection:          {},
	ResourceDataset:             {},
	ResourceEvent:               {},
	ResourceImage:               {},
	ResourceInteractiveResource: {},
	ResourceModel:               {},
	ResourcePhysicalObject:      {},
	ResourceService:             {},
	ResourceSoftware:            {},
	ResourceSound:               {},
	ResourceText:                {},
	ResourceWorkflow:            {},
	ResourceOther:               {},
}

// Valid reports whether t is a legal kernel-3 resourceTypeGeneral value.
func (t ResourceTypeGeneral) Valid() bool {
	_, ok := resourceTypesGeneral[t]
	return ok
}

// RelatedIdentifierType identifies the scheme of a related identifier.
type RelatedIdentifierType string

const (
	RelatedARK     RelatedIdentifierType = "ARK"
	RelatedArXiv   RelatedIdentifierType = "arXiv"
	RelatedBibcode RelatedIdentifierType = "bibcode"
	RelatedDOI     RelatedIdentifierType = "DOI"
	RelatedEAN13   RelatedIdentifierType = "EAN13"
	RelatedEISSN   RelatedIdentifierType = "EISSN"
	RelatedHandle  RelatedIdentifierType = "Handle"
	RelatedISBN    RelatedIdentifierType = "ISBN"
	RelatedISSN    RelatedIdentifierType = "ISSN"
	RelatedISTC    RelatedIdentifierType = "ISTC"
	RelatedLISSN   RelatedIdentifierType = "LISSN"
	RelatedLSID    RelatedIdentifierType = "LSID"
	RelatedPMID    RelatedIdentifierType = "PMID"
	RelatedPURL    RelatedIdentifierType = "PURL"
	RelatedUPC     RelatedIdentifierType = "UPC"
	RelatedURL     RelatedIdentifierType = "URL"
	RelatedURN     RelatedIdentifierType = "URN"
)

var relatedIdentifierTypes = map[RelatedIdentifierType]struct{}{
	RelatedARK:     {},
	RelatedArXiv:   {},
	RelatedBibcode: {},
	RelatedDOI:     {},
	RelatedEAN13:   {},
	RelatedEISSN:   {},
	RelatedHandle:  {},
	RelatedISBN:    {},
	RelatedISSN:    {},
	RelatedISTC:    {},
	RelatedLISSN:   {},
	RelatedLSID:    {},
	RelatedPMID:    {},
	RelatedPURL:    {},
	RelatedUPC:     {},
	RelatedURL:     {},
	RelatedURN:     {},
}

// Valid reports whether t is a legal kernel-3 relatedIdentifierType value.
func (t RelatedIdentifierType) Valid() bool {
	_, ok := relatedIdentifierTypes[t]
	return ok
}

// RelationType describes the relationship of a resource to a related
// identifier.
type RelationType string

const (
	RelationIsCitedBy         RelationType = "IsCitedBy"
	RelationCites             RelationType = "Cites"
	RelationIsSupplementTo    RelationType = "IsSupplementTo"
	RelationIsSupplementedBy  RelationType = "IsSupplementedBy"
	RelationIsContinuedBy     RelationType = "IsContinuedBy"
	RelationContinues         RelationType = "Continues"
	RelationIsNewVersionOf    RelationType = "IsNewVersionOf"
	RelationIsPreviousVersion RelationType = "IsPreviousVersionOf"
	RelationIsPartOf          RelationType = "IsPartOf"
	RelationHasPart           RelationType = "HasPart"
	RelationIsReferencedBy    RelationType = "IsReferencedBy"
	RelationReferences        RelationType = "References"
	RelationIsDocumentedBy    RelationType = "IsDocumentedBy"
	RelationDocuments         RelationType = "Documents"
	RelationIsCompiledBy      RelationType = "IsCompiledBy"
	RelationCompiles          RelationType = "Compiles"
	RelationIsVariantFormOf   RelationType = "IsVariantFormOf"
	RelationIsOriginalFormOf  RelationType = "IsOriginalFormOf"
	RelationIsIdenticalTo     RelationType = "IsIdenticalTo"
	RelationHasMetadata       RelationType = "HasMetadata"
	RelationIsMetadataFor     RelationType = "IsMetadataFor"
)

var relationTypes = map[RelationType]struct{}{
	RelationIsCitedBy:         {},
	RelationCites:             {},
	RelationIsSupplementTo:    {},
	RelationIsSupplementedBy:  {},
	RelationIsContinuedBy:     {},
	RelationContinues:         {},
	RelationIsNewVersionOf:    {},
	RelationIsPreviousVersion: {},
	RelationIsPartOf:          {},
	RelationHasPart:           {},
	RelationIsReferencedBy:    {},
	RelationReferences:        {},
	RelationIsDocumentedBy:    {},
	RelationDocuments:         {},
	RelationIsCompiledBy:      {},
	RelationCompiles:          {},
	RelationIsVariantFormOf:   {},
	RelationIsOriginalFormOf:  {},
	RelationIsIdenticalTo:     {},
	RelationHasMetadata:       {},
	RelationIsMetadataFor:     {},
}

// Valid reports whether t is a legal kernel-3 relationType value.
func (t RelationType) Valid() bool {
	_, ok := relationTypes[t]
	return ok
}

// DescriptionType classifies a description element.
type DescriptionType string

const (
	DescriptionAbstract          DescriptionType = "Abstract"
	DescriptionMethods           DescriptionType = "Methods"
	DescriptionSeriesInformation DescriptionType = "SeriesInformation"
	DescriptionTableOfContents   DescriptionType = "TableOfContents"
	DescriptionOther             DescriptionType = "Other"
)

var descriptionTypes = map[DescriptionType]struct{}{
	DescriptionAbstract:          {},
	DescriptionMethods:           {},
	DescriptionSeriesInformation: {},
	DescriptionTableOfContents:   {},
	DescriptionOther:             {},
}

// Valid reports whether t is a legal kernel-3 descriptionType value.
func (t DescriptionType) Valid() bool {
	_, ok := descriptionTypes[t]
	return ok
}
