package datacite

import "testing"

func TestDateTypeValid(t *testing.T) {
	tests := []struct {
		value DateType
		want  bool
	}{
		{DateAccepted, true},
		{DateCreated, true},
		{DateValid, true},
		{"notAType", false},
		{"created", false}, // case-sensitive
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.Valid(); got != tt.want {
				t.Errorf("DateType(%q).Valid() = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestResourceTypeGeneralValid(t *testing.T) {
	tests := []struct {
		value ResourceTypeGeneral
		want  bool
	}{
		{ResourceDataset, true},
		{ResourceText, true},
		{ResourceOther, true},
		{"dataset", false},
		{"Thesis", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.Valid(); got != tt.want {
				t.Errorf("ResourceTypeGeneral(%q).Valid() = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRelatedIdentifierTypeValid(t *testing.T) {
	if !RelatedDOI.Valid() {
		t.Error("DOI should be a valid related identifier type")
	}
	if !RelatedArXiv.Valid() {
		t.Error("arXiv should be a valid related identifier type")
	}
	if RelatedIdentifierType("doi").Valid() {
		t.Error("lowercase doi should not be valid")
	}
}

func TestRelationTypeValid(t *testing.T) {
	if !RelationIsPartOf.Valid() {
		t.Error("IsPartOf should be a valid relation type")
	}
	if RelationType("PartOf").Valid() {
		t.Error("PartOf should not be a valid relation type")
	}
}

func TestDescriptionTypeValid(t *testing.T) {
	if !DescriptionAbstract.Valid() {
		t.Error("Abstract should be a valid description type")
	}
	if DescriptionType("Summary").Valid() {
		t.Error("Summary should not be a valid description type")
	}
}
