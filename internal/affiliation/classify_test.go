// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Class
	}{
		{"pharma company", "Pfizer Pharmaceuticals, New York, NY, USA", ClassCompany},
		{"biotech upper case", "GENENTECH BIOTECH RESEARCH", ClassCompany},
		{"inc suffix", "Acme Widgets, Inc., Boston, MA", ClassCompany},
		{"gmbh", "Boehringer Ingelheim GmbH, Germany", ClassCompany},
		{"university", "Department of Oncology, University of Oxford, UK", ClassAcademic},
		{"hospital", "Massachusetts General Hospital, Boston", ClassAcademic},
		{"company wins over academic", "Novartis Institutes for BioMedical Research, Novartis Pharma AG", ClassCompany},
		{"neither", "Independent researcher, Paris", ClassNonAcademic},
		{"empty", "", ClassNonAcademic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassNonAcademic(t *testing.T) {
	assert.True(t, ClassCompany.NonAcademic())
	assert.True(t, ClassNonAcademic.NonAcademic())
	assert.False(t, ClassAcademic.NonAcademic())
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "company", ClassCompany.String())
	assert.Equal(t, "academic", ClassAcademic.String())
	assert.Equal(t, "non-academic", ClassNonAcademic.String())
}

func TestIsInstitutional(t *testing.T) {
	assert.True(t, IsInstitutional("Roche Diagnostics"))
	assert.True(t, IsInstitutional("Global Health Consulting Group"))
	assert.False(t, IsInstitutional("Stanford University"))
	assert.False(t, IsInstitutional("Independent researcher, Paris"))
}

func TestNonAcademicKeywordsIsSuperset(t *testing.T) {
	for _, kw := range PharmaKeywords {
		assert.Contains(t, NonAcademicKeywords, kw)
	}
	assert.Greater(t, len(NonAcademicKeywords), len(PharmaKeywords))
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"trailing email", "Jane Doe, Acme Pharma Inc, jane.doe@acme-pharma.com", "jane.doe@acme-pharma.com"},
		{"sentence period", "Electronic address: j.smith@biotech.org.", "j.smith@biotech.org"},
		{"first of two", "a@x.com; b@y.com", "a@x.com"},
		{"underscore", "contact: first_last@lab.co.uk", "first_last@lab.co.uk"},
		{"non-ascii local part", "Müller Pharma GmbH, jörg.müller@firma.de", "jörg.müller@firma.de"},
		{"non-ascii domain", "Kyōto Biotech, ken@kyōto-bio.jp.", "ken@kyōto-bio.jp"},
		{"none", "University of Tokyo, Japan", ""},
		{"bare at sign", "room @ building 4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}
