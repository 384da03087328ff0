// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies free-text author affiliations as company,
// academic, or other non-academic, and pulls contact emails out of them.
package affiliation

import (
	"regexp"
	"strings"
)

// Class is the outcome of classifying one affiliation string.
type Class int

const (
	// ClassNonAcademic means neither a company nor an academic keyword
	// matched. The author still counts as non-academic.
	ClassNonAcademic Class = iota
	// ClassCompany means a pharma/company keyword matched.
	ClassCompany
	// ClassAcademic means an academic keyword matched and no company keyword did.
	ClassAcademic
)

// String returns the lower-case name of the class.
func (c Class) String() string {
	switch c {
	case ClassCompany:
		return "company"
	case ClassAcademic:
		return "academic"
	default:
		return "non-academic"
	}
}

// NonAcademic reports whether an author with this affiliation counts as
// non-academic.
func (c Class) NonAcademic() bool {
	return c != ClassAcademic
}

// emailPattern matches a run of letters, digits, underscores, dots or hyphens
// on both sides of an @. Letters include non-ASCII ones.
var emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+`)

// Classify decides the class of an affiliation. Company keywords are checked
// first; academic keywords only matter when no company keyword matched.
func Classify(text string) Class {
	lower := strings.ToLower(text)
	if containsAny(lower, PharmaKeywords) {
		return ClassCompany
	}
	if containsAny(lower, AcademicKeywords) {
		return ClassAcademic
	}
	return ClassNonAcademic
}

// IsInstitutional reports whether the affiliation matches the broader
// non-academic vocabulary.
func IsInstitutional(text string) bool {
	return containsAny(strings.ToLower(text), NonAcademicKeywords)
}

// ExtractEmail returns the first email-like token in text, or "" if none.
// A trailing period picked up from sentence punctuation is dropped.
func ExtractEmail(text string) string {
	m := emailPattern.FindString(text)
	return strings.TrimRight(m, ".")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
