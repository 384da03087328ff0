// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for get-papers-list.
// Paper is the single output record; FetchConfig and HTTPConfig carry the
// resolved settings for the PubMed client.
package types

import "strings"

// ListSeparator joins multi-valued fields in a flat output row.
const ListSeparator = "; "

// Paper is a PubMed article with at least one company-affiliated author.
// A Paper is only built when CompanyAffiliations is non-empty.
type Paper struct {
	// PubmedID is the PMID of the article.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title; it may be empty.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the raw Year-Month-Day text from the journal issue
	// with missing parts omitted (e.g. "2020-Jan-15", "2020-15", "2021").
	// It is not validated as a calendar date.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists deduplicated, sorted display names of authors
	// with a company affiliation or no academic affiliation.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists deduplicated, sorted affiliation strings that
	// matched a company keyword, in their original case.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in author affiliation text,
	// scanned in author order. Empty when none was found.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}

// RowHeader names the six columns returned by Row.
var RowHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// Row flattens the paper into six ordered strings.
func (p Paper) Row() []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		strings.Join(p.NonAcademicAuthors, ListSeparator),
		strings.Join(p.CompanyAffiliations, ListSeparator),
		p.CorrespondingEmail,
	}
}
