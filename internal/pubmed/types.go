// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"strings"
)

// ESearch JSON structures (retmode=json).
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
	Error  string         `json:"error,omitempty"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	RetMax string   `json:"retmax"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR,omitempty"`
}

// EFetch XML structures (retmode=xml). Only the elements the classifier
// reads are mapped; everything else in the record is ignored.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    markupText `xml:"MedlineCitation>PMID"`
	Article *article   `xml:"MedlineCitation>Article"`
}

type article struct {
	Title   markupText `xml:"ArticleTitle"`
	PubDate *pubDate   `xml:"Journal>JournalIssue>PubDate"`
	Authors []author   `xml:"AuthorList>Author"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type author struct {
	LastName       string            `xml:"LastName"`
	ForeName       string            `xml:"ForeName"`
	CollectiveName string            `xml:"CollectiveName"`
	Affiliations   []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation markupText `xml:"Affiliation"`
}

// markupText captures an element's inner XML so that inline markup such as
// <i> or <sup> inside titles and affiliations can be flattened to text.
type markupText struct {
	Inner string `xml:",innerxml"`
}

// String returns the character data of the element, including CDATA
// sections, with tags dropped, entities decoded, and surrounding whitespace
// trimmed.
func (m markupText) String() string {
	if m.Inner == "" {
		return ""
	}
	d := xml.NewDecoder(strings.NewReader(m.Inner))
	d.Strict = false
	d.Entity = xml.HTMLEntity

	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if text, ok := tok.(xml.CharData); ok {
			b.Write(text)
		}
	}
	return strings.TrimSpace(b.String())
}
