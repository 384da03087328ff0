// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"sort"
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/affiliation"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// DiscardReason explains why a fetched record produced no Paper. Callers see
// both reasons the same way: the record is simply absent from the results.
type DiscardReason string

const (
	// DiscardNone means the record was kept.
	DiscardNone DiscardReason = ""
	// DiscardNoArticle means the record had no MedlineCitation/Article element.
	DiscardNoArticle DiscardReason = "no article element"
	// DiscardNoCompany means no author affiliation matched a company keyword.
	DiscardNoCompany DiscardReason = "no company affiliation"
)

// parseArticle classifies one PubmedArticle. It returns the Paper and
// DiscardNone when at least one company affiliation was found.
func parseArticle(rec pubmedArticle) (types.Paper, DiscardReason) {
	if rec.Article == nil {
		return types.Paper{}, DiscardNoArticle
	}
	art := rec.Article

	var (
		nonAcademic []string
		companies   []string
		email       string
	)

	for _, a := range art.Authors {
		name := a.displayName()
		for _, info := range a.Affiliations {
			text := info.Affiliation.String()
			if text == "" {
				continue
			}

			class := affiliation.Classify(text)
			if class == affiliation.ClassCompany {
				companies = append(companies, text)
			}
			if class.NonAcademic() {
				nonAcademic = append(nonAcademic, name)
			}

			if email == "" {
				email = affiliation.ExtractEmail(text)
			}
		}
	}

	if len(companies) == 0 {
		return types.Paper{}, DiscardNoCompany
	}

	return types.Paper{
		PubmedID:            rec.PMID.String(),
		Title:               art.Title.String(),
		PublicationDate:     art.PubDate.String(),
		NonAcademicAuthors:  sortedUnique(nonAcademic),
		CompanyAffiliations: sortedUnique(companies),
		CorrespondingEmail:  email,
	}, DiscardNone
}

// displayName renders "<ForeName> <LastName>", degrading to the last name
// alone. Collective authors with no personal name use the collective name.
func (a author) displayName() string {
	name := strings.TrimSpace(strings.TrimSpace(a.ForeName) + " " + strings.TrimSpace(a.LastName))
	if name == "" {
		name = strings.TrimSpace(a.CollectiveName)
	}
	return name
}

// String joins whichever of Year, Month and Day are present with "-".
// A nil date renders as "".
func (d *pubDate) String() string {
	if d == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{d.Year, d.Month, d.Day} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
