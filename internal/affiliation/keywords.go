// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

// Keyword sets are matched as substrings of lower-cased affiliation text.
// They are initialised once and never mutated.

// PharmaKeywords mark an affiliation as a pharmaceutical or biotech company.
var PharmaKeywords = []string{
	"pharma",
	"biotech",
	"therapeutics",
	"biosciences",
	"biologics",
	"laboratories",
	"diagnostics",
	", inc",
	" inc.",
	" ltd",
	" llc",
	"gmbh",
	"corporation",
	"company",
}

// AcademicKeywords mark an affiliation as academic or clinical.
var AcademicKeywords = []string{
	"universit",
	"college",
	"institute",
	"school",
	"hospital",
	"department",
	"faculty",
	"academy",
	"clinic",
	"centre",
	"center",
	"foundation",
}

// NonAcademicKeywords is the broader non-academic vocabulary: every pharma
// keyword plus generic institutional terms. It does not take part in the
// inclusion decision; IsInstitutional uses it for diagnostics.
var NonAcademicKeywords = append(append([]string(nil), PharmaKeywords...),
	"enterprise",
	"industries",
	"consulting",
	"research and development",
	"r&d",
	"private",
	"limited",
	"labs",
)
