// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders papers as CSV, JSON, YAML, or a terminal table.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the accepted format names in help-text order.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatTable}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Write renders papers to w in the given format.
func Write(w io.Writer, format Format, papers []types.Paper) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, papers)
	case FormatJSON:
		return WriteJSON(w, papers)
	case FormatYAML:
		return WriteYAML(w, papers)
	case FormatTable:
		WriteTable(w, papers)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteCSV writes a header row followed by one Paper.Row per paper.
func WriteCSV(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.RowHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		if err := cw.Write(p.Row()); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes papers as an indented JSON array.
func WriteJSON(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// WriteYAML writes papers as a YAML sequence.
func WriteYAML(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(papers); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Column display widths for WriteTable.
const (
	idWidth      = 10
	titleWidth   = 48
	dateWidth    = 12
	companyWidth = 40
)

// WriteTable writes a fixed-width, human-readable summary. Widths are
// measured in terminal cells so wide characters in titles line up.
func WriteTable(w io.Writer, papers []types.Paper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No company-affiliated papers found.")
		return
	}

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		cell("PMID", idWidth), cell("Title", titleWidth), cell("Date", dateWidth),
		cell("Company", companyWidth), "Email")
	fmt.Fprintln(w, strings.Repeat("-", idWidth+titleWidth+dateWidth+companyWidth+8+24))

	for _, p := range papers {
		company := ""
		if len(p.CompanyAffiliations) > 0 {
			company = p.CompanyAffiliations[0]
			if n := len(p.CompanyAffiliations); n > 1 {
				company = fmt.Sprintf("%s (+%d)", company, n-1)
			}
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			cell(p.PubmedID, idWidth), cell(p.Title, titleWidth), cell(p.PublicationDate, dateWidth),
			cell(company, companyWidth), p.CorrespondingEmail)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// cell truncates s to width cells and pads it on the right.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}
