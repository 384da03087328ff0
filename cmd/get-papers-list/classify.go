// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/affiliation"
)

var classifyCmd = &cobra.Command{
	Use:   "classify AFFILIATION...",
	Short: "Show how affiliation strings are classified",
	Long: `Classify runs each argument through the same affiliation heuristic used by
search and prints its class (company, academic, or non-academic), whether it
matches the broader institutional vocabulary, and any email found in it.
No network requests are made.`,
	Example: `  get-papers-list classify "Pfizer Inc., New York" "University of Oxford"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CLASS\tINSTITUTIONAL\tEMAIL\tAFFILIATION")
		for _, text := range args {
			email := affiliation.ExtractEmail(text)
			if email == "" {
				email = "-"
			}
			fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n",
				affiliation.Classify(text), affiliation.IsInstitutional(text), email, text)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
