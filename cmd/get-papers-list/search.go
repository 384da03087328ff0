// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/internal/report"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	defaultMaxResults = 20
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "get-papers-list/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search PubMed and list papers with company-affiliated authors",
	Long: `Search runs the query against PubMed (any PubMed search syntax is accepted),
fetches up to --max-results article records in one batch, and keeps the papers
where at least one author affiliation names a pharmaceutical or biotech company.

Each output row holds the PubMed ID, title, publication date, non-academic
authors, company affiliations, and the first contact email found.`,
	Example: `  get-papers-list search "cancer immunotherapy" -n 50 -f results.csv
  get-papers-list search "crispr AND 2024[dp]" -o table -d`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.IntP("max-results", "n", defaultMaxResults, "maximum number of PubMed IDs to fetch")
	f.StringP("file", "f", "", "write results to this file instead of stdout")
	f.StringP("format", "o", string(report.FormatCSV), "output format: csv, json, yaml, or table")
	f.String("email", "", "contact email sent to NCBI (default from .secrets/ncbi-email)")
	f.String("api-key", "", "NCBI API key (default from .secrets/ncbi-api-key)")
	f.Duration("timeout", defaultTimeout, "HTTP request timeout")
	f.Int("retries", 0, "retries on HTTP 429 with exponential backoff (0 disables)")

	for key, flag := range map[string]string{
		"max_results": "max-results",
		"output_file": "file",
		"format":      "format",
		"email":       "email",
		"api_key":     "api-key",
		"timeout":     "timeout",
		"max_retries": "retries",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}
	viper.SetDefault("base_url", pubmed.DefaultBaseURL)
	viper.SetDefault("user_agent", defaultUserAgent)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a PubMed query")
	}

	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	cfg := fetchConfig(loadedSecrets)
	logger.Debug("search config",
		zap.String("query", query),
		zap.Int("max_results", cfg.MaxResults),
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("email_set", cfg.Email != ""),
		zap.Bool("api_key_set", cfg.APIKey != ""))

	client := pubmed.New(cfg, nil, logger)
	papers, err := client.SearchPapers(cmd.Context(), pubmed.Query{Term: query, MaxResults: cfg.MaxResults})
	if err != nil {
		return err
	}

	path := viper.GetString("output_file")
	if path == "" {
		return report.Write(cmd.OutOrStdout(), format, papers)
	}
	if err := writeFile(path, format, papers); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d papers to %s\n", len(papers), path)
	return nil
}

// fetchConfig resolves client settings from flags, env, config file, and secrets.
func fetchConfig(s secrets.Secrets) types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("timeout"),
			UserAgent:  viper.GetString("user_agent"),
			MaxRetries: viper.GetInt("max_retries"),
		},
		BaseURL:    viper.GetString("base_url"),
		Email:      s.Default(secrets.NCBIEmail, viper.GetString("email")),
		APIKey:     s.Default(secrets.NCBIAPIKey, viper.GetString("api_key")),
		MaxResults: viper.GetInt("max_results"),
	}
}

func writeFile(path string, format report.Format, papers []types.Paper) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return report.Write(f, format, papers)
}
