// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed searches PubMed through NCBI E-utilities and keeps the
// articles that have at least one company-affiliated author.
//
// Search calls esearch.fcgi once to get PMIDs; FetchPapers calls efetch.fcgi
// once for the whole batch and classifies every returned record.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	// DefaultBaseURL is the NCBI E-utilities endpoint.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultTool is sent as the tool parameter.
	DefaultTool = "get-papers-list"

	// DefaultTimeout applies when the config leaves Timeout at zero.
	DefaultTimeout = 30 * time.Second

	database = "pubmed"

	// maxBodySize bounds how much of a response is read.
	maxBodySize = 64 << 20
)

// Query is one search request: a PubMed term and a bound on the number of
// identifiers to return.
type Query struct {
	Term       string
	MaxResults int
}

// Client talks to the ESearch and EFetch endpoints. It holds no state
// between calls beyond its configuration.
type Client struct {
	cfg        types.FetchConfig
	httpClient *http.Client
	log        *zap.Logger
}

// New returns a Client. A nil httpClient gets one with cfg.Timeout (or
// DefaultTimeout); a nil logger discards output.
func New(cfg types.FetchConfig, httpClient *http.Client, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cfg: cfg, httpClient: httpClient, log: log}
}

// Search runs one ESearch request and returns the PMIDs in the order the API
// lists them. A zero MaxResults falls back to the configured default.
func (c *Client) Search(ctx context.Context, q Query) ([]string, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return nil, fmt.Errorf("query is empty: provide a PubMed search term")
	}
	maxResults := q.MaxResults
	if maxResults == 0 {
		maxResults = c.cfg.MaxResults
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("max results must be positive, got %d", maxResults)
	}

	params := url.Values{
		"db":      {database},
		"term":    {term},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
	}

	body, err := c.get(ctx, "esearch", params)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	if resp.Result == nil {
		if resp.Error != "" {
			return nil, fmt.Errorf("%w: esearch: %s", ErrMalformedResponse, resp.Error)
		}
		return nil, fmt.Errorf("%w: esearch: missing esearchresult", ErrMalformedResponse)
	}
	if resp.Result.Error != "" {
		return nil, fmt.Errorf("%w: esearch: %s", ErrMalformedResponse, resp.Result.Error)
	}

	ids := resp.Result.IDList
	if ids == nil {
		ids = []string{}
	}
	c.log.Debug("esearch complete", zap.Int("count", len(ids)))
	return ids, nil
}

// FetchPapers runs one EFetch request for all ids and returns the papers
// that have at least one company affiliation, in source order. An empty id
// list returns immediately without a request. A decode failure anywhere in
// the batch fails the whole call.
func (c *Client) FetchPapers(ctx context.Context, ids []string) ([]types.Paper, error) {
	if len(ids) == 0 {
		return []types.Paper{}, nil
	}

	params := url.Values{
		"db":      {database},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}

	body, err := c.get(ctx, "efetch", params)
	if err != nil {
		return nil, err
	}

	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("parsing EFetch response: %w", err)
	}

	papers := []types.Paper{}
	for _, rec := range set.Articles {
		paper, reason := parseArticle(rec)
		if reason != DiscardNone {
			c.log.Debug("record discarded",
				zap.String("pmid", rec.PMID.String()),
				zap.String("reason", string(reason)))
			continue
		}
		papers = append(papers, paper)
	}
	c.log.Debug("efetch complete",
		zap.Int("records", len(set.Articles)),
		zap.Int("kept", len(papers)))
	return papers, nil
}

// SearchPapers chains Search and FetchPapers.
func (c *Client) SearchPapers(ctx context.Context, q Query) ([]types.Paper, error) {
	ids, err := c.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return c.FetchPapers(ctx, ids)
}

// get issues one GET to <base>/<endpoint>.fcgi and returns the body of a 200
// response. Common identification parameters are added here.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("tool", c.cfg.Tool)
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	reqURL := c.cfg.BaseURL + "/" + endpoint + ".fcgi?" + params.Encode()
	c.log.Debug("requesting", zap.String("endpoint", endpoint), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", endpoint, err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries, c.log)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	return body, nil
}
