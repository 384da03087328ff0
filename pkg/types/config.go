package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to E-utilities.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero keeps every
	// request single-shot.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// FetchConfig holds settings for the search and fetch stages.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities base URL. Empty means the NCBI default.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Email is sent as the email parameter so NCBI can contact the caller.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// APIKey is an optional NCBI API key passed as the api_key parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Tool identifies this program to NCBI via the tool parameter.
	Tool string `json:"tool" yaml:"tool" mapstructure:"tool"`

	// MaxResults bounds the number of identifiers requested from ESearch.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}
