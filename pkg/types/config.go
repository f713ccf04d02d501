package types

import "time"

// Production Gator endpoints. CatQuery serves searches; the scan endpoint
// serves the catalog directory.
const (
	DefaultServerURL = "https://irsa.ipac.caltech.edu/cgi-bin/Gator/nph-query"
	DefaultListURL   = "https://irsa.ipac.caltech.edu/cgi-bin/Gator/nph-scan"
)

// HTTPConfig holds shared HTTP settings for network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GatorConfig holds settings for the catalog query client.
type GatorConfig struct {
	HTTPConfig `yaml:",inline"`

	// ServerURL is the catalog search endpoint (CatQuery).
	ServerURL string `json:"server_url" yaml:"server_url"`

	// ListURL is the catalog directory endpoint.
	ListURL string `json:"list_url" yaml:"list_url"`

	// RowLimit caps the number of rows the service returns (default 500).
	RowLimit int `json:"row_limit" yaml:"row_limit"`

	// Verbose surfaces VOTable conformance warnings when true.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultGatorConfig returns a config pointed at the production service.
func DefaultGatorConfig() GatorConfig {
	return GatorConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "gator/0.1",
		},
		ServerURL: DefaultServerURL,
		ListURL:   DefaultListURL,
		RowLimit:  500,
	}
}

// ArchiveConfig holds settings for the local result archive.
type ArchiveConfig struct {
	// Path is the SQLite database file for saved query runs.
	Path string `json:"path" yaml:"path"`
}
