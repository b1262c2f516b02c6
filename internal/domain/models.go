package domain

// Resource is one monitored entry: a URL and the SRI digest its content is
// pinned to. Loaded once at startup, read-only afterwards.
type Resource struct {
	URL    string `json:"url" yaml:"url"`
	Digest string `json:"digest" yaml:"digest"`
}
