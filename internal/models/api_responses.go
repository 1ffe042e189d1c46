package models

import "time"

// ResolveResponse contains the result of resolving a query.
type ResolveResponse struct {
	Query       string `json:"query"`
	Found       bool   `json:"found"`
	Scheme      string `json:"scheme,omitempty"`
	Description string `json:"description,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty"`
	Message     string `json:"message"`
	ReplyHTML   string `json:"reply_html"`
}

// SchemeResponse describes one scheme in the table.
type SchemeResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	ApplyURL    string `json:"apply_url"`
	Priority    int    `json:"priority"`
}

// LinkStatusListResponse wraps the checker's view of every apply link.
type LinkStatusListResponse struct {
	Enabled bool         `json:"enabled"`
	Links   []LinkStatus `json:"links"`
	AsOf    time.Time    `json:"as_of"`
}
