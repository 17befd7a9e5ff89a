package models

// ResolveResponse is the response for a resolve/search request.
// Superseded is true when a newer search started before this one finished;
// in that case Candidates is empty and must not be rendered.
type ResolveResponse struct {
	Query      string      `json:"query"`
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
	Superseded bool        `json:"superseded,omitempty"`
	QueryTime  int64       `json:"query_time_ms"`
}
