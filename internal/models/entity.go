// Package models defines core data structures for search hits, group members, and candidates.
package models

// SearchHit is one entity returned by the external entity-search endpoint.
// The ID is an opaque entity identifier (Q-number); Description may be empty.
type SearchHit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// MemberRecord is a person discovered by expanding a group entity.
// GroupID refers back to the SearchHit whose membership query produced it.
type MemberRecord struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	GroupID    string `json:"group_id"`
	GroupLabel string `json:"group_label"`
}

// Candidate is one entry of the final display list. Note carries the hit's
// description for direct matches, or the originating group's label for
// expanded members.
type Candidate struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Note    string `json:"note,omitempty"`
	GroupID string `json:"group_id,omitempty"`
}

// PersonDetail holds the resolved facts for one person entity. Missing facts
// are filled with display fallbacks rather than left empty.
type PersonDetail struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	BirthDate  string `json:"birth_date"`
	DeathDate  string `json:"death_date"`
	Gender     string `json:"gender"`
	AgeAtDeath string `json:"age_at_death,omitempty"`
	ArticleURL string `json:"article_url,omitempty"`
}
