package resolve

import (
	"context"

	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/internal/sparql"
)

// Display fallbacks for facts the endpoint does not have.
const (
	FallbackUnknown = "Unknown"
	FallbackNA      = "N/A"
)

// Details resolves the display facts for one person entity.
type Details struct {
	querier Querier
	builder *sparql.Builder
}

// NewDetails creates a detail fetcher using querier and builder.
func NewDetails(querier Querier, builder *sparql.Builder) *Details {
	return &Details{querier: querier, builder: builder}
}

// Lookup fetches label, birth and death dates, gender, linked article, and
// age at death for id. Every missing fact degrades to a fallback value; the
// label falls back to the identifier itself. Lookup never fails.
func (d *Details) Lookup(ctx context.Context, id string) models.PersonDetail {
	detail := models.PersonDetail{
		ID:        id,
		Label:     id,
		BirthDate: FallbackUnknown,
		DeathDate: FallbackNA,
		Gender:    FallbackUnknown,
	}

	if rows := d.querier.Select(ctx, "label", d.builder.LabelQuery(id)); len(rows) > 0 {
		if label := rows[0]["label"]; label != "" {
			detail.Label = label
		}
	}

	rows := d.querier.Select(ctx, "detail", d.builder.DetailQuery(id))
	if len(rows) == 0 {
		return detail
	}
	row := rows[0]
	if v := row["birth"]; v != "" {
		detail.BirthDate = v
	}
	if v := row["death"]; v != "" {
		detail.DeathDate = v
	}
	if v := row["genderLabel"]; v != "" {
		detail.Gender = v
	}
	if v := row["age"]; v != "" {
		detail.AgeAtDeath = v
	}
	detail.ArticleURL = row["article"]
	return detail
}
