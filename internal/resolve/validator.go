package resolve

import (
	"context"

	"github.com/hyperjump/tantei/internal/sparql"
)

// Validator checks which candidate identifiers denote a person, using the
// presence of a birth-date fact as the person criterion.
type Validator struct {
	querier Querier
	builder *sparql.Builder
}

// NewValidator creates a validator using querier and builder.
func NewValidator(querier Querier, builder *sparql.Builder) *Validator {
	return &Validator{querier: querier, builder: builder}
}

// Persons returns the subset of ids that have a birth-date fact, as a set.
// One batched query covers all ids; an id absent from the response is simply
// not a person, never an error. The result is order-independent.
func (v *Validator) Persons(ctx context.Context, ids []string) map[string]bool {
	persons := make(map[string]bool)
	if len(ids) == 0 {
		return persons
	}
	rows := v.querier.Select(ctx, "person_check", v.builder.PersonCheckQuery(ids))
	for _, row := range rows {
		if id := sparql.EntityID(row["person"]); id != "" {
			persons[id] = true
		}
	}
	return persons
}
