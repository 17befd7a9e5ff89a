// Package resolve aggregates entity-search hits into a ranked, deduplicated
// list of individual-person candidates.
package resolve

import (
	"context"

	"github.com/hyperjump/tantei/internal/sparql"
)

// Querier executes one SELECT query and returns its rows. Implementations
// must degrade to an empty row set on failure rather than report errors;
// the aggregation pipeline treats a missing row the same as a negative fact.
type Querier interface {
	Select(ctx context.Context, kind, query string) []sparql.Binding
}
