package resolve

import (
	"context"
	"regexp"

	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/internal/sparql"
	"go.uber.org/zap"
)

// releasePattern matches descriptions of music releases. A release entity
// (an album named after its band) would otherwise expand to "members"
// mislabeled under the release's name instead of the band's, so such hits
// are excluded from the ensemble tier.
var releasePattern = regexp.MustCompile(`(?i)\b(album|song|single|ep|compilation)\b`)

// unranked sorts a group missing from the rank map behind every ranked group.
const unranked = int(^uint(0) >> 1)

// GroupRanks maps each hit's id to its position in the batch (0 = most
// relevant). Derived once per run and read-only afterward.
func GroupRanks(hits []models.SearchHit) map[string]int {
	ranks := make(map[string]int, len(hits))
	for i, h := range hits {
		ranks[h.ID] = i
	}
	return ranks
}

func groupRank(ranks map[string]int, id string) int {
	if r, ok := ranks[id]; ok {
		return r
	}
	return unranked
}

// Expander discovers people by expanding group entities among the search
// hits into their members.
type Expander struct {
	querier Querier
	builder *sparql.Builder
	logger  *zap.Logger
}

// NewExpander creates an expander using querier and builder.
func NewExpander(querier Querier, builder *sparql.Builder, logger *zap.Logger) *Expander {
	return &Expander{querier: querier, builder: builder, logger: logger}
}

// Expand runs the two membership tiers over hits and returns member records
// annotated with their source group.
//
// The ensemble tier covers hits whose description does not look like a music
// release. The narrative (cast) tier runs only when the ensemble tier yields
// zero members for the whole batch: if any ensemble member is found anywhere,
// cast lookup is skipped entirely so that a cast member of a co-occurring
// film cannot contaminate a band search.
func (e *Expander) Expand(ctx context.Context, hits []models.SearchHit, ranks map[string]int) []models.MemberRecord {
	ensembleIDs := make([]string, 0, len(hits))
	for _, h := range hits {
		if !releasePattern.MatchString(h.Description) {
			ensembleIDs = append(ensembleIDs, h.ID)
		}
	}
	members := e.tier(ctx, "membership_ensemble", ensembleIDs, sparql.RelationEnsemble, ranks)
	if len(members) > 0 {
		return members
	}

	castIDs := make([]string, 0, len(hits))
	for _, h := range hits {
		castIDs = append(castIDs, h.ID)
	}
	return e.tier(ctx, "membership_cast", castIDs, sparql.RelationCast, ranks)
}

// tier issues one batched membership query, parses the rows into member
// records, and deduplicates within the tier by lowest group rank. A query
// failure yields an empty list via the querier's degradation contract.
func (e *Expander) tier(ctx context.Context, kind string, ids []string, relation sparql.Relation, ranks map[string]int) []models.MemberRecord {
	if len(ids) == 0 {
		return nil
	}
	rows := e.querier.Select(ctx, kind, e.builder.MembershipQuery(ids, relation))
	records := make([]models.MemberRecord, 0, len(rows))
	for _, row := range rows {
		id := sparql.EntityID(row["member"])
		if id == "" {
			continue
		}
		records = append(records, models.MemberRecord{
			ID:         id,
			Label:      row["memberLabel"],
			GroupID:    sparql.EntityID(row["group"]),
			GroupLabel: row["groupLabel"],
		})
	}
	deduped := dedupeMembersByRank(records, ranks)
	e.logger.Debug("membership tier",
		zap.String("kind", kind),
		zap.Int("groups", len(ids)),
		zap.Int("members", len(deduped)),
	)
	return deduped
}
