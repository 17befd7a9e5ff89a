package resolve

import (
	"regexp"

	"github.com/hyperjump/tantei/internal/models"
)

// rawIDPattern matches labels that are a bare entity identifier, which means
// the label service had no human-readable name for the member.
var rawIDPattern = regexp.MustCompile(`^Q\d+$`)

// Reconcile merges direct person matches and group-expanded members into one
// ordered, deduplicated candidate list:
//
//  1. direct matches are the hits whose id is in persons, deduplicated by id,
//     in hit (rank) order;
//  2. members shadowed by a direct match are dropped — a direct match always
//     takes precedence over a member record with the same id;
//  3. members whose label is a bare identifier are dropped;
//  4. remaining members are deduplicated by lowest group rank;
//  5. direct matches precede members, each segment keeping its own order.
//
// Always returns a list, possibly empty.
func Reconcile(hits []models.SearchHit, persons map[string]bool, members []models.MemberRecord, ranks map[string]int) []models.Candidate {
	out := make([]models.Candidate, 0, len(hits)+len(members))
	direct := make(map[string]bool, len(hits))
	for _, h := range hits {
		if !persons[h.ID] || direct[h.ID] {
			continue
		}
		direct[h.ID] = true
		out = append(out, models.Candidate{
			ID:    h.ID,
			Label: h.Label,
			Note:  h.Description,
		})
	}

	kept := make([]models.MemberRecord, 0, len(members))
	for _, m := range members {
		if direct[m.ID] || rawIDPattern.MatchString(m.Label) {
			continue
		}
		kept = append(kept, m)
	}
	for _, m := range dedupeMembersByRank(kept, ranks) {
		out = append(out, models.Candidate{
			ID:      m.ID,
			Label:   m.Label,
			Note:    m.GroupLabel,
			GroupID: m.GroupID,
		})
	}
	return out
}

// dedupeMembersByRank keeps, for each duplicate member id, the record whose
// group has the lowest rank. The winner takes the first-seen position, so
// segment order is stable. On equal rank the earlier record wins.
func dedupeMembersByRank(records []models.MemberRecord, ranks map[string]int) []models.MemberRecord {
	out := make([]models.MemberRecord, 0, len(records))
	pos := make(map[string]int, len(records))
	for _, r := range records {
		i, seen := pos[r.ID]
		if !seen {
			pos[r.ID] = len(out)
			out = append(out, r)
			continue
		}
		if groupRank(ranks, r.GroupID) < groupRank(ranks, out[i].GroupID) {
			out[i] = r
		}
	}
	return out
}
