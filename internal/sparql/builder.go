// Package sparql builds and executes the fixed SPARQL query templates used to
// resolve person candidates against the Wikidata query service.
package sparql

import (
	"fmt"
	"strings"
)

// Relation is a membership property used to expand a group into people.
type Relation string

const (
	// RelationEnsemble expands band/team-like groups via the has-part property.
	RelationEnsemble Relation = "P527"
	// RelationCast expands film/show-like works via the cast-member property.
	RelationCast Relation = "P161"
)

// MemberLimit caps the number of rows a batched membership query may return.
const MemberLimit = 50

// Builder renders query templates for a fixed language and wiki site.
// It performs no I/O and no identifier validation; identifiers are passed
// through opaquely and malformed ones simply produce empty query results.
type Builder struct {
	Language string
	WikiSite string
}

// NewBuilder creates a builder for the given label language and wiki site URL.
func NewBuilder(language, wikiSite string) *Builder {
	return &Builder{Language: language, WikiSite: wikiSite}
}

// LabelQuery fetches the display label for one entity.
func (b *Builder) LabelQuery(id string) string {
	return fmt.Sprintf(`SELECT ?label WHERE {
  wd:%s rdfs:label ?label .
  FILTER(LANG(?label) = "%s")
} LIMIT 1`, id, b.Language)
}

// DetailQuery fetches birth date, optional death date, optional gender label,
// optional linked encyclopedia article, and age at death for one entity,
// restricted to entities typed as human.
func (b *Builder) DetailQuery(id string) string {
	return fmt.Sprintf(`SELECT ?birth ?death ?age ?genderLabel ?article WHERE {
  wd:%[1]s wdt:P31 wd:Q5 ;
           wdt:P569 ?birth .
  OPTIONAL { wd:%[1]s wdt:P570 ?death . }
  OPTIONAL { wd:%[1]s wdt:P21 ?gender . }
  OPTIONAL {
    ?article schema:about wd:%[1]s ;
             schema:isPartOf <%[2]s> .
  }
  BIND(YEAR(?death) - YEAR(?birth) AS ?age)
  SERVICE wikibase:label { bd:serviceParam wikibase:language "%[3]s" . }
}`, id, b.WikiSite, b.Language)
}

// PersonCheckQuery builds one batched query returning the subset of ids that
// have a birth-date fact, i.e. the ids that denote a person.
func (b *Builder) PersonCheckQuery(ids []string) string {
	return fmt.Sprintf(`SELECT DISTINCT ?person WHERE {
  VALUES ?person { %s }
  ?person wdt:P569 ?birth .
}`, entityValues(ids))
}

// MembershipQuery builds one batched query expanding the given group ids via
// relation into members that themselves have a birth-date fact. Labels are
// resolved server-side and results are deduplicated and capped server-side.
func (b *Builder) MembershipQuery(ids []string, relation Relation) string {
	return fmt.Sprintf(`SELECT DISTINCT ?member ?memberLabel ?group ?groupLabel WHERE {
  VALUES ?group { %s }
  ?group wdt:%s ?member .
  ?member wdt:P569 ?birth .
  SERVICE wikibase:label { bd:serviceParam wikibase:language "%s" . }
}
LIMIT %d`, entityValues(ids), relation, b.Language, MemberLimit)
}

// entityValues renders ids as a VALUES clause body: "wd:Q1 wd:Q2 ...".
func entityValues(ids []string) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("wd:")
		sb.WriteString(id)
	}
	return sb.String()
}
